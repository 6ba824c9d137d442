// KingdomRegistry — kingdom creation, destruction, daily survival rolls,
// and discovery of new kingdoms.
package diplomacy

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/crowncourt/internal/realm"
	"github.com/talgya/crowncourt/internal/worldmap"
)

// Initial military and economic ranges for a new kingdom.
const (
	strengthMin = 50
	strengthMax = 99
	wealthMin   = 100
	wealthMax   = 299
)

// createKingdom generates a new kingdom if the active count is below the
// cap and an unused name remains. Returns nil when preconditions are not
// met; callers must check. Callers hold c.mu.
func (c *Core) createKingdom() *realm.Kingdom {
	active, _ := c.counts()
	if active >= KingdomCap {
		return nil
	}

	name, ok := c.pickUnusedName()
	if !ok {
		return nil
	}
	dynasty := realm.DynastyNames[c.rng.Intn(len(realm.DynastyNames))]

	ruler := c.spawner.NewRuler(dynasty)
	heirCount := 1 + c.rng.Intn(3)

	k := &realm.Kingdom{
		ID:         uuid.NewString(),
		Name:       name,
		Dynasty:    dynasty,
		Ruler:      ruler,
		Strength:   strengthMin + c.rng.Intn(strengthMax-strengthMin+1),
		Wealth:     wealthMin + c.rng.Intn(wealthMax-wealthMin+1),
		CreatedDay: c.day,
	}
	for i := 0; i < heirCount; i++ {
		k.Heirs = append(k.Heirs, c.spawner.NewHeir(dynasty))
	}

	c.placeSeat(k)

	c.kingdoms = append(c.kingdoms, k)
	c.byID[k.ID] = k
	c.relations.Set(k.ID, 0)
	return k
}

// placeSeat assigns a map seat and applies the terrain's small modifier
// to starting strength and wealth, kept within the normal ranges.
func (c *Core) placeSeat(k *realm.Kingdom) {
	if c.realmMap == nil {
		k.Terrain = worldmap.TerrainPlains
		return
	}

	var taken []worldmap.HexCoord
	for _, other := range c.kingdoms {
		if other.Active() {
			taken = append(taken, other.Seat)
		}
	}

	seat, terrain, ok := worldmap.PlaceSeat(c.realmMap, c.rng, taken)
	if !ok {
		k.Terrain = worldmap.TerrainPlains
		return
	}
	k.Seat = seat
	k.Terrain = terrain

	switch terrain {
	case worldmap.TerrainMountain:
		k.Strength = min(k.Strength+10, strengthMax)
	case worldmap.TerrainPlains:
		k.Wealth = min(k.Wealth+20, wealthMax)
	case worldmap.TerrainForest:
		k.Wealth = min(k.Wealth+10, wealthMax)
	}
}

// pickUnusedName draws a random kingdom name no live record is using.
func (c *Core) pickUnusedName() (string, bool) {
	used := make(map[string]bool, len(c.kingdoms))
	for _, k := range c.kingdoms {
		used[k.Name] = true
	}
	var free []string
	for _, name := range realm.KingdomNames {
		if !used[name] {
			free = append(free, name)
		}
	}
	if len(free) == 0 {
		return "", false
	}
	return free[c.rng.Intn(len(free))], true
}

// DestroyKingdom removes a kingdom from play. Idempotent: a missing or
// already-destroyed kingdom is a no-op.
func (c *Core) DestroyKingdom(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyKingdom(id)
}

func (c *Core) destroyKingdom(id string) {
	k, ok := c.byID[id]
	if !ok || k.Destroyed {
		return
	}

	day := c.day
	k.Destroyed = true
	k.DestroyedDay = &day
	k.Ruler.Alive = false
	for _, h := range k.Heirs {
		h.Alive = false
	}

	slog.Info("kingdom destroyed", "name", k.Name, "dynasty", k.Dynasty, "day", day)
	c.emit(Event{
		Day:         day,
		Kind:        EventKingdomDestroyed,
		Description: fmt.Sprintf("The kingdom of %s has fallen", k.Name),
		KingdomID:   k.ID,
		KingdomName: k.Name,
	})
}

// dailySurvivalCheck rolls each active kingdom against its survival
// probability. threatLevel defaults to 1 when the host reports none.
func (c *Core) dailySurvivalCheck(threatLevel float64) {
	if threatLevel <= 0 {
		threatLevel = 1
	}
	survival := 0.999 - threatLevel*0.0005

	for _, k := range c.kingdoms {
		if !k.Active() {
			continue
		}
		if c.rng.Float() > survival {
			c.destroyKingdom(k.ID)
		}
	}
}

// discoveryCheck occasionally brings a new kingdom into play while the
// roster is below the cap.
func (c *Core) discoveryCheck(diplomacyBonus float64) {
	active, _ := c.counts()
	if active >= KingdomCap {
		return
	}
	if c.rng.Float() >= 0.001*(1+diplomacyBonus) {
		return
	}

	k := c.createKingdom()
	if k == nil {
		return
	}

	slog.Info("kingdom discovered",
		"name", k.Name,
		"dynasty", k.Dynasty,
		"terrain", worldmap.TerrainName(k.Terrain),
		"day", c.day,
	)
	c.emit(Event{
		Day:         c.day,
		Kind:        EventKingdomCreated,
		Description: fmt.Sprintf("Envoys have made contact with the kingdom of %s", k.Name),
		KingdomID:   k.ID,
		KingdomName: k.Name,
	})
}
