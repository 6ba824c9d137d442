// SuccessionEngine — royal aging, ruler death rolls, and succession.
package diplomacy

import (
	"fmt"
	"log/slog"

	"github.com/talgya/crowncourt/internal/realm"
)

// Aging and mortality constants.
const (
	// agePerDay is the fractional aging applied each simulated day.
	agePerDay = 1.0 / 365.0

	// rulerDeathAge is the age past which a ruler faces daily death rolls.
	rulerDeathAge = 80.0

	// rulerDeathChance is the daily death probability past rulerDeathAge.
	rulerDeathChance = 0.01
)

// ageRoyals advances every living royal's age and resolves ruler deaths.
// Callers hold c.mu.
func (c *Core) ageRoyals() {
	for _, k := range c.kingdoms {
		if !k.Active() {
			continue
		}

		if k.Ruler.Alive {
			k.Ruler.Age += agePerDay
		}
		for _, h := range k.Heirs {
			if h.Alive {
				h.Age += agePerDay
			}
		}

		if k.Ruler.Alive && k.Ruler.Age > rulerDeathAge && c.rng.Float() < rulerDeathChance {
			c.handleRulerDeath(k)
		}
	}
}

// handleRulerDeath promotes the first eligible heir in list order, or
// destroys the kingdom when the line is extinct. Insertion order is the
// succession priority.
func (c *Core) handleRulerDeath(k *realm.Kingdom) {
	dead := k.Ruler
	dead.Alive = false

	for i, h := range k.Heirs {
		if !h.Alive || h.Married {
			continue
		}

		k.Ruler = h
		k.Heirs = append(k.Heirs[:i], k.Heirs[i+1:]...)

		slog.Info("ruler succeeded",
			"kingdom", k.Name,
			"old_ruler", dead.Name,
			"new_ruler", h.Name,
			"age", fmt.Sprintf("%.1f", h.Age),
		)
		c.emit(Event{
			Day:         c.day,
			Kind:        EventRulerSucceeded,
			Description: fmt.Sprintf("%s of %s has died; %s now rules %s", dead.Name, k.Dynasty, h.Name, k.Name),
			KingdomID:   k.ID,
			KingdomName: k.Name,
			Person:      h.Clone(),
		})
		return
	}

	// No eligible heir: the dynasty is extinct.
	slog.Info("dynasty extinct", "kingdom", k.Name, "dynasty", k.Dynasty)
	c.destroyKingdom(k.ID)
}
