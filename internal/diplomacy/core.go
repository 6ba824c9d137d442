// Package diplomacy simulates relations between the player's dynasty and
// a bounded roster of rival kingdoms: kingdom lifecycle, royal aging and
// succession, bilateral relations, and marriage-alliance negotiation.
// All state is owned by a single Core instance; the host serializes calls
// into it and every accessor returns deep copies.
package diplomacy

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/talgya/crowncourt/internal/entropy"
	"github.com/talgya/crowncourt/internal/realm"
	"github.com/talgya/crowncourt/internal/royals"
	"github.com/talgya/crowncourt/internal/worldmap"
)

// KingdomCap is the maximum number of simultaneously active kingdoms.
const KingdomCap = 5

// StateKey is the fixed blob-store key for the serialized core state.
const StateKey = "diplomacyState"

// Treasury is the host-owned resource ledger the core pays dowries into
// and draws gift gold from.
type Treasury interface {
	CreditGold(amount int)
	DebitGold(amount int) error
}

// BlobStore is the injected persistence capability. Load returns
// (nil, nil) when the key has never been written.
type BlobStore interface {
	Load(key string) ([]byte, error)
	Save(key string, blob []byte) error
}

// Config wires the core's external capabilities. Every field is optional:
// a nil RNG falls back to crypto randomness, a nil Treasury discards
// dowries, a nil Store disables persistence, a nil Map places no seats.
type Config struct {
	RNG      entropy.Source
	Treasury Treasury
	Store    BlobStore
	Map      *worldmap.Map
}

// Core owns the kingdom roster, relation ledger, and lineage records.
type Core struct {
	mu sync.Mutex

	rng      entropy.Source
	treasury Treasury
	store    BlobStore
	realmMap *worldmap.Map
	spawner  *royals.Spawner

	kingdoms []*realm.Kingdom // Creation order; includes destroyed kingdoms.
	byID     map[string]*realm.Kingdom

	relations *RelationLedger
	lineage   *LineageTracker

	day       int
	observers []Observer
	recent    []Event
}

// New creates an empty core from the given capabilities.
func New(cfg Config) *Core {
	rng := cfg.RNG
	if rng == nil {
		rng = entropy.Crypto{}
	}
	return &Core{
		rng:       rng,
		treasury:  cfg.Treasury,
		store:     cfg.Store,
		realmMap:  cfg.Map,
		spawner:   royals.NewSpawner(rng),
		byID:      make(map[string]*realm.Kingdom),
		relations: NewRelationLedger(),
		lineage:   NewLineageTracker(),
	}
}

// ProcessDaily advances the simulation by one day. Called once per
// simulated day by the host's tick driver. The returned error reports
// persistence failure only; the in-memory state is always advanced.
func (c *Core) ProcessDaily(day int, threatLevel, diplomacyBonus float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.day = day

	c.dailySurvivalCheck(threatLevel)
	c.relations.dailyDrift()
	c.discoveryCheck(diplomacyBonus)
	c.ageRoyals()

	active, total := c.counts()
	slog.Debug("diplomacy day processed",
		"day", day,
		"active_kingdoms", active,
		"total_kingdoms", total,
		"threat", threatLevel,
	)

	return c.saveState()
}

// SeedKingdoms creates up to n kingdoms at startup. Returns how many
// were actually created; the cap and the name pool both bound it.
func (c *Core) SeedKingdoms(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	created := 0
	for i := 0; i < n; i++ {
		k := c.createKingdom()
		if k == nil {
			break
		}
		created++
		slog.Info("kingdom seeded",
			"name", k.Name,
			"dynasty", k.Dynasty,
			"ruler", k.Ruler.Name,
			"heirs", len(k.Heirs),
			"terrain", worldmap.TerrainName(k.Terrain),
		)
	}
	return created
}

// Day returns the most recent day the core processed.
func (c *Core) Day() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.day
}

// Kingdoms returns deep copies of every kingdom, including destroyed ones.
func (c *Core) Kingdoms() []*realm.Kingdom {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*realm.Kingdom, len(c.kingdoms))
	for i, k := range c.kingdoms {
		out[i] = k.Clone()
	}
	return out
}

// Kingdom returns a deep copy of a kingdom by ID.
func (c *Core) Kingdom(id string) (*realm.Kingdom, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("kingdom %q: %w", id, ErrKingdomNotFound)
	}
	return k.Clone(), nil
}

// Relation returns the diplomatic standing with a kingdom.
func (c *Core) Relation(kingdomID string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.relations.Get(kingdomID)
}

// Relations returns a copy of the full relation ledger.
func (c *Core) Relations() map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.relations.snapshotMap()
}

// RegisterLineage records a person's ancestor set as the union of its
// parents and each parent's own ancestors. Immutable once recorded.
func (c *Core) RegisterLineage(personID string, parentIDs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lineage.Register(personID, parentIDs)
}

// CheckInbreeding reports whether two persons share any common ancestor
// at any depth.
func (c *Core) CheckInbreeding(personID1, personID2 string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lineage.SharedAncestor(personID1, personID2)
}

// Ancestors returns a sorted copy of a person's recorded ancestor set.
func (c *Core) Ancestors(personID string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lineage.AncestorsOf(personID)
}

// Stats summarizes the roster for the host's observation surface.
type Stats struct {
	Day             int     `json:"day"`
	ActiveKingdoms  int     `json:"active_kingdoms"`
	TotalKingdoms   int     `json:"total_kingdoms"`
	LivingRoyals    int     `json:"living_royals"`
	AverageRelation float64 `json:"average_relation"`
}

// Snapshot of current aggregate statistics.
func (c *Core) StatsSnapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Stats{Day: c.day}
	var relSum float64
	for _, k := range c.kingdoms {
		st.TotalKingdoms++
		if !k.Active() {
			continue
		}
		st.ActiveKingdoms++
		relSum += c.relations.Get(k.ID)
		if k.Ruler.Alive {
			st.LivingRoyals++
		}
		for _, h := range k.Heirs {
			if h.Alive {
				st.LivingRoyals++
			}
		}
	}
	if st.ActiveKingdoms > 0 {
		st.AverageRelation = relSum / float64(st.ActiveKingdoms)
	}
	return st
}

func (c *Core) counts() (active, total int) {
	for _, k := range c.kingdoms {
		total++
		if k.Active() {
			active++
		}
	}
	return active, total
}
