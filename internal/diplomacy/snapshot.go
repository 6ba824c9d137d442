// PersistenceAdapter — snapshotting the core into a storable blob and
// reconstructing it. Missing or malformed blobs degrade to empty
// defaults; storage trouble is never fatal.
package diplomacy

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/talgya/crowncourt/internal/realm"
)

// State is the plain serialized form of the core's three stores.
type State struct {
	Kingdoms  []*realm.Kingdom `json:"kingdoms"`
	Relations []RelationEntry  `json:"relations"`
	Lineage   []LineageEntry   `json:"lineage"`
	Day       int              `json:"day"`
}

// RelationEntry is one (kingdomId, value) pair of the relation ledger.
type RelationEntry struct {
	KingdomID string  `json:"kingdom_id"`
	Value     float64 `json:"value"`
}

// LineageEntry is one (personId, ancestors) pair of the lineage records.
type LineageEntry struct {
	PersonID  string   `json:"person_id"`
	Ancestors []string `json:"ancestors"`
}

// Snapshot captures the full core state as a plain structure with no
// references into live records.
func (c *Core) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Core) snapshotLocked() State {
	st := State{Day: c.day}

	st.Kingdoms = make([]*realm.Kingdom, len(c.kingdoms))
	for i, k := range c.kingdoms {
		st.Kingdoms[i] = k.Clone()
	}

	for id, v := range c.relations.snapshotMap() {
		st.Relations = append(st.Relations, RelationEntry{KingdomID: id, Value: v})
	}
	sort.Slice(st.Relations, func(i, j int) bool {
		return st.Relations[i].KingdomID < st.Relations[j].KingdomID
	})

	for _, pid := range c.lineage.personIDs() {
		st.Lineage = append(st.Lineage, LineageEntry{
			PersonID:  pid,
			Ancestors: c.lineage.AncestorsOf(pid),
		})
	}

	return st
}

// Restore replaces the core's stores with the snapshot's contents.
func (c *Core) Restore(st State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restoreLocked(st)
}

func (c *Core) restoreLocked(st State) {
	c.day = st.Day
	c.kingdoms = nil
	c.byID = make(map[string]*realm.Kingdom)
	c.relations = NewRelationLedger()
	c.lineage = NewLineageTracker()

	for _, k := range st.Kingdoms {
		cp := k.Clone()
		c.kingdoms = append(c.kingdoms, cp)
		c.byID[cp.ID] = cp
	}
	for _, r := range st.Relations {
		c.relations.Set(r.KingdomID, r.Value)
	}
	for _, l := range st.Lineage {
		c.lineage.restore(l.PersonID, l.Ancestors)
	}
}

// validate rejects blobs that parsed as JSON but are structurally
// unusable. Every kingdom record needs an identity and a ruler; a blob
// failing this is treated the same as one that failed to parse.
func (st State) validate() error {
	for i, k := range st.Kingdoms {
		if k == nil || k.ID == "" || k.Name == "" {
			return fmt.Errorf("kingdom %d: missing identity", i)
		}
		if k.Ruler == nil {
			return fmt.Errorf("kingdom %q: missing ruler", k.Name)
		}
		for j, h := range k.Heirs {
			if h == nil {
				return fmt.Errorf("kingdom %q: heir %d is null", k.Name, j)
			}
		}
	}
	return nil
}

// LoadState reads the saved blob from the store and reconstructs the
// core. A missing or malformed blob leaves the core at empty defaults;
// only the degraded path is logged, never propagated.
func (c *Core) LoadState() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return
	}

	blob, err := c.store.Load(StateKey)
	if err != nil {
		slog.Warn("diplomacy state load failed, starting empty", "error", err)
		return
	}
	if len(blob) == 0 {
		return
	}

	var st State
	if err := json.Unmarshal(blob, &st); err != nil {
		slog.Warn("diplomacy state malformed, starting empty", "error", err)
		return
	}
	if err := st.validate(); err != nil {
		slog.Warn("diplomacy state malformed, starting empty", "error", err)
		return
	}
	c.restoreLocked(st)

	active, total := c.counts()
	slog.Info("diplomacy state restored",
		"day", c.day,
		"active_kingdoms", active,
		"total_kingdoms", total,
		"lineage_records", len(st.Lineage),
	)
}

// Flush writes the current state to the blob store outside the daily
// tick, e.g. on shutdown.
func (c *Core) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveState()
}

// saveState writes the current snapshot to the store. Callers hold c.mu.
func (c *Core) saveState() error {
	if c.store == nil {
		return nil
	}

	blob, err := json.Marshal(c.snapshotLocked())
	if err != nil {
		return fmt.Errorf("marshal diplomacy state: %w", err)
	}
	if err := c.store.Save(StateKey, blob); err != nil {
		slog.Warn("diplomacy state save failed", "error", err)
		return fmt.Errorf("save diplomacy state: %w", err)
	}
	return nil
}
