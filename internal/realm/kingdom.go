// Package realm provides the kingdom data model and naming pools.
package realm

import (
	"github.com/talgya/crowncourt/internal/royals"
	"github.com/talgya/crowncourt/internal/worldmap"
)

// Kingdom represents a rival NPC political entity.
type Kingdom struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Dynasty string `json:"dynasty"`

	Ruler *royals.Person   `json:"ruler"`
	Heirs []*royals.Person `json:"heirs"` // Insertion order is succession priority.

	Strength int `json:"strength"` // Military scalar.
	Wealth   int `json:"wealth"`   // Economic scalar.

	// Seat on the realm map, chosen at creation.
	Seat    worldmap.HexCoord `json:"seat"`
	Terrain worldmap.Terrain  `json:"terrain"`

	Destroyed    bool `json:"destroyed"`
	DestroyedDay *int `json:"destroyed_day,omitempty"`
	CreatedDay   int  `json:"created_day"`
}

// Active reports whether the kingdom is still a live political entity.
func (k *Kingdom) Active() bool {
	return k != nil && !k.Destroyed
}

// Clone returns a deep copy of the kingdom and every royal in it.
func (k *Kingdom) Clone() *Kingdom {
	if k == nil {
		return nil
	}
	cp := *k
	cp.Ruler = k.Ruler.Clone()
	cp.Heirs = make([]*royals.Person, len(k.Heirs))
	for i, h := range k.Heirs {
		cp.Heirs[i] = h.Clone()
	}
	if k.DestroyedDay != nil {
		day := *k.DestroyedDay
		cp.DestroyedDay = &day
	}
	return &cp
}
