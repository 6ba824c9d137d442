// RelationLedger — bilateral relation scalars between the player's
// dynasty and each kingdom. Values always stay within [-100, 100].
package diplomacy

// Relation bounds and the daily decay step toward neutral.
const (
	RelationMin = -100.0
	RelationMax = 100.0

	// relationDrift is how far a relation moves toward zero each day.
	relationDrift = 0.1
)

// RelationLedger tracks a relation scalar per kingdom ID.
type RelationLedger struct {
	values map[string]float64
}

// NewRelationLedger creates an empty ledger.
func NewRelationLedger() *RelationLedger {
	return &RelationLedger{values: make(map[string]float64)}
}

// Get returns the relation with a kingdom, 0 if untracked.
func (l *RelationLedger) Get(kingdomID string) float64 {
	return l.values[kingdomID]
}

// Set stores a relation, clamped to [-100, 100].
func (l *RelationLedger) Set(kingdomID string, value float64) {
	l.values[kingdomID] = clampRelation(value)
}

// Adjust applies a signed change and clamps.
func (l *RelationLedger) Adjust(kingdomID string, delta float64) {
	l.Set(kingdomID, l.values[kingdomID]+delta)
}

// dailyDrift moves every tracked relation toward zero by the drift step,
// never overshooting: a value of 0.05 becomes 0, not -0.05.
func (l *RelationLedger) dailyDrift() {
	for id, v := range l.values {
		switch {
		case v > relationDrift:
			l.values[id] = v - relationDrift
		case v < -relationDrift:
			l.values[id] = v + relationDrift
		default:
			l.values[id] = 0
		}
	}
}

// snapshotMap returns a copy of all tracked relations.
func (l *RelationLedger) snapshotMap() map[string]float64 {
	out := make(map[string]float64, len(l.values))
	for id, v := range l.values {
		out[id] = v
	}
	return out
}

func clampRelation(v float64) float64 {
	if v < RelationMin {
		return RelationMin
	}
	if v > RelationMax {
		return RelationMax
	}
	return v
}
