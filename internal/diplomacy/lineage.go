// LineageTracker — ancestor sets per person, used to detect inbreeding
// between marriage partners. Records are kept forever: a deceased
// ancestor still matters for their descendants' checks.
package diplomacy

import "sort"

// LineageTracker maps a person ID to the transitive closure of their
// ancestor IDs.
type LineageTracker struct {
	ancestors map[string]map[string]struct{}
}

// NewLineageTracker creates an empty tracker.
func NewLineageTracker() *LineageTracker {
	return &LineageTracker{ancestors: make(map[string]map[string]struct{})}
}

// Register records personID's ancestor set as the union of parentIDs and
// each parent's own recorded ancestors. The set is recorded once, at
// creation time; a second registration for the same person is a no-op.
func (t *LineageTracker) Register(personID string, parentIDs []string) {
	if _, exists := t.ancestors[personID]; exists {
		return
	}
	set := make(map[string]struct{})
	for _, pid := range parentIDs {
		set[pid] = struct{}{}
		for anc := range t.ancestors[pid] {
			set[anc] = struct{}{}
		}
	}
	t.ancestors[personID] = set
}

// SharedAncestor reports whether the two persons' ancestor sets overlap
// at any depth.
func (t *LineageTracker) SharedAncestor(personID1, personID2 string) bool {
	a, b := t.ancestors[personID1], t.ancestors[personID2]
	// Scan the smaller set.
	if len(b) < len(a) {
		a, b = b, a
	}
	for anc := range a {
		if _, ok := b[anc]; ok {
			return true
		}
	}
	return false
}

// AncestorsOf returns a sorted copy of the recorded ancestor set.
func (t *LineageTracker) AncestorsOf(personID string) []string {
	set := t.ancestors[personID]
	out := make([]string, 0, len(set))
	for anc := range set {
		out = append(out, anc)
	}
	sort.Strings(out)
	return out
}

// personIDs returns every recorded person ID, sorted.
func (t *LineageTracker) personIDs() []string {
	out := make([]string, 0, len(t.ancestors))
	for pid := range t.ancestors {
		out = append(out, pid)
	}
	sort.Strings(out)
	return out
}

// restore installs a pre-computed ancestor set during deserialization.
func (t *LineageTracker) restore(personID string, ancestorIDs []string) {
	set := make(map[string]struct{}, len(ancestorIDs))
	for _, anc := range ancestorIDs {
		set[anc] = struct{}{}
	}
	t.ancestors[personID] = set
}
