// Package royals provides the person data model for rulers and heirs,
// trait tags, and the spawner that generates royal households.
package royals

// Gender of a royal, used for marriage candidate matching.
type Gender uint8

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

// Opposite returns the other gender.
func (g Gender) Opposite() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

// Trait is a tag carried by a royal. Some traits affect dowries.
type Trait string

const (
	TraitBeautiful Trait = "beautiful"
	TraitWise      Trait = "wise"
	TraitStrong    Trait = "strong"
	TraitCruel     Trait = "cruel"
	TraitPious     Trait = "pious"
	TraitAmbitious Trait = "ambitious"
)

// Person is a ruler or heir of a kingdom.
type Person struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Dynasty string  `json:"dynasty"`
	Gender  Gender  `json:"gender"`
	Age     float64 `json:"age"` // Fractional years, advanced 1/365 per sim-day.
	Traits  []Trait `json:"traits"`
	Alive   bool    `json:"alive"`

	// Married only applies to heirs. A reigning ruler is the head of the
	// household and is not tracked for alliance purposes.
	Married bool `json:"married"`
}

// HasTrait reports whether the person carries the given trait.
func (p *Person) HasTrait(t Trait) bool {
	for _, have := range p.Traits {
		if have == t {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Accessors hand out clones so callers can
// never mutate the simulation's own records.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Traits = append([]Trait(nil), p.Traits...)
	return &cp
}
