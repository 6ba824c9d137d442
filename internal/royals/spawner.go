// Royal spawning — creates rulers and heirs with names, ages, and traits.
package royals

import (
	"github.com/google/uuid"

	"github.com/talgya/crowncourt/internal/entropy"
)

// Age bounds for generated royals.
const (
	rulerMinAge = 30
	rulerMaxAge = 59
	heirMinAge  = 16
	heirMaxAge  = 30
)

var maleNames = []string{
	"Aldric", "Baldwin", "Cedric", "Dorian", "Edmund", "Gareth",
	"Hadrian", "Leopold", "Magnus", "Osric", "Roderick", "Theobald",
	"Ulric", "Valerian", "Wilhelm",
}

var femaleNames = []string{
	"Adelaide", "Beatrix", "Celestine", "Elowen", "Genevieve", "Isolde",
	"Lysandra", "Margaery", "Octavia", "Rosalind", "Seraphine", "Thessaly",
	"Vivienne", "Wilhelmina", "Yvaine",
}

var traitPool = []Trait{
	TraitBeautiful, TraitWise, TraitStrong, TraitCruel, TraitPious, TraitAmbitious,
}

// Spawner creates royals for kingdom generation.
type Spawner struct {
	rng entropy.Source
}

// NewSpawner creates a spawner drawing from the given random source.
func NewSpawner(rng entropy.Source) *Spawner {
	return &Spawner{rng: rng}
}

// NewRuler generates a reigning ruler: age 30-59, random gender, 1-2 traits.
func (s *Spawner) NewRuler(dynasty string) *Person {
	gender := s.randomGender()
	return &Person{
		ID:      uuid.NewString(),
		Name:    s.randomName(gender),
		Dynasty: dynasty,
		Gender:  gender,
		Age:     float64(rulerMinAge + s.rng.Intn(rulerMaxAge-rulerMinAge+1)),
		Traits:  s.randomTraits(),
		Alive:   true,
	}
}

// NewHeir generates an heir: age 16-30, random gender, 1-2 traits, unmarried.
func (s *Spawner) NewHeir(dynasty string) *Person {
	gender := s.randomGender()
	return &Person{
		ID:      uuid.NewString(),
		Name:    s.randomName(gender),
		Dynasty: dynasty,
		Gender:  gender,
		Age:     float64(heirMinAge + s.rng.Intn(heirMaxAge-heirMinAge+1)),
		Traits:  s.randomTraits(),
		Alive:   true,
	}
}

func (s *Spawner) randomGender() Gender {
	if s.rng.Float() < 0.5 {
		return GenderMale
	}
	return GenderFemale
}

func (s *Spawner) randomName(gender Gender) string {
	if gender == GenderMale {
		return maleNames[s.rng.Intn(len(maleNames))]
	}
	return femaleNames[s.rng.Intn(len(femaleNames))]
}

// randomTraits picks 1-2 distinct traits from the pool.
func (s *Spawner) randomTraits() []Trait {
	count := 1 + s.rng.Intn(2)
	traits := make([]Trait, 0, count)
	for len(traits) < count {
		t := traitPool[s.rng.Intn(len(traitPool))]
		dup := false
		for _, have := range traits {
			if have == t {
				dup = true
				break
			}
		}
		if !dup {
			traits = append(traits, t)
		}
	}
	return traits
}
