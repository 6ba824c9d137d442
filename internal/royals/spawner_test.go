package royals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/crowncourt/internal/entropy"
)

func TestNewRulerShape(t *testing.T) {
	sp := NewSpawner(entropy.NewSeeded(1))
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		p := sp.NewRuler("House Ravencrest")
		require.False(t, seen[p.ID], "ids must be unique")
		seen[p.ID] = true

		assert.Equal(t, "House Ravencrest", p.Dynasty)
		assert.True(t, p.Alive)
		assert.False(t, p.Married)
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Age, 30.0)
		assert.LessOrEqual(t, p.Age, 59.0)
		assertDistinctTraits(t, p)
	}
}

func TestNewHeirShape(t *testing.T) {
	sp := NewSpawner(entropy.NewSeeded(2))

	for i := 0; i < 200; i++ {
		p := sp.NewHeir("House Thornefield")
		assert.True(t, p.Alive)
		assert.False(t, p.Married)
		assert.GreaterOrEqual(t, p.Age, 16.0)
		assert.LessOrEqual(t, p.Age, 30.0)
		assertDistinctTraits(t, p)
	}
}

func assertDistinctTraits(t *testing.T, p *Person) {
	t.Helper()
	require.GreaterOrEqual(t, len(p.Traits), 1)
	require.LessOrEqual(t, len(p.Traits), 2)
	if len(p.Traits) == 2 {
		assert.NotEqual(t, p.Traits[0], p.Traits[1])
	}
}

func TestGenderOpposite(t *testing.T) {
	assert.Equal(t, GenderFemale, GenderMale.Opposite())
	assert.Equal(t, GenderMale, GenderFemale.Opposite())
}

func TestPersonCloneIsDeep(t *testing.T) {
	p := &Person{
		ID:     "p1",
		Name:   "Magnus",
		Gender: GenderMale,
		Age:    40,
		Traits: []Trait{TraitWise},
		Alive:  true,
	}

	cp := p.Clone()
	cp.Traits[0] = TraitCruel
	cp.Alive = false

	assert.Equal(t, TraitWise, p.Traits[0])
	assert.True(t, p.Alive)
	assert.Nil(t, (*Person)(nil).Clone())
}

func TestHasTrait(t *testing.T) {
	p := &Person{Traits: []Trait{TraitBeautiful, TraitPious}}
	assert.True(t, p.HasTrait(TraitBeautiful))
	assert.False(t, p.HasTrait(TraitStrong))
}
