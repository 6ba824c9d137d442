package diplomacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/crowncourt/internal/realm"
	"github.com/talgya/crowncourt/internal/royals"
)

// Draw order within a day for a single active kingdom:
// survival roll, discovery roll, then (if the ruler is past the death
// age) the death roll.

func TestAgingIsFractional(t *testing.T) {
	ruler := testPerson("r1", "Magnus", royals.GenderMale, 50)
	heir := testPerson("h1", "Beatrix", royals.GenderFemale, 20)
	core := New(Config{RNG: &scriptedSource{floats: []float64{0.0, 0.9}}})
	core.Restore(State{Kingdoms: []*realm.Kingdom{testKingdom("k1", "Valdoria", ruler, heir)}})

	require.NoError(t, core.ProcessDaily(1, 1, 0))

	k, _ := core.Kingdom("k1")
	assert.InDelta(t, 50.0+1.0/365.0, k.Ruler.Age, 1e-9)
	assert.InDelta(t, 20.0+1.0/365.0, k.Heirs[0].Age, 1e-9)
}

func TestDeadRoyalsDoNotAge(t *testing.T) {
	ruler := testPerson("r1", "Magnus", royals.GenderMale, 50)
	heir := testPerson("h1", "Beatrix", royals.GenderFemale, 20)
	heir.Alive = false
	core := New(Config{RNG: &scriptedSource{floats: []float64{0.0, 0.9}}})
	core.Restore(State{Kingdoms: []*realm.Kingdom{testKingdom("k1", "Valdoria", ruler, heir)}})

	require.NoError(t, core.ProcessDaily(1, 1, 0))

	k, _ := core.Kingdom("k1")
	assert.Equal(t, 20.0, k.Heirs[0].Age)
}

func TestSuccessionPromotesFirstEligibleHeir(t *testing.T) {
	ruler := testPerson("r1", "Magnus", royals.GenderMale, 81)
	heir := testPerson("h1", "Beatrix", royals.GenderFemale, 20)
	core := New(Config{RNG: &scriptedSource{
		// Survive, no discovery, then a forced death roll.
		floats: []float64{0.0, 0.9, 0.001},
	}})
	core.Restore(State{Kingdoms: []*realm.Kingdom{testKingdom("k1", "Valdoria", ruler, heir)}})

	var events []Event
	core.Subscribe(ObserverFunc(func(e Event) { events = append(events, e) }))

	require.NoError(t, core.ProcessDaily(1, 1, 0))

	k, err := core.Kingdom("k1")
	require.NoError(t, err)
	assert.True(t, k.Active(), "succession keeps the kingdom alive")
	assert.Equal(t, "h1", k.Ruler.ID)
	assert.True(t, k.Ruler.Alive)
	assert.Empty(t, k.Heirs)

	require.Len(t, events, 1)
	assert.Equal(t, EventRulerSucceeded, events[0].Kind)
	require.NotNil(t, events[0].Person)
	assert.Equal(t, "h1", events[0].Person.ID)
}

func TestSuccessionSkipsDeadAndMarriedHeirs(t *testing.T) {
	ruler := testPerson("r1", "Magnus", royals.GenderMale, 81)
	dead := testPerson("h1", "Cedric", royals.GenderMale, 25)
	dead.Alive = false
	married := testPerson("h2", "Isolde", royals.GenderFemale, 22)
	married.Married = true
	eligible := testPerson("h3", "Gareth", royals.GenderMale, 18)

	core := New(Config{RNG: &scriptedSource{floats: []float64{0.0, 0.9, 0.001}}})
	core.Restore(State{Kingdoms: []*realm.Kingdom{
		testKingdom("k1", "Valdoria", ruler, dead, married, eligible),
	}})

	require.NoError(t, core.ProcessDaily(1, 1, 0))

	k, _ := core.Kingdom("k1")
	assert.Equal(t, "h3", k.Ruler.ID)
	// The skipped heirs stay in the list.
	require.Len(t, k.Heirs, 2)
	assert.Equal(t, "h1", k.Heirs[0].ID)
	assert.Equal(t, "h2", k.Heirs[1].ID)
}

func TestExtinctionDestroysKingdom(t *testing.T) {
	ruler := testPerson("r1", "Magnus", royals.GenderMale, 81)
	married := testPerson("h1", "Isolde", royals.GenderFemale, 22)
	married.Married = true

	core := New(Config{RNG: &scriptedSource{floats: []float64{0.0, 0.9, 0.001}}})
	core.Restore(State{Kingdoms: []*realm.Kingdom{
		testKingdom("k1", "Valdoria", ruler, married),
	}})

	require.NoError(t, core.ProcessDaily(7, 1, 0))

	k, err := core.Kingdom("k1")
	require.NoError(t, err)
	assert.True(t, k.Destroyed)
	require.NotNil(t, k.DestroyedDay)
	assert.Equal(t, 7, *k.DestroyedDay)
	assert.False(t, k.Ruler.Alive)
	for _, h := range k.Heirs {
		assert.False(t, h.Alive)
	}
}

func TestNoDeathRollBelowThresholdAge(t *testing.T) {
	ruler := testPerson("r1", "Magnus", royals.GenderMale, 79)
	core := New(Config{RNG: &scriptedSource{
		// Only survival and discovery draws; a death roll would read a
		// third float and 0.001 would kill.
		floats: []float64{0.0, 0.9, 0.001},
	}})
	core.Restore(State{Kingdoms: []*realm.Kingdom{testKingdom("k1", "Valdoria", ruler)}})

	require.NoError(t, core.ProcessDaily(1, 1, 0))

	k, _ := core.Kingdom("k1")
	assert.True(t, k.Ruler.Alive)
	assert.True(t, k.Active())
}
