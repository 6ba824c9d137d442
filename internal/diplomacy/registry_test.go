package diplomacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/crowncourt/internal/entropy"
	"github.com/talgya/crowncourt/internal/realm"
)

func TestSeedKingdomsRespectsCap(t *testing.T) {
	core := New(Config{RNG: entropy.NewSeeded(11)})

	created := core.SeedKingdoms(10)
	assert.Equal(t, KingdomCap, created)

	// At the cap, further creation silently yields nothing.
	assert.Equal(t, 0, core.SeedKingdoms(1))
	assert.Nil(t, core.createKingdom())
}

func TestCreatedKingdomShape(t *testing.T) {
	core := New(Config{RNG: entropy.NewSeeded(23)})
	core.SeedKingdoms(KingdomCap)

	names := make(map[string]bool)
	for _, k := range core.Kingdoms() {
		assert.False(t, names[k.Name], "kingdom names must be unique")
		names[k.Name] = true

		assert.Contains(t, realm.KingdomNames, k.Name)
		assert.Contains(t, realm.DynastyNames, k.Dynasty)

		require.NotNil(t, k.Ruler)
		assert.True(t, k.Ruler.Alive)
		assert.GreaterOrEqual(t, k.Ruler.Age, 30.0)
		assert.LessOrEqual(t, k.Ruler.Age, 59.0)
		assert.NotEmpty(t, k.Ruler.Traits)
		assert.LessOrEqual(t, len(k.Ruler.Traits), 2)

		assert.GreaterOrEqual(t, len(k.Heirs), 1)
		assert.LessOrEqual(t, len(k.Heirs), 3)
		for _, h := range k.Heirs {
			assert.True(t, h.Alive)
			assert.False(t, h.Married)
			assert.GreaterOrEqual(t, h.Age, 16.0)
			assert.LessOrEqual(t, h.Age, 30.0)
			assert.Equal(t, k.Dynasty, h.Dynasty)
		}

		assert.GreaterOrEqual(t, k.Strength, 50)
		assert.LessOrEqual(t, k.Strength, 99)
		assert.GreaterOrEqual(t, k.Wealth, 100)
		assert.LessOrEqual(t, k.Wealth, 299)

		assert.Equal(t, 0.0, core.Relation(k.ID))
		assert.False(t, k.Destroyed)
		assert.Nil(t, k.DestroyedDay)
	}
}

func TestDestroyKingdomIsIdempotent(t *testing.T) {
	core := New(Config{RNG: entropy.NewSeeded(5)})
	core.SeedKingdoms(1)
	id := core.Kingdoms()[0].ID

	var events []Event
	core.Subscribe(ObserverFunc(func(e Event) { events = append(events, e) }))

	core.DestroyKingdom(id)

	k, err := core.Kingdom(id)
	require.NoError(t, err)
	require.True(t, k.Destroyed)
	require.NotNil(t, k.DestroyedDay)
	firstDay := *k.DestroyedDay
	assert.False(t, k.Ruler.Alive)
	for _, h := range k.Heirs {
		assert.False(t, h.Alive)
	}

	// Second destruction: no event, no day change.
	core.DestroyKingdom(id)
	k2, err := core.Kingdom(id)
	require.NoError(t, err)
	assert.Equal(t, firstDay, *k2.DestroyedDay)
	assert.Len(t, events, 1)

	// Unknown IDs are a no-op too.
	core.DestroyKingdom("nobody")
	assert.Len(t, events, 1)
}

func TestSurvivalRollFailureDestroysKingdom(t *testing.T) {
	ruler := testPerson("r1", "Osric", 0, 45)
	heir := testPerson("h1", "Elowen", 1, 20)
	core := New(Config{RNG: &scriptedSource{
		// At threat 3 survival is 0.9975; a draw of 0.9999 destroys.
		// The second draw is the discovery check, which misses.
		floats: []float64{0.9999, 0.9},
	}})
	core.Restore(State{Kingdoms: []*realm.Kingdom{testKingdom("k1", "Valdoria", ruler, heir)}})

	require.NoError(t, core.ProcessDaily(10, 3, 0))

	k, err := core.Kingdom("k1")
	require.NoError(t, err)
	assert.True(t, k.Destroyed)
	require.NotNil(t, k.DestroyedDay)
	assert.Equal(t, 10, *k.DestroyedDay)
}

func TestSurvivalRollSuccessKeepsKingdom(t *testing.T) {
	ruler := testPerson("r1", "Osric", 0, 45)
	core := New(Config{RNG: &scriptedSource{
		floats: []float64{0.5, 0.9},
	}})
	core.Restore(State{Kingdoms: []*realm.Kingdom{testKingdom("k1", "Valdoria", ruler)}})

	require.NoError(t, core.ProcessDaily(10, 3, 0))
	k, _ := core.Kingdom("k1")
	assert.True(t, k.Active())
}

func TestDiscoveryCreatesKingdomAndEmits(t *testing.T) {
	core := New(Config{RNG: &scriptedSource{
		// First float is the discovery draw; everything after feeds the
		// spawner with neutral values.
		floats: []float64{0.0001},
	}})

	var events []Event
	core.Subscribe(ObserverFunc(func(e Event) { events = append(events, e) }))

	require.NoError(t, core.ProcessDaily(1, 1, 0))

	kingdoms := core.Kingdoms()
	require.Len(t, kingdoms, 1)
	assert.True(t, kingdoms[0].Active())
	assert.Equal(t, 1, kingdoms[0].CreatedDay)

	require.Len(t, events, 1)
	assert.Equal(t, EventKingdomCreated, events[0].Kind)
	assert.Equal(t, kingdoms[0].ID, events[0].KingdomID)
}

func TestDiscoveryMissesWithHighDraw(t *testing.T) {
	core := New(Config{RNG: &scriptedSource{floats: []float64{0.5}}})
	require.NoError(t, core.ProcessDaily(1, 1, 0))
	assert.Empty(t, core.Kingdoms())
}
