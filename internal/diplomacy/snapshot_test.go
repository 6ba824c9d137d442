package diplomacy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/crowncourt/internal/entropy"
	"github.com/talgya/crowncourt/internal/realm"
	"github.com/talgya/crowncourt/internal/royals"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	core := New(Config{RNG: entropy.NewSeeded(7)})
	core.SeedKingdoms(3)
	core.RegisterLineage("child-1", []string{"parent-a", "parent-b"})
	core.RegisterLineage("child-2", []string{"child-1", "parent-c"})
	for i := 0; i < 30; i++ {
		require.NoError(t, core.ProcessDaily(i+1, 2, 10))
	}

	st := core.Snapshot()

	other := New(Config{})
	other.Restore(st)

	assert.Equal(t, st, other.Snapshot())
	assert.Equal(t, core.Day(), other.Day())

	// The restored lineage answers kinship queries like the original.
	assert.True(t, other.CheckInbreeding("child-2", "child-1"))
}

func TestSnapshotIsDetachedFromLiveState(t *testing.T) {
	core := New(Config{RNG: entropy.NewSeeded(7)})
	core.SeedKingdoms(1)

	st := core.Snapshot()
	require.Len(t, st.Kingdoms, 1)
	st.Kingdoms[0].Ruler.Alive = false
	st.Kingdoms[0].Name = "Mutated"

	live := core.Kingdoms()[0]
	assert.True(t, live.Ruler.Alive)
	assert.NotEqual(t, "Mutated", live.Name)
}

func TestProcessDailyPersistsState(t *testing.T) {
	store := newMemStore()
	core := New(Config{RNG: entropy.NewSeeded(7), Store: store})
	core.SeedKingdoms(2)

	require.NoError(t, core.ProcessDaily(1, 0, 0))

	blob, ok := store.data[StateKey]
	require.True(t, ok)

	var st State
	require.NoError(t, json.Unmarshal(blob, &st))
	assert.Equal(t, 1, st.Day)
	assert.Len(t, st.Kingdoms, 2)
}

func TestProcessDailyReportsSaveFailure(t *testing.T) {
	store := newMemStore()
	store.failSave = true
	core := New(Config{RNG: entropy.NewSeeded(7), Store: store})
	core.SeedKingdoms(1)

	err := core.ProcessDaily(1, 0, 0)
	assert.Error(t, err)
	// The in-memory day still advances; only persistence failed.
	assert.Equal(t, 1, core.Day())
}

func TestLoadStateRestores(t *testing.T) {
	store := newMemStore()

	first := New(Config{RNG: entropy.NewSeeded(7), Store: store})
	first.SeedKingdoms(3)
	require.NoError(t, first.ProcessDaily(12, 0, 0))
	want := first.Snapshot()

	second := New(Config{Store: store})
	second.LoadState()

	assert.Equal(t, want, second.Snapshot())
	assert.Equal(t, 12, second.Day())
}

func TestLoadStateDegradesToDefaults(t *testing.T) {
	cases := map[string]func() *memStore{
		"missing blob": newMemStore,
		"load failure": func() *memStore {
			s := newMemStore()
			s.failLoad = true
			return s
		},
		"malformed blob": func() *memStore {
			s := newMemStore()
			s.data[StateKey] = []byte("{not json")
			return s
		},
		"kingdom without ruler": func() *memStore {
			s := newMemStore()
			s.data[StateKey] = []byte(`{"kingdoms":[{"id":"k1","name":"Valdoria"}]}`)
			return s
		},
		"null heir": func() *memStore {
			s := newMemStore()
			s.data[StateKey] = []byte(`{"kingdoms":[{"id":"k1","name":"Valdoria",` +
				`"ruler":{"id":"r1","name":"Magnus","alive":true},"heirs":[null]}]}`)
			return s
		},
	}

	for name, mk := range cases {
		t.Run(name, func(t *testing.T) {
			core := New(Config{Store: mk()})
			core.LoadState()

			assert.Equal(t, 0, core.Day())
			assert.Empty(t, core.Kingdoms())
		})
	}
}

func TestTickAfterDegradedLoadIsSafe(t *testing.T) {
	store := newMemStore()
	store.data[StateKey] = []byte(`{"day":40,"kingdoms":[{"id":"k1","name":"Valdoria"}]}`)

	core := New(Config{RNG: entropy.NewSeeded(7), Store: store})
	core.LoadState()

	assert.Empty(t, core.Kingdoms())
	require.NoError(t, core.ProcessDaily(41, 1, 0))
	assert.Equal(t, 41, core.Day())
}

func TestLoadStateWithoutStoreIsNoop(t *testing.T) {
	core := New(Config{})
	core.LoadState()
	assert.Equal(t, 0, core.Day())
}

func TestFlushWritesCurrentState(t *testing.T) {
	store := newMemStore()
	core := New(Config{Store: store})
	core.Restore(State{
		Kingdoms: []*realm.Kingdom{
			testKingdom("k1", "Valdoria", testPerson("r1", "Magnus", royals.GenderMale, 50)),
		},
		Day: 99,
	})

	require.NoError(t, core.Flush())

	var st State
	require.NoError(t, json.Unmarshal(store.data[StateKey], &st))
	assert.Equal(t, 99, st.Day)
	require.Len(t, st.Kingdoms, 1)
	assert.Equal(t, "Valdoria", st.Kingdoms[0].Name)
}
