package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimDate(t *testing.T) {
	assert.Equal(t, "Year 1, Day 1", SimDate(0))
	assert.Equal(t, "Year 1, Day 365", SimDate(364))
	assert.Equal(t, "Year 2, Day 1", SimDate(365))
	assert.Equal(t, "Year 3, Day 100", SimDate(2*365+99))
}

func TestRunAdvancesDaysInOrder(t *testing.T) {
	eng := NewEngine()
	eng.Interval = time.Millisecond

	var days []int
	done := make(chan struct{})
	eng.OnDay = func(day int) {
		days = append(days, day)
		if day == 3 {
			eng.Stop()
			close(done)
		}
	}

	go eng.Run()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		eng.Stop()
		t.Fatal("engine never reached day 3")
	}

	require.GreaterOrEqual(t, len(days), 3)
	assert.Equal(t, []int{1, 2, 3}, days[:3])
}

// Speed and Running are adjusted from other goroutines while the loop
// runs; this keeps the race detector honest about that access.
func TestConcurrentSpeedChanges(t *testing.T) {
	eng := NewEngine()
	eng.Interval = time.Millisecond

	stopped := make(chan struct{})
	eng.OnDay = func(day int) {
		if day >= 20 {
			eng.Stop()
		}
	}
	go func() {
		eng.Run()
		close(stopped)
	}()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				eng.SetSpeed(float64(1 + n))
				_ = eng.Speed()
				_ = eng.Running()
			}
		}(i)
	}
	wg.Wait()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		eng.Stop()
		t.Fatal("engine never stopped")
	}
	assert.False(t, eng.Running())
	assert.Greater(t, eng.Speed(), 0.0)
}
