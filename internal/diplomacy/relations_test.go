package diplomacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationSetClamps(t *testing.T) {
	l := NewRelationLedger()

	l.Set("a", 150)
	assert.Equal(t, 100.0, l.Get("a"))

	l.Set("a", -150)
	assert.Equal(t, -100.0, l.Get("a"))

	l.Set("a", 42.5)
	assert.Equal(t, 42.5, l.Get("a"))
}

func TestRelationAdjustClamps(t *testing.T) {
	l := NewRelationLedger()

	l.Set("a", 90)
	l.Adjust("a", 30)
	assert.Equal(t, 100.0, l.Get("a"))

	l.Adjust("a", -250)
	assert.Equal(t, -100.0, l.Get("a"))
}

func TestRelationGetUntracked(t *testing.T) {
	l := NewRelationLedger()
	assert.Equal(t, 0.0, l.Get("missing"))
}

func TestDailyDriftMovesTowardZero(t *testing.T) {
	l := NewRelationLedger()
	l.Set("pos", 5)
	l.Set("neg", -5)

	l.dailyDrift()

	assert.InDelta(t, 4.9, l.Get("pos"), 1e-9)
	assert.InDelta(t, -4.9, l.Get("neg"), 1e-9)
}

func TestDailyDriftNeverOvershoots(t *testing.T) {
	l := NewRelationLedger()
	l.Set("small_pos", 0.05)
	l.Set("small_neg", -0.05)
	l.Set("zero", 0)

	l.dailyDrift()

	assert.Equal(t, 0.0, l.Get("small_pos"))
	assert.Equal(t, 0.0, l.Get("small_neg"))
	assert.Equal(t, 0.0, l.Get("zero"))
}
