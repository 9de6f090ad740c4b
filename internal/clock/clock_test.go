package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	actual := RealClock{}.Now()
	after := time.Now()

	assert.False(t, actual.Before(before))
	assert.False(t, actual.After(after))
}

func TestFakeClock_Advance(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	c := NewFakeClock(start)

	assert.True(t, c.Now().Equal(start))

	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, Millis(start)+1500, Millis(c.Now()))
}

func TestMillis(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1704067200000), Millis(ts))
}
