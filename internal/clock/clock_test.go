package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed(t *testing.T) {
	start := time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC)
	c := NewFixed(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now(), "fixed clock must not drift")

	c.Advance(time.Millisecond)
	assert.Equal(t, start.Add(time.Millisecond), c.Now())

	later := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestFixed_ImplementsClock(t *testing.T) {
	var _ Clock = NewFixed(time.Time{})
	var _ Clock = System{}
}
