package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_ResetAndTick(t *testing.T) {
	c := NewCountdown()
	assert.False(t, c.Active())

	c.Reset(3)
	assert.True(t, c.Active())
	assert.Equal(t, 3, c.Remaining())

	assert.False(t, c.Tick())
	assert.Equal(t, 2, c.Remaining())

	assert.False(t, c.Tick())
	assert.True(t, c.Tick())
	assert.Equal(t, 0, c.Remaining())
	assert.False(t, c.Active())
}

func TestCountdown_ExpiresOnlyOnce(t *testing.T) {
	c := NewCountdown()
	c.Reset(1)

	assert.True(t, c.Tick())
	assert.False(t, c.Tick())
	assert.False(t, c.Tick())
}

func TestCountdown_StopPreservesRemaining(t *testing.T) {
	c := NewCountdown()
	c.Reset(10)
	c.Tick()
	c.Stop()

	assert.False(t, c.Active())
	assert.Equal(t, 9, c.Remaining())

	// A stopped countdown never ticks down or expires.
	assert.False(t, c.Tick())
	assert.Equal(t, 9, c.Remaining())
}

func TestCountdown_InactiveNeverExpires(t *testing.T) {
	c := NewCountdown()
	assert.False(t, c.Tick())
	assert.Equal(t, 0, c.Remaining())
}

func TestScheduler_RunsInOrder(t *testing.T) {
	s := NewScheduler()
	var fired []string

	s.Schedule(2, func() { fired = append(fired, "late") })
	s.Schedule(1, func() { fired = append(fired, "early") })

	s.Tick()
	assert.Equal(t, []string{"early"}, fired)

	s.Tick()
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, 0, s.Len())
}

func TestScheduler_ZeroDelayRunsImmediately(t *testing.T) {
	s := NewScheduler()
	ran := false

	s.Schedule(0, func() { ran = true })
	assert.True(t, ran)
	assert.Equal(t, 0, s.Len())
}

func TestScheduler_ReschedulingFromCallbackWaitsForNextTick(t *testing.T) {
	s := NewScheduler()
	count := 0

	s.Schedule(1, func() {
		count++
		s.Schedule(1, func() { count++ })
	})

	s.Tick()
	assert.Equal(t, 1, count)

	s.Tick()
	assert.Equal(t, 2, count)
}

func TestScheduler_Clear(t *testing.T) {
	s := NewScheduler()
	ran := false

	s.Schedule(1, func() { ran = true })
	s.Clear()
	s.Tick()

	assert.False(t, ran)
}

func TestScheduler_SameTickTasksAllFire(t *testing.T) {
	s := NewScheduler()
	count := 0

	s.Schedule(3, func() { count++ })
	s.Schedule(3, func() { count++ })
	s.Schedule(3, func() { count++ })

	s.Tick()
	s.Tick()
	assert.Equal(t, 0, count)

	s.Tick()
	assert.Equal(t, 3, count)
}
