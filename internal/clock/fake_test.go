package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFakeClock_AfterFunc(t *testing.T) {
	req := require.New(t)
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	c := Fake(start)

	var fired []string
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "second") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "first") })
	req.Equal(2, c.PendingCount())

	// When half of the first deadline elapsed nothing fires
	c.Advance(500 * time.Millisecond)
	req.Empty(fired)

	// When both deadlines are crossed they fire in deadline order
	c.Advance(2 * time.Second)
	req.Equal([]string{"first", "second"}, fired)
	req.Equal(0, c.PendingCount())
	req.Equal(start.Add(2500*time.Millisecond), c.Now())
}

func TestFakeClock_Stop(t *testing.T) {
	req := require.New(t)
	c := Fake(time.Now())

	called := false
	timer := c.AfterFunc(time.Second, func() { called = true })

	req.True(timer.Stop())
	req.False(timer.Stop())

	c.Advance(time.Minute)
	req.False(called)
	req.Equal(0, c.PendingCount())
}

func TestFakeClock_StopAfterFire(t *testing.T) {
	req := require.New(t)
	c := Fake(time.Now())

	timer := c.AfterFunc(time.Second, func() {})
	c.Advance(time.Second)

	req.False(timer.Stop())
}
