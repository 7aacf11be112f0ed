//go:build unit

package retry_test

import (
	"testing"
	"time"

	"transit-booking/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
)

func TestCapped(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt, want := range []time.Duration{100, 200, 400, 800} {
		want *= time.Millisecond
		got := retry.Capped(attempt, base, time.Hour)
		assert.GreaterOrEqual(t, got, want)
		assert.LessOrEqual(t, got, want+want/5)
	}

	assert.Equal(t, time.Second, retry.Capped(10, base, time.Second))
	assert.Less(t, retry.Capped(0, base, time.Second), time.Second)
}

func TestCapped_NegativeAttemptUsesBase(t *testing.T) {
	got := retry.Capped(-1, 100*time.Millisecond, 0)
	assert.GreaterOrEqual(t, got, 100*time.Millisecond)
	assert.LessOrEqual(t, got, 120*time.Millisecond)
}

func TestCapped_LargeAttemptDoesNotOverflow(t *testing.T) {
	assert.Equal(t, retry.Capped(16, 0, 0), retry.Capped(40, 0, 0))
	assert.Equal(t, time.Minute, retry.Capped(1000, time.Second, time.Minute))
}
