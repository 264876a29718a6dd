package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steve0012345/Snoonu-App/internal/clock"
)

func TestClock_Advance(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name    string
		speed   clock.Speed
		elapsed time.Duration
		want    time.Time
	}

	tests := []testCase{
		{
			name:    "NormalSpeed",
			speed:   clock.SpeedNormal,
			elapsed: time.Second,
			want:    start.Add(time.Second),
		},
		{
			name:    "FastSpeed",
			speed:   clock.SpeedFast,
			elapsed: time.Second,
			want:    start.Add(5 * time.Second),
		},
		{
			name:    "FastestSpeed",
			speed:   clock.SpeedFastest,
			elapsed: time.Second,
			want:    start.Add(20 * time.Second),
		},
		{
			name:    "FastestMinute",
			speed:   clock.SpeedFastest,
			elapsed: time.Minute,
			want:    start.Add(20 * time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := clock.New(start)
			require.NoError(t, c.SetSpeed(tt.speed))

			got := c.Advance(tt.elapsed)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, c.Now())
		})
	}
}

func TestClock_SetSpeedNotRetroactive(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.New(start)

	c.Advance(10 * time.Second)

	require.NoError(t, c.SetSpeed(clock.SpeedFastest))
	c.Advance(time.Second)

	// 10s at x1 plus 1s at x20; the first stretch is never rescaled.
	assert.Equal(t, start.Add(30*time.Second), c.Now())
}

func TestClock_SetSpeedInvalid(t *testing.T) {
	c := clock.New(time.Now())

	err := c.SetSpeed(clock.Speed(3))
	assert.ErrorIs(t, err, clock.ErrInvalidSpeed)
	assert.Equal(t, clock.SpeedNormal, c.Speed())
}

func TestClock_Reset(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.New(start)

	require.NoError(t, c.SetSpeed(clock.SpeedFast))
	c.Advance(time.Minute)

	fresh := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c.Reset(fresh)

	assert.Equal(t, fresh, c.Now())
	assert.Equal(t, clock.SpeedNormal, c.Speed())
}
