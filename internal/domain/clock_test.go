package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{"08:00", NewClock(8, 0), false},
		{"00:00", NewClock(0, 0), false},
		{"23:59", NewClock(23, 59), false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestClock_String(t *testing.T) {
	assert.Equal(t, "08:05", NewClock(8, 5).String())
	assert.Equal(t, "00:00", NewClock(0, 0).String())
	assert.Equal(t, "23:59", NewClock(23, 59).String())
}

func TestClock_Add_WrapsAtMidnight(t *testing.T) {
	assert.Equal(t, NewClock(0, 10), NewClock(23, 50).Add(20))
	assert.Equal(t, NewClock(23, 50), NewClock(0, 10).Add(-20))
}

func TestClock_DurationTo(t *testing.T) {
	assert.Equal(t, 30, NewClock(8, 0).DurationTo(NewClock(8, 30)))
	assert.Equal(t, 0, NewClock(8, 0).DurationTo(NewClock(8, 0)))
	// Forward duration wraps when the next time is numerically smaller.
	assert.Equal(t, 20, NewClock(23, 50).DurationTo(NewClock(0, 10)))
	assert.Equal(t, 1439, NewClock(0, 1).DurationTo(NewClock(0, 0)))
}
