package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"09:00:00", "09:00", false}, // формат time-колонок PostgreSQL
		{"9:00", "", true},
		{"24:00", "", true},
		{"09:60", "", true},
		{"", "", true},
		{"abcde", "", true},
	}

	for _, tt := range tests {
		got, err := NewTimeStringFromString(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:50")

	got, err := ts.AddMinutes(20)
	require.NoError(t, err)
	// переход через полночь заворачивается
	assert.Equal(t, TimeString("00:10"), got)

	got, err = ts.AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:50"), got)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_AtDate(t *testing.T) {
	date := time.Date(2026, 9, 7, 15, 45, 12, 0, time.UTC)

	got, err := TimeString("08:30").AtDate(date)
	require.NoError(t, err)

	// время дня берётся из TimeString, дата и таймзона - из аргумента
	assert.Equal(t, time.Date(2026, 9, 7, 8, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:30")))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 7, 22, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("22:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
