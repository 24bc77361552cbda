package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("19:30")
	require.NoError(t, err)
	assert.Equal(t, "19:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("19:60")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("7pm")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("19:00"))
	assert.True(t, TimeString("19:30").IsAfter("19:00"))
	assert.False(t, TimeString("19:00").IsBefore("19:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("19:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:15"), ts)

	// Wraps over midnight.
	ts, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), ts)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("19:00"))
	assert.Equal(t, TimeString("19:00"), ts)

	// TIME columns arrive with seconds.
	require.NoError(t, ts.Scan("19:30:00"))
	assert.Equal(t, TimeString("19:30"), ts)

	require.NoError(t, ts.Scan([]byte("20:00:00")))
	assert.Equal(t, TimeString("20:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 21, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("21:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("19:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "19:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
