package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{
			name:  "valid HH:MM",
			input: "09:00",
			want:  "09:00",
		},
		{
			name:  "HH:MM:SS truncates seconds",
			input: "09:00:00",
			want:  "09:00",
		},
		{
			name:    "missing leading zero",
			input:   "9:00",
			wantErr: true,
		},
		{
			name:    "missing leading zero with seconds",
			input:   "9:00:00",
			wantErr: true,
		},
		{
			name:    "out of range hour",
			input:   "25:00",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		delta   int
		want    TimeString
		wantErr bool
	}{
		{
			name:  "add one hour",
			start: "09:00",
			delta: 60,
			want:  "10:00",
		},
		{
			name:  "add partial hour",
			start: "09:30",
			delta: 45,
			want:  "10:15",
		},
		{
			name:  "end of last slot hits midnight",
			start: "23:00",
			delta: 60,
			want:  "24:00",
		},
		{
			name:    "past midnight",
			start:   "23:30",
			delta:   60,
			wantErr: true,
		},
		{
			name:    "negative below day start",
			start:   "00:30",
			delta:   -60,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.delta)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("11:00").IsAfter("10:30"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	require.Error(t, err)
}
