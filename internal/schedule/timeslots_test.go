package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-service/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		brk      int
		want     []string
	}{
		{
			name:  "exclusive upper bound",
			start: "09:00", end: "10:00", duration: 30, brk: 0,
			want: []string{"09:00", "09:30"},
		},
		{
			name:  "with break",
			start: "09:00", end: "11:00", duration: 30, brk: 15,
			want: []string{"09:00", "09:45", "10:30"},
		},
		{
			name:  "slot start would hit end exactly",
			start: "09:00", end: "09:30", duration: 30, brk: 0,
			want: []string{"09:00"},
		},
		{
			name:  "uneven tail slot still emitted",
			start: "09:00", end: "10:15", duration: 30, brk: 0,
			want: []string{"09:00", "09:30", "10:00"},
		},
		{
			name:  "full working day",
			start: "09:00", end: "17:00", duration: 60, brk: 0,
			want: []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateTimeSlots(types.TimeString(tt.start), types.TimeString(tt.end), tt.duration, tt.brk)
			require.NoError(t, err)

			labels := make([]string, len(got))
			for i, ts := range got {
				labels[i] = ts.String()
			}
			assert.Equal(t, tt.want, labels)
		})
	}
}

func TestGenerateTimeSlots_AllWithinBounds(t *testing.T) {
	start := types.TimeString("08:15")
	end := types.TimeString("12:45")

	slots, err := GenerateTimeSlots(start, end, 25, 5)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		assert.False(t, slot.IsBefore(start), "slot %s before start", slot)
		assert.True(t, slot.IsBefore(end), "slot %s at or past end", slot)
	}
}

func TestGenerateTimeSlots_Restartable(t *testing.T) {
	// Preview и commit вызывают генерацию дважды с одними входными данными
	first, err := GenerateTimeSlots("09:00", "17:00", 30, 10)
	require.NoError(t, err)
	second, err := GenerateTimeSlots("09:00", "17:00", 30, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTimeSlots_NearMidnight(t *testing.T) {
	slots, err := GenerateTimeSlots("23:00", "23:59", 30, 0)
	require.NoError(t, err)

	labels := make([]string, len(slots))
	for i, ts := range slots {
		labels[i] = ts.String()
	}
	assert.Equal(t, []string{"23:00", "23:30"}, labels)
}

func TestGenerateTimeSlots_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		brk      int
		wantErr  error
	}{
		{"start equals end", "09:00", "09:00", 30, 0, ErrInvalidRange},
		{"start after end", "17:00", "09:00", 30, 0, ErrInvalidRange},
		{"zero duration", "09:00", "17:00", 0, 0, ErrInvalidDuration},
		{"negative duration", "09:00", "17:00", -30, 0, ErrInvalidDuration},
		{"negative break", "09:00", "17:00", 30, -5, ErrInvalidDuration},
		{"malformed start", "9am", "17:00", 30, 0, ErrInvalidRange},
		{"malformed end", "09:00", "25:00", 30, 0, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateTimeSlots(types.TimeString(tt.start), types.TimeString(tt.end), tt.duration, tt.brk)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
