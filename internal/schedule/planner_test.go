package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-service/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPlanBulkSlots_WeekdayFilter(t *testing.T) {
	// 2025-01-06 (Пн) .. 2025-01-12 (Вс), только будни
	req := BulkGenerationRequest{
		StartDate:           date(2025, time.January, 6),
		EndDate:             date(2025, time.January, 12),
		StartTime:           "09:00",
		EndTime:             "10:00",
		SlotDurationMinutes: 30,
		Weekdays:            []int{1, 2, 3, 4, 5},
	}

	slots, err := PlanBulkSlots(req, 1)
	require.NoError(t, err)

	// 5 будних дней * 2 слота в день
	require.Len(t, slots, 10)

	for _, slot := range slots {
		wd := ISOWeekday(slot.Date)
		assert.LessOrEqual(t, wd, 5, "slot on weekend: %s", slot.Date.Format(domain.DateFormat))
	}
}

func TestPlanBulkSlots_AllSlotsAvailableAndPatientless(t *testing.T) {
	req := BulkGenerationRequest{
		StartDate:           date(2025, time.March, 3),
		EndDate:             date(2025, time.March, 7),
		StartTime:           "09:00",
		EndTime:             "12:00",
		SlotDurationMinutes: 45,
		BreakMinutes:        15,
		Weekdays:            []int{1, 2, 3, 4, 5},
	}

	slots, err := PlanBulkSlots(req, 42)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	seen := make(map[string]bool)
	for _, slot := range slots {
		assert.Equal(t, domain.SlotAvailable, slot.Status)
		assert.Nil(t, slot.Patient)
		assert.Equal(t, int64(42), slot.ProviderID)
		assert.Equal(t, 45, slot.DurationMinutes)
		assert.False(t, seen[slot.PublicID.String()], "duplicate public id")
		seen[slot.PublicID.String()] = true
	}
}

func TestPlanBulkSlots_SingleDay(t *testing.T) {
	// Режим "bulk add на один день": startDate == endDate, все дни недели
	day := date(2025, time.January, 8)
	req := BulkGenerationRequest{
		StartDate:           day,
		EndDate:             day,
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 30,
		Weekdays:            []int{1, 2, 3, 4, 5, 6, 7},
	}

	slots, err := PlanBulkSlots(req, 1)
	require.NoError(t, err)
	assert.Len(t, slots, 16)

	for _, slot := range slots {
		assert.True(t, SameDay(slot.Date, day))
	}
}

func TestPlanBulkSlots_EmptyWeekdaysProducesNothing(t *testing.T) {
	req := BulkGenerationRequest{
		StartDate:           date(2025, time.January, 6),
		EndDate:             date(2025, time.January, 12),
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 30,
	}

	slots, err := PlanBulkSlots(req, 1)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestPlanBulkSlots_InvalidDateRange(t *testing.T) {
	req := BulkGenerationRequest{
		StartDate:           date(2025, time.January, 12),
		EndDate:             date(2025, time.January, 6),
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 30,
		Weekdays:            []int{1},
	}

	_, err := PlanBulkSlots(req, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestPlanBulkSlots_NotIdempotent(t *testing.T) {
	// Повторный запуск с тем же запросом даёт новый независимый батч
	req := BulkGenerationRequest{
		StartDate:           date(2025, time.January, 6),
		EndDate:             date(2025, time.January, 6),
		StartTime:           "09:00",
		EndTime:             "10:00",
		SlotDurationMinutes: 30,
		Weekdays:            []int{1},
	}

	first, err := PlanBulkSlots(req, 1)
	require.NoError(t, err)
	second, err := PlanBulkSlots(req, 1)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.NotEqual(t, first[0].PublicID, second[0].PublicID)
}
