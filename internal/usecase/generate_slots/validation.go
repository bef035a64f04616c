package generate_slots

import (
	"fmt"
	"time"

	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/internal/schedule"
	"github.com/clinicore/scheduling-service/pkg/ptr"
)

// validateRequest валидирует входные данные запроса
// Вызывается после подстановки дефолтов из настроек расписания
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if req.StartDate.After(req.EndDate) {
		return fmt.Errorf("%w: start date is after end date", ErrInvalidRange)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start time %s must be before end time %s", ErrInvalidRange, req.StartTime, req.EndTime)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if breakMinutes := ptr.Deref(req.BreakMinutes); breakMinutes < domain.MinBreakMinutes || breakMinutes > domain.MaxBreakMinutes {
		return fmt.Errorf("%w: break must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBreakMinutes, domain.MaxBreakMinutes)
	}

	// UI отключает отправку при пустом наборе дней - на границе API отклоняем явно
	if len(req.Weekdays) == 0 {
		return fmt.Errorf("%w: at least one weekday must be selected", ErrInvalidInput)
	}
	for _, wd := range req.Weekdays {
		if wd < domain.MinISOWeekday || wd > domain.MaxISOWeekday {
			return fmt.Errorf("%w: weekday %d is out of range 1..7", ErrInvalidInput, wd)
		}
	}

	return nil
}

// validateDates проверяет диапазон дат относительно текущего момента
func validateDates(req *Request, now time.Time) error {
	if schedule.DateOnly(req.StartDate).Before(schedule.DateOnly(now)) {
		return ErrDateInPast
	}

	days := int(schedule.DateOnly(req.EndDate).Sub(schedule.DateOnly(req.StartDate)).Hours()/24) + 1
	if days > domain.MaxBulkRangeDays {
		return fmt.Errorf("%w: %d days exceeds the maximum of %d", ErrRangeTooLong, days, domain.MaxBulkRangeDays)
	}

	return nil
}
