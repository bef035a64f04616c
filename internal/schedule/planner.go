package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// BulkGenerationRequest параметры массовой генерации слотов
// Одноразовый value object: не сохраняется, потребляется планировщиком
type BulkGenerationRequest struct {
	StartDate           time.Time
	EndDate             time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	BreakMinutes        int

	// Weekdays ISO-номера дней недели (понедельник=1 .. воскресенье=7)
	// Пустой набор даёт ноль слотов - отклоняется валидацией на границе usecase
	Weekdays []int
}

// PlanBulkSlots строит декартово произведение подходящих дат диапазона
// и сгенерированных времён начала, эмитя новый available-слот на каждую пару
// Дедупликации против уже существующих слотов нет: операция аддитивна,
// идемпотентность - ответственность вызывающей стороны
func PlanBulkSlots(req BulkGenerationRequest, providerID int64) ([]*domain.Slot, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidRange)
	}

	start := DateOnly(req.StartDate)
	end := DateOnly(req.EndDate)
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s",
			ErrInvalidRange, start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	}

	timeSlots, err := GenerateTimeSlots(req.StartTime, req.EndTime, req.SlotDurationMinutes, req.BreakMinutes)
	if err != nil {
		return nil, err
	}

	selected := make(map[int]bool, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		selected[wd] = true
	}

	slots := make([]*domain.Slot, 0)

	// Обе границы диапазона включительны
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !selected[ISOWeekday(d)] {
			continue
		}

		for _, startTime := range timeSlots {
			slots = append(slots, &domain.Slot{
				PublicID:        uuid.New(),
				ProviderID:      providerID,
				Date:            d,
				StartTime:       startTime,
				DurationMinutes: req.SlotDurationMinutes,
				Status:          domain.SlotAvailable,
				Patient:         nil,
			})
		}
	}

	return slots, nil
}
