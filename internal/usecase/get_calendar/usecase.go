package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/internal/schedule"
	"github.com/clinicore/scheduling-service/pkg/ptr"
)

// UseCase use case построения месячного календаря врача
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case построения календаря
// Слоты месяца читаются одним запросом, счетчики считаются по ячейкам сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: provider=%d, year=%d, month=%d", req.ProviderID, req.Year, req.Month)

	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	matrix, err := schedule.MonthMatrix(req.Year, req.Month)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidMonth) {
			uc.logger.Warn("GetCalendar: invalid month: year=%d, month=%d", req.Year, req.Month)
			return nil, fmt.Errorf("%w: %v", ErrInvalidMonth, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	monthStart := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	slots, err := uc.slotRepo.GetByProviderWithFilter(ctx, domain.ProviderSlotsFilter{
		ProviderID: req.ProviderID,
		StartDate:  ptr.Ptr(monthStart),
		EndDate:    ptr.Ptr(monthEnd),
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get slots for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	weeks := make([][]Day, 0, len(matrix))
	for _, week := range matrix {
		days := make([]Day, 0, schedule.DaysInWeek)
		for _, cell := range week {
			if cell == nil {
				days = append(days, Day{Padding: true})
				continue
			}
			days = append(days, Day{
				Date:   *cell,
				Counts: schedule.CountsForDay(*cell, slots),
			})
		}
		weeks = append(weeks, days)
	}

	return &Response{
		ProviderID: req.ProviderID,
		Year:       req.Year,
		Month:      req.Month,
		Weeks:      weeks,
	}, nil
}
