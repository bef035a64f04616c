package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicore/scheduling-service/internal/domain"
	configRepo "github.com/clinicore/scheduling-service/internal/infra/storage/scheduleconfig"
	directoryClient "github.com/clinicore/scheduling-service/internal/integrations/providerdirectory"
	"github.com/clinicore/scheduling-service/internal/schedule"
	"github.com/clinicore/scheduling-service/pkg/ptr"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// UseCase use case массовой генерации слотов врача
type UseCase struct {
	slotRepo     SlotRepository
	configRepo   ConfigRepository
	directory    DirectoryClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	configRepo ConfigRepository,
	directory DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		configRepo:   configRepo,
		directory:    directory,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case массовой генерации слотов
// Дедупликации против существующих слотов нет - операция аддитивна,
// повторный запуск с теми же параметрами создаст дубликаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: provider=%d, range=%s..%s, time=%s-%s, duration=%d, break=%d, weekdays=%v",
		req.ProviderID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.StartTime, req.EndTime, req.SlotDurationMinutes, ptr.Deref(req.BreakMinutes), req.Weekdays)

	// 1. Проверяем существование врача. При недоступности справочника
	// продолжаем без проверки - врач заведен в своей клинике, а слоты нужны сейчас
	if _, err := uc.directory.GetProviderWithGracefulDegradation(ctx, req.ProviderID); err != nil {
		switch {
		case errors.Is(err, directoryClient.ErrProviderNotFound):
			uc.logger.Warn("GenerateSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		case errors.Is(err, directoryClient.ErrServiceDegraded):
			uc.logger.Warn("GenerateSlots: directory degraded, skipping provider check for id=%d: %v", req.ProviderID, err)
		default:
			uc.logger.Error("GenerateSlots: failed to get provider id=%d: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
		}
	}

	// 2. Подставляем дефолты из настроек расписания врача
	if err := uc.applyConfigDefaults(ctx, req); err != nil {
		return nil, err
	}

	// 3. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 4. Валидация дат относительно текущего момента
	now := uc.timeProvider.Now()
	if err := validateDates(req, now); err != nil {
		uc.logger.Warn("GenerateSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Планируем слоты (чистая функция, без I/O)
	planned, err := schedule.PlanBulkSlots(schedule.BulkGenerationRequest{
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SlotDurationMinutes: req.SlotDurationMinutes,
		BreakMinutes:        ptr.Deref(req.BreakMinutes),
		Weekdays:            req.Weekdays,
	}, req.ProviderID)
	if err != nil {
		uc.logger.Warn("GenerateSlots: planning failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	if len(planned) == 0 {
		uc.logger.Info("GenerateSlots: nothing to create for provider=%d", req.ProviderID)
		return &Response{
			ProviderID: req.ProviderID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
		}, nil
	}

	// 6. Сохраняем батч в транзакции
	var created int
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := uc.slotRepo.CreateBatch(txCtx, planned)
		if err != nil {
			return fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
		}
		created = n
		return nil
	})
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to persist batch for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	days := countDistinctDates(planned)
	uc.logger.Info("GenerateSlots: created %d slots across %d days for provider=%d", created, days, req.ProviderID)

	return &Response{
		ProviderID:   req.ProviderID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		SlotsCreated: created,
		DaysCovered:  days,
	}, nil
}

// applyConfigDefaults заполняет незаданные параметры запроса
// настройками расписания врача или общими дефолтами
// BreakMinutes опционален через указатель: явный ноль - это ноль, не "не задано"
func (uc *UseCase) applyConfigDefaults(ctx context.Context, req *Request) error {
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && req.SlotDurationMinutes > 0 && req.BreakMinutes != nil {
		return nil
	}

	cfg, err := uc.configRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("GenerateSlots: failed to get schedule config: %v", err)
			return fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultScheduleConfig(req.ProviderID)
		uc.logger.Info("GenerateSlots: using default schedule config for provider=%d", req.ProviderID)
	}

	if req.StartTime.IsZero() {
		req.StartTime = types.TimeString(cfg.DayStartTime)
	}
	if req.EndTime.IsZero() {
		req.EndTime = types.TimeString(cfg.DayEndTime)
	}
	if req.SlotDurationMinutes == 0 {
		req.SlotDurationMinutes = cfg.SlotDurationMinutes
	}
	if req.BreakMinutes == nil {
		req.BreakMinutes = ptr.Ptr(cfg.BreakMinutes)
	}

	return nil
}

func countDistinctDates(slots []*domain.Slot) int {
	seen := make(map[string]bool)
	for _, slot := range slots {
		seen[slot.Date.Format(domain.DateFormat)] = true
	}
	return len(seen)
}
