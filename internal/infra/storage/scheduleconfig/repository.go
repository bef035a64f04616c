package scheduleconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/pkg/dbmetrics"
	"github.com/clinicore/scheduling-service/pkg/psqlbuilder"
)

var configColumns = []string{
	"id",
	"provider_id",
	"slot_duration_minutes",
	"break_minutes",
	"day_start_time",
	"day_end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с настройками расписания врачей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID получает настройки расписания врача
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("provider_schedule_configs").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ProviderScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.ProviderID,
		&config.SlotDurationMinutes,
		&config.BreakMinutes,
		&config.DayStartTime,
		&config.DayEndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или обновляет настройки расписания врача
// Конфигурация одна на врача - конфликт по provider_id разрешается обновлением
func (r *Repository) Upsert(ctx context.Context, config *domain.ProviderScheduleConfig) (*domain.ProviderScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_schedule_configs").
		Columns(
			"provider_id",
			"slot_duration_minutes",
			"break_minutes",
			"day_start_time",
			"day_end_time",
		).
		Values(
			config.ProviderID,
			config.SlotDurationMinutes,
			config.BreakMinutes,
			config.DayStartTime,
			config.DayEndTime,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			break_minutes = EXCLUDED.break_minutes,
			day_start_time = EXCLUDED.day_start_time,
			day_end_time = EXCLUDED.day_end_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
