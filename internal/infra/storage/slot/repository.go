package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/pkg/dbmetrics"
	"github.com/clinicore/scheduling-service/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"public_id",
	"provider_id",
	"slot_date",
	"start_time",
	"duration_minutes",
	"status",
	"patient_name",
	"patient_phone",
	"patient_reason",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает один слот
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	name, phone, reason := patientColumns(slot)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"public_id",
			"provider_id",
			"slot_date",
			"start_time",
			"duration_minutes",
			"status",
			"patient_name",
			"patient_phone",
			"patient_reason",
			"notes",
		).
		Values(
			slot.PublicID,
			slot.ProviderID,
			slot.Date,
			slot.StartTime,
			slot.DurationMinutes,
			slot.Status,
			name,
			phone,
			reason,
			slot.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// CreateBatch создает батч слотов одним INSERT
// Используется массовой генерацией; возвращает количество созданных слотов
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.Slot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("slots").
		Columns(
			"public_id",
			"provider_id",
			"slot_date",
			"start_time",
			"duration_minutes",
			"status",
			"patient_name",
			"patient_phone",
			"patient_reason",
			"notes",
		)

	for _, slot := range slots {
		name, phone, reason := patientColumns(slot)
		builder = builder.Values(
			slot.PublicID,
			slot.ProviderID,
			slot.Date,
			slot.StartTime,
			slot.DurationMinutes,
			slot.Status,
			name,
			phone,
			reason,
			slot.Notes,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return int(rowsAffected), nil
}

// GetByPublicID получает слот по публичному идентификатору
// Внутри транзакции строка дополнительно блокируется (FOR UPDATE) -
// это используется usecase-ами бронирования и переноса
func (r *Repository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"public_id": publicID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetByProviderWithFilter получает слоты врача с гибкой фильтрацией
// Поддерживает фильтрацию по периоду (StartDate, EndDate) и статусу
// Для конкретной даты слоты отсортированы по времени начала,
// для периода - по дате и времени
func (r *Repository) GetByProviderWithFilter(ctx context.Context, filter domain.ProviderSlotsFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"provider_id": filter.ProviderID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("slot_date ASC, start_time ASC")

	// Внутри транзакции запрос на конкретную дату блокирует строки -
	// защита от гонки при параллельном редактировании календаря
	if dbmetrics.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Update сохраняет изменяемые поля слота (статус, пациент, notes, дата и время)
func (r *Repository) Update(ctx context.Context, slot *domain.Slot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	name, phone, reason := patientColumns(slot)

	query, args, err := psqlbuilder.Update("slots").
		Set("slot_date", slot.Date).
		Set("start_time", slot.StartTime).
		Set("duration_minutes", slot.DurationMinutes).
		Set("status", slot.Status).
		Set("patient_name", name).
		Set("patient_phone", phone).
		Set("patient_reason", reason).
		Set("notes", slot.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slot.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete физически удаляет слот
// Проверка, что слот не занят активной записью, выполняется на уровне сервиса
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// patientColumns раскладывает PatientInfo по nullable-колонкам
func patientColumns(slot *domain.Slot) (name, phone, reason *string) {
	if slot.Patient == nil {
		return nil, nil, nil
	}
	return &slot.Patient.Name, &slot.Patient.Phone, &slot.Patient.Reason
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	var name, phone, reason sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.PublicID,
		&slot.ProviderID,
		&slot.Date,
		&slot.StartTime,
		&slot.DurationMinutes,
		&slot.Status,
		&name,
		&phone,
		&reason,
		&slot.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Инвариант patient <=> booked восстанавливается из nullable-колонок
	if name.Valid {
		slot.Patient = &domain.PatientInfo{
			Name:   name.String,
			Phone:  phone.String,
			Reason: reason.String,
		}
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
