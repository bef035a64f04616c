package appointment

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

var recordColumns = []string{
	"id",
	"public_id",
	"provider_id",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"status",
	"patient_name",
	"patient_phone",
	"reason",
	"diagnosis",
	"prescription",
	"follow_up_date",
	"created_at",
}

// Repository репозиторий для работы с историей приёмов
// Записи иммутабельны: только вставка и чтение, без Update/Delete
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории приёмов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись об итоге приёма
func (r *Repository) Create(ctx context.Context, record *domain.AppointmentRecord) (*domain.AppointmentRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointment_records").
		Columns(
			"public_id",
			"provider_id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"status",
			"patient_name",
			"patient_phone",
			"reason",
			"diagnosis",
			"prescription",
			"follow_up_date",
		).
		Values(
			record.PublicID,
			record.ProviderID,
			record.Date,
			record.StartTime,
			record.DurationMinutes,
			record.Status,
			record.PatientName,
			record.PatientPhone,
			record.Reason,
			record.Diagnosis,
			record.Prescription,
			record.FollowUpDate,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// GetByPublicID получает запись по публичному идентификатору
func (r *Repository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.AppointmentRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recordColumns...).
		From("appointment_records").
		Where(squirrel.Eq{"public_id": publicID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - build select query: %v", ErrBuildQuery, err)
	}

	record, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - scan record: %v", ErrScanRow, err)
	}

	return record, nil
}

// GetByProviderWithFilter получает историю приёмов врача с фильтрацией
// по имени пациента (substring, регистронезависимо), периоду и статусу
// Новые записи первыми
func (r *Repository) GetByProviderWithFilter(ctx context.Context, filter domain.ProviderAppointmentsFilter) ([]*domain.AppointmentRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(recordColumns...).
		From("appointment_records").
		Where(squirrel.Eq{"provider_id": filter.ProviderID})

	if filter.PatientName != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"patient_name": "%" + *filter.PatientName + "%"})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("appointment_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.AppointmentRecord, error) {
	var record domain.AppointmentRecord
	var createdAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.PublicID,
		&record.ProviderID,
		&record.Date,
		&record.StartTime,
		&record.DurationMinutes,
		&record.Status,
		&record.PatientName,
		&record.PatientPhone,
		&record.Reason,
		&record.Diagnosis,
		&record.Prescription,
		&record.FollowUpDate,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Time

	return &record, nil
}

func scanRecords(rows *sql.Rows) ([]*domain.AppointmentRecord, error) {
	records := make([]*domain.AppointmentRecord, 0)

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
