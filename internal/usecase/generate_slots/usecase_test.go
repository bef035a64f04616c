package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-service/internal/domain"
	configRepo "github.com/clinicore/scheduling-service/internal/infra/storage/scheduleconfig"
	"github.com/clinicore/scheduling-service/internal/integrations/providerdirectory"
	"github.com/clinicore/scheduling-service/pkg/ptr"
	"github.com/clinicore/scheduling-service/pkg/types"
)

type fakeSlotRepo struct {
	created []*domain.Slot
	err     error
}

func (f *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.Slot) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, slots...)
	return len(slots), nil
}

type fakeConfigRepo struct {
	config *domain.ProviderScheduleConfig
	err    error
}

func (f *fakeConfigRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderScheduleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

type fakeDirectory struct {
	provider *providerdirectory.Provider
	err      error
}

func (f *fakeDirectory) GetProviderWithGracefulDegradation(_ context.Context, _ int64) (*providerdirectory.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.provider, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(slotRepo *fakeSlotRepo, cfgRepo *fakeConfigRepo, dir *fakeDirectory) *UseCase {
	uc := NewUseCase(slotRepo, cfgRepo, dir, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: date(2025, time.June, 1)}
	return uc
}

func activeProvider() *providerdirectory.Provider {
	return &providerdirectory.Provider{ID: 7, ClinicID: 1, Name: "Dr. Rao", Specialty: "Cardiology", IsActive: true}
}

func TestExecute_CreatesSlotsForSelectedWeekdays(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	cfgRepo := &fakeConfigRepo{err: configRepo.ErrConfigNotFound}
	uc := newTestUseCase(slotRepo, cfgRepo, &fakeDirectory{provider: activeProvider()})

	// 2-8 июня 2025 - полная неделя с понедельника
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:          7,
		StartDate:           date(2025, time.June, 2),
		EndDate:             date(2025, time.June, 8),
		StartTime:           types.TimeString("09:00"),
		EndTime:             types.TimeString("11:00"),
		SlotDurationMinutes: 30,
		Weekdays:            []int{1, 3, 5},
	})
	require.NoError(t, err)

	// 3 дня по 4 слота
	assert.Equal(t, 12, resp.SlotsCreated)
	assert.Equal(t, 3, resp.DaysCovered)
	require.Len(t, slotRepo.created, 12)

	for _, slot := range slotRepo.created {
		assert.Equal(t, int64(7), slot.ProviderID)
		assert.Equal(t, domain.SlotAvailable, slot.Status)
		assert.Nil(t, slot.Patient)
	}
}

func TestExecute_FillsDefaultsFromProviderConfig(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	cfgRepo := &fakeConfigRepo{config: &domain.ProviderScheduleConfig{
		ProviderID:          7,
		SlotDurationMinutes: 60,
		BreakMinutes:        0,
		DayStartTime:        "10:00",
		DayEndTime:          "12:00",
	}}
	uc := newTestUseCase(slotRepo, cfgRepo, &fakeDirectory{provider: activeProvider()})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		StartDate:  date(2025, time.June, 2),
		EndDate:    date(2025, time.June, 2),
		Weekdays:   []int{1},
	})
	require.NoError(t, err)

	require.Equal(t, 2, resp.SlotsCreated)
	assert.Equal(t, types.TimeString("10:00"), slotRepo.created[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), slotRepo.created[1].StartTime)
	assert.Equal(t, 60, slotRepo.created[0].DurationMinutes)
}

func TestExecute_ExplicitZeroBreakKeptOverConfig(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	cfgRepo := &fakeConfigRepo{config: &domain.ProviderScheduleConfig{
		ProviderID:          7,
		SlotDurationMinutes: 30,
		BreakMinutes:        30,
		DayStartTime:        "09:00",
		DayEndTime:          "11:00",
	}}
	uc := newTestUseCase(slotRepo, cfgRepo, &fakeDirectory{provider: activeProvider()})

	// Явный ноль не затирается перерывом из настроек
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:   7,
		StartDate:    date(2025, time.June, 2),
		EndDate:      date(2025, time.June, 2),
		BreakMinutes: ptr.Ptr(0),
		Weekdays:     []int{1},
	})
	require.NoError(t, err)

	// Без перерыва 09:00-11:00 вмещает 4 слота, с перерывом из настроек было бы 2
	assert.Equal(t, 4, resp.SlotsCreated)
}

func TestExecute_DirectoryDegraded(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	cfgRepo := &fakeConfigRepo{err: configRepo.ErrConfigNotFound}
	degraded := fmt.Errorf("%w: provider_id=7, error=connection refused", providerdirectory.ErrServiceDegraded)
	uc := newTestUseCase(slotRepo, cfgRepo, &fakeDirectory{err: degraded})

	// Недоступный справочник не блокирует генерацию
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		StartDate:  date(2025, time.June, 2),
		EndDate:    date(2025, time.June, 2),
		Weekdays:   []int{1},
	})
	require.NoError(t, err)
	assert.Equal(t, 16, resp.SlotsCreated)
}

func TestExecute_GlobalDefaultsWhenNoConfig(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	cfgRepo := &fakeConfigRepo{err: configRepo.ErrConfigNotFound}
	uc := newTestUseCase(slotRepo, cfgRepo, &fakeDirectory{provider: activeProvider()})

	// 09:00-17:00 по 30 минут = 16 слотов
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		StartDate:  date(2025, time.June, 2),
		EndDate:    date(2025, time.June, 2),
		Weekdays:   []int{1},
	})
	require.NoError(t, err)
	assert.Equal(t, 16, resp.SlotsCreated)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{}, &fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		&fakeDirectory{err: providerdirectory.ErrProviderNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 99,
		StartDate:  date(2025, time.June, 2),
		EndDate:    date(2025, time.June, 2),
		Weekdays:   []int{1},
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_StartDateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{}, &fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		&fakeDirectory{provider: activeProvider()})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		StartDate:  date(2025, time.May, 30),
		EndDate:    date(2025, time.June, 2),
		Weekdays:   []int{1},
	})
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_RangeTooLong(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{}, &fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		&fakeDirectory{provider: activeProvider()})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		StartDate:  date(2025, time.June, 2),
		EndDate:    date(2025, time.December, 31),
		Weekdays:   []int{1},
	})
	assert.ErrorIs(t, err, ErrRangeTooLong)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"no weekdays", func(r *Request) { r.Weekdays = nil }, ErrInvalidInput},
		{"weekday out of range", func(r *Request) { r.Weekdays = []int{0} }, ErrInvalidInput},
		{"start after end date", func(r *Request) { r.StartDate = date(2025, time.June, 9) }, ErrInvalidRange},
		{"start time after end time", func(r *Request) { r.StartTime = "18:00" }, ErrInvalidRange},
		{"duration too short", func(r *Request) { r.SlotDurationMinutes = 3 }, ErrInvalidInput},
		{"negative break", func(r *Request) { r.BreakMinutes = ptr.Ptr(-5) }, ErrInvalidInput},
		{"break too long", func(r *Request) { r.BreakMinutes = ptr.Ptr(domain.MaxBreakMinutes + 1) }, ErrInvalidInput},
		{"zero provider", func(r *Request) { r.ProviderID = 0 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeSlotRepo{}, &fakeConfigRepo{err: configRepo.ErrConfigNotFound},
				&fakeDirectory{provider: activeProvider()})

			req := &Request{
				ProviderID:          7,
				StartDate:           date(2025, time.June, 2),
				EndDate:             date(2025, time.June, 8),
				StartTime:           "09:00",
				EndTime:             "17:00",
				SlotDurationMinutes: 30,
				Weekdays:            []int{1, 2, 3},
			}
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RepositoryFailure(t *testing.T) {
	slotRepo := &fakeSlotRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(slotRepo, &fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		&fakeDirectory{provider: activeProvider()})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		StartDate:  date(2025, time.June, 2),
		EndDate:    date(2025, time.June, 2),
		Weekdays:   []int{1},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
