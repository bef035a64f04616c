package scheduleconfig

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-service/internal/domain"
	configRepo "github.com/clinicore/scheduling-service/internal/infra/storage/scheduleconfig"
	"github.com/clinicore/scheduling-service/internal/service/scheduleconfig/models"
)

type fakeConfigRepo struct {
	configs map[int64]*domain.ProviderScheduleConfig
}

func newFakeConfigRepo(configs ...*domain.ProviderScheduleConfig) *fakeConfigRepo {
	repo := &fakeConfigRepo{configs: make(map[int64]*domain.ProviderScheduleConfig)}
	for _, c := range configs {
		repo.configs[c.ProviderID] = c
	}
	return repo
}

func (f *fakeConfigRepo) GetByProviderID(_ context.Context, providerID int64) (*domain.ProviderScheduleConfig, error) {
	c, ok := f.configs[providerID]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return c, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, config *domain.ProviderScheduleConfig) (*domain.ProviderScheduleConfig, error) {
	config.UpdatedAt = time.Now()
	f.configs[config.ProviderID] = config
	return config, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestGet_ReturnsDefaultsWhenNotStored(t *testing.T) {
	svc := NewService(newFakeConfigRepo(), noopLogger{})

	resp, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultDayStartTime, resp.DayStartTime)
	assert.Equal(t, domain.DefaultDayEndTime, resp.DayEndTime)
	assert.Nil(t, resp.UpdatedAt)
}

func TestGet_ReturnsStoredConfig(t *testing.T) {
	svc := NewService(newFakeConfigRepo(&domain.ProviderScheduleConfig{
		ProviderID:          7,
		SlotDurationMinutes: 45,
		BreakMinutes:        15,
		DayStartTime:        "08:00",
		DayEndTime:          "16:00",
		UpdatedAt:           time.Now(),
	}), noopLogger{})

	resp, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.False(t, resp.IsDefault)
	assert.Equal(t, 45, resp.SlotDurationMinutes)
	assert.Equal(t, "08:00", resp.DayStartTime)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestUpdate(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Update(context.Background(), 7, &models.UpdateConfigRequest{
		SlotDurationMinutes: 20,
		BreakMinutes:        5,
		DayStartTime:        "10:00",
		DayEndTime:          "18:00",
	})
	require.NoError(t, err)

	assert.False(t, resp.IsDefault)
	assert.Equal(t, 20, resp.SlotDurationMinutes)
	require.Contains(t, repo.configs, int64(7))
	assert.Equal(t, "10:00", repo.configs[7].DayStartTime)
}

func TestUpdate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateConfigRequest
	}{
		{"duration too short", models.UpdateConfigRequest{SlotDurationMinutes: 2, DayStartTime: "09:00", DayEndTime: "17:00"}},
		{"break too long", models.UpdateConfigRequest{SlotDurationMinutes: 30, BreakMinutes: 300, DayStartTime: "09:00", DayEndTime: "17:00"}},
		{"bad start time", models.UpdateConfigRequest{SlotDurationMinutes: 30, DayStartTime: "9am", DayEndTime: "17:00"}},
		{"start after end", models.UpdateConfigRequest{SlotDurationMinutes: 30, DayStartTime: "18:00", DayEndTime: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeConfigRepo(), noopLogger{})
			_, err := svc.Update(context.Background(), 7, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
