package domain

import "time"

// ProviderScheduleConfig holds per-provider defaults for slot generation
// Used to prefill bulk generation requests when the caller omits parameters
type ProviderScheduleConfig struct {
	ID                  int64
	ProviderID          int64
	SlotDurationMinutes int
	BreakMinutes        int
	DayStartTime        string // HH:MM
	DayEndTime          string // HH:MM
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultScheduleConfig returns the config used when a provider has none stored
func DefaultScheduleConfig(providerID int64) *ProviderScheduleConfig {
	return &ProviderScheduleConfig{
		ProviderID:          providerID,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		BreakMinutes:        DefaultBreakMinutes,
		DayStartTime:        DefaultDayStartTime,
		DayEndTime:          DefaultDayEndTime,
	}
}
