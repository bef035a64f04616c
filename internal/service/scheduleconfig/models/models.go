package models

import (
	"time"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление настроек расписания врача
type UpdateConfigRequest struct {
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	BreakMinutes        int    `json:"breakMinutes"`
	DayStartTime        string `json:"dayStartTime"` // "09:00"
	DayEndTime          string `json:"dayEndTime"`   // "17:00"
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpdateConfigRequest) ToDomainConfig(providerID int64) *domain.ProviderScheduleConfig {
	return &domain.ProviderScheduleConfig{
		ProviderID:          providerID,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BreakMinutes:        r.BreakMinutes,
		DayStartTime:        r.DayStartTime,
		DayEndTime:          r.DayEndTime,
	}
}

// Response модели

// ConfigResponse ответ с настройками расписания врача
type ConfigResponse struct {
	ProviderID          int64      `json:"providerId"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	BreakMinutes        int        `json:"breakMinutes"`
	DayStartTime        string     `json:"dayStartTime"`
	DayEndTime          string     `json:"dayEndTime"`
	IsDefault           bool       `json:"isDefault"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
// isDefault=true означает, что врач еще не сохранял свои настройки
func FromDomainConfig(c *domain.ProviderScheduleConfig, isDefault bool) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ProviderID:          c.ProviderID,
		SlotDurationMinutes: c.SlotDurationMinutes,
		BreakMinutes:        c.BreakMinutes,
		DayStartTime:        c.DayStartTime,
		DayEndTime:          c.DayEndTime,
		IsDefault:           isDefault,
	}

	if !isDefault && !c.UpdatedAt.IsZero() {
		resp.UpdatedAt = &c.UpdatedAt
	}

	return resp
}
