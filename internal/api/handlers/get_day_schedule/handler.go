package get_day_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/clinicore/scheduling-service/internal/api/handlers"
	"github.com/clinicore/scheduling-service/internal/domain"
	slotsService "github.com/clinicore/scheduling-service/internal/service/slots"
	"github.com/clinicore/scheduling-service/internal/service/slots/models"
)

const (
	msgInvalidProviderID = "некорректный идентификатор врача"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate       = "не указана дата расписания"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/schedule?date=2025-06-02
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.ParseInt(mux.Vars(r)["providerId"], 10, 64)
	if err != nil || providerID <= 0 {
		h.logger.Warn("GET /providers/{providerId}/schedule - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, rawDate, time.UTC)
	if err != nil {
		h.logger.Warn("GET /providers/%d/schedule - Invalid date=%s: %v", providerID, rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDaySchedule(r.Context(), &models.GetDayScheduleRequest{
		ProviderID: providerID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProviderID)

		default:
			h.logger.Error("GET /providers/%d/schedule - Failed to get schedule: %v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/%d/schedule - Fetched %d slots for %s",
		providerID, len(result.Slots), rawDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
