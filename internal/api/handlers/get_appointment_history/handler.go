package get_appointment_history

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/clinicore/scheduling-service/internal/api/handlers"
	"github.com/clinicore/scheduling-service/internal/domain"
	appointmentsService "github.com/clinicore/scheduling-service/internal/service/appointments"
	"github.com/clinicore/scheduling-service/internal/service/appointments/models"
)

const (
	msgInvalidProviderID = "некорректный идентификатор врача"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter     = "некорректные параметры фильтрации"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/appointments
// Query параметры: patientName, startDate, endDate, status (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.ParseInt(mux.Vars(r)["providerId"], 10, 64)
	if err != nil || providerID <= 0 {
		h.logger.Warn("GET /providers/{providerId}/appointments - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	req := &models.GetHistoryRequest{ProviderID: providerID}

	query := r.URL.Query()
	if name := query.Get("patientName"); name != "" {
		req.PatientName = &name
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}
	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.GetProviderHistory(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /providers/%d/appointments - Failed to get history: %v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/%d/appointments - Fetched %d records", providerID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
