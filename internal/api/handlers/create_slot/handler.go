package create_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/clinicore/scheduling-service/internal/api/handlers"
	slotsService "github.com/clinicore/scheduling-service/internal/service/slots"
	"github.com/clinicore/scheduling-service/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProviderID  = "некорректный идентификатор врача"
	msgInvalidInput       = "некорректные параметры слота"
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

// CreateSlotRequest HTTP request model
// providerId берется из пути
type CreateSlotRequest struct {
	Date            string `json:"date"`      // "2025-06-02"
	StartTime       string `json:"startTime"` // "09:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// Handle POST /api/v1/providers/{providerId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.ParseInt(mux.Vars(r)["providerId"], 10, 64)
	if err != nil || providerID <= 0 {
		h.logger.Warn("POST /providers/{providerId}/slots - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/%d/slots - Invalid request body: %v", providerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateSlotRequest{
		ProviderID:      providerID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /providers/%d/slots - Failed to create slot: %v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/%d/slots - Slot created: slot_id=%s", providerID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
