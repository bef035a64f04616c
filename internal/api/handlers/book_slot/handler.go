package book_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clinicore/scheduling-service/internal/api/handlers"
	slotsModels "github.com/clinicore/scheduling-service/internal/service/slots/models"
	bookSlot "github.com/clinicore/scheduling-service/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "слот недоступен для записи"
	msgInvalidInput       = "некорректные данные пациента"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	PatientName  string `json:"patientName"`
	PatientPhone string `json:"patientPhone"`
	Reason       string `json:"reason,omitempty"`
}

// Handle POST /api/v1/slots/{slotId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("POST /slots/{slotId}/book - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/%s/book - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookSlot.Request{
		SlotID:       slotID,
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		Reason:       req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotNotAvailable):
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots/%s/book - Failed to book slot: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/%s/book - Slot booked", slotID)
	handlers.RespondJSON(w, http.StatusOK, slotsModels.FromDomainSlot(result.Slot))
}
