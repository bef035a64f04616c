package block_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clinicore/scheduling-service/internal/api/handlers"
	slotsService "github.com/clinicore/scheduling-service/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgSlotNotFound  = "слот не найден"
	msgCannotBlock   = "заблокировать можно только свободный слот"
	msgCannotUnblock = "разблокировать можно только заблокированный слот"
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

// HandleBlock PATCH /api/v1/slots/{slotId}/block
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("PATCH /slots/{slotId}/block - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.Block(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrCannotBlock):
			handlers.RespondError(w, http.StatusConflict, msgCannotBlock)

		default:
			h.logger.Error("PATCH /slots/%s/block - Failed to block slot: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/%s/block - Slot blocked", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUnblock PATCH /api/v1/slots/{slotId}/unblock
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("PATCH /slots/{slotId}/unblock - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.Unblock(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrCannotUnblock):
			handlers.RespondError(w, http.StatusConflict, msgCannotUnblock)

		default:
			h.logger.Error("PATCH /slots/%s/unblock - Failed to unblock slot: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/%s/unblock - Slot unblocked", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
