package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/clinicore/scheduling-service/internal/api/handlers"
	getCalendar "github.com/clinicore/scheduling-service/internal/usecase/get_calendar"
)

const (
	msgInvalidProviderID = "некорректный идентификатор врача"
	msgInvalidYearMonth  = "некорректные год или месяц"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/calendar?year=2025&month=6
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.ParseInt(mux.Vars(r)["providerId"], 10, 64)
	if err != nil || providerID <= 0 {
		h.logger.Warn("GET /providers/{providerId}/calendar - Invalid provider id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		ProviderID: providerID,
		Year:       year,
		Month:      time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidMonth):
			handlers.RespondBadRequest(w, msgInvalidYearMonth)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProviderID)

		default:
			h.logger.Error("GET /providers/%d/calendar - Failed to build calendar: %v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/%d/calendar - Calendar built for %d-%02d", providerID, year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
