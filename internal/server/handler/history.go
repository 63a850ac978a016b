package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/series"
)

// HistoryService is what the history handler needs from the service layer.
type HistoryService interface {
	Series(ctx context.Context, eventID string, eventType domain.EventType, sportType string) ([]series.Point, error)
}

// HistoryHandler serves chart data for one event.
type HistoryHandler struct {
	history HistoryService
	logger  *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(history HistoryService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{history: history, logger: logHandler(logger, "history")}
}

type historyResponse struct {
	Success   bool           `json:"success"`
	EventID   string         `json:"eventId"`
	EventType string         `json:"eventType"`
	SportType string         `json:"sportType"`
	Data      []series.Point `json:"data"`
}

// GetHistory returns the percent-scaled series for an event over the
// trailing window. type defaults to championship and sport to nba; unknown
// values are passed through and match nothing.
// GET /api/history/{eventId}?type=daily&sport=nba
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	eventID := pathParam(r, "eventId")
	eventType := queryOr(r, "type", string(domain.EventTypeChampionship))
	sportType := queryOr(r, "sport", string(domain.SportNBA))

	points, err := h.history.Series(r.Context(), eventID, domain.EventType(eventType), sportType)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "history not found")
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{
		Success:   true,
		EventID:   eventID,
		EventType: eventType,
		SportType: sportType,
		Data:      points,
	})
}
