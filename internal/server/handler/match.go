package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hashedalex/polydelta/internal/domain"
)

// EventService is what the match handler needs from the service layer.
type EventService interface {
	Resolve(ctx context.Context, ref domain.EventRef) (domain.EventDescriptor, error)
}

// MatchHandler serves the event detail route for both daily matches and
// championship entries.
type MatchHandler struct {
	events EventService
	logger *slog.Logger
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(events EventService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{events: events, logger: logHandler(logger, "match")}
}

// GetMatch resolves the id once into an EventRef and returns its
// descriptor. Unknown championship teams resolve to a placeholder; unknown
// literal match ids are 404.
// GET /api/match/{matchId}
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ref := domain.ParseEventRef(pathParam(r, "matchId"))

	desc, err := h.events.Resolve(r.Context(), ref)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "match not found")
		return
	}
	writeData(w, desc)
}
