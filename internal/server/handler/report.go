package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
)

// ReportService is what the report handler needs from the service layer.
type ReportService interface {
	Get(ctx context.Context, sport string) (domain.TournamentReport, error)
}

// ReportHandler serves generated tournament reports.
type ReportHandler struct {
	reports ReportService
	logger  *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reports ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logHandler(logger, "report")}
}

// ReportPayload is the wire shape of a tournament report.
type ReportPayload struct {
	SportType   domain.SportType      `json:"sportType"`
	Report      domain.ReportDocument `json:"report"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

// NewReportPayload converts a stored report to its wire shape.
func NewReportPayload(r domain.TournamentReport) ReportPayload {
	return ReportPayload{
		SportType:   r.SportType,
		Report:      r.Report,
		GeneratedAt: r.GeneratedAt,
	}
}

// GetReport returns the report for a sport; league aliases such as "nba"
// are accepted.
// GET /api/tournament-report/{sportType}
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Get(r.Context(), pathParam(r, "sportType"))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "report not found")
		return
	}
	writeData(w, NewReportPayload(report))
}
