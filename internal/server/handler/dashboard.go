package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/i18n"
	"github.com/hashedalex/polydelta/internal/server/middleware"
	"github.com/hashedalex/polydelta/internal/web"
)

// localeCookieMaxAge keeps an explicit language choice for a year.
const localeCookieMaxAge = 365 * 24 * 60 * 60

// DashboardService is what the dashboard handlers need from the service layer.
type DashboardService interface {
	Build(ctx context.Context) (domain.Dashboard, error)
}

// DashboardHandler serves the landing page as HTML and as JSON.
type DashboardHandler struct {
	dashboard DashboardService
	logger    *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboard DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logHandler(logger, "dashboard")}
}

// GetDashboard returns the landing page data.
// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard.Build(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err, "dashboard not found")
		return
	}
	writeData(w, d)
}

// Page renders the localized landing page. A valid ?lang= choice is
// remembered in the locale cookie.
// GET /{$}
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	locale := negotiateLocale(r)
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if l, ok := i18n.Parse(lang); ok {
			http.SetCookie(w, &http.Cookie{
				Name:     i18n.CookieName,
				Value:    string(l),
				Path:     "/",
				MaxAge:   localeCookieMaxAge,
				SameSite: http.SameSiteLaxMode,
			})
		}
	}

	d, err := h.dashboard.Build(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "handler: build dashboard failed",
			slog.String("error", err.Error()),
		)
		http.Error(w, i18n.Lookup(locale, "error.internal"), http.StatusInternalServerError)
		return
	}

	page := web.NewPage(d, locale)
	page.Authenticated = middleware.Authenticated(r.Context())

	// Render into a buffer so a template error still yields a clean 500.
	var buf bytes.Buffer
	if err := web.Render(&buf, page); err != nil {
		h.logger.ErrorContext(r.Context(), "handler: render page failed",
			slog.String("error", err.Error()),
		)
		http.Error(w, i18n.Lookup(locale, "error.internal"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", string(locale))
	w.Header().Set("Last-Modified", d.GeneratedAt.UTC().Format(http.TimeFormat))
	w.Header().Add("Vary", "Accept-Language, Cookie")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// negotiateLocale reads ?lang=, the locale cookie and Accept-Language.
func negotiateLocale(r *http.Request) i18n.Locale {
	var cookie string
	if c, err := r.Cookie(i18n.CookieName); err == nil {
		cookie = c.Value
	}
	return i18n.Negotiate(r.URL.Query().Get("lang"), cookie, r.Header.Get("Accept-Language"))
}
