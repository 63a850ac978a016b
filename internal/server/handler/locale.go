package handler

import (
	"log/slog"
	"net/http"

	"github.com/hashedalex/polydelta/internal/i18n"
)

// LocaleHandler serves translation dictionaries to client-side code.
type LocaleHandler struct {
	logger *slog.Logger
}

// NewLocaleHandler creates a LocaleHandler.
func NewLocaleHandler(logger *slog.Logger) *LocaleHandler {
	return &LocaleHandler{logger: logHandler(logger, "locale")}
}

type localeResponse struct {
	Success   bool              `json:"success"`
	Locale    i18n.Locale       `json:"locale"`
	Supported []i18n.Locale     `json:"supported"`
	Messages  map[string]string `json:"messages"`
}

// GetDictionary returns the dictionary for a locale. Unsupported locales get
// English.
// GET /api/i18n/{locale}
func (h *LocaleHandler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	locale, ok := i18n.Parse(pathParam(r, "locale"))
	if !ok {
		locale = i18n.DefaultLocale
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, localeResponse{
		Success:   true,
		Locale:    locale,
		Supported: i18n.Supported(),
		Messages:  i18n.Dictionary(locale),
	})
}
