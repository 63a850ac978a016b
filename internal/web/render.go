// Package web renders the server-side landing page. The same output is
// served at / and uploaded as index.html by the snapshot export.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/i18n"
	"github.com/hashedalex/polydelta/internal/oddsmath"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").Funcs(funcs).ParseFS(templateFS, "templates/index.html"),
)

var funcs = template.FuncMap{
	"pct":     formatPercent,
	"ev":      formatEV,
	"evClass": evClass,
	"when":    formatTime,
	"whenPtr": formatTimePtr,
}

// Page is the data the landing page template receives.
type Page struct {
	Dashboard     domain.Dashboard
	Locale        i18n.Locale
	Locales       []i18n.Locale
	Authenticated bool
	// Static drops links that only work against a live server.
	Static bool
	i18n.Translator
}

// NewPage binds the dashboard to a locale.
func NewPage(d domain.Dashboard, locale i18n.Locale) Page {
	return Page{
		Dashboard:  d,
		Locale:     locale,
		Locales:    i18n.Supported(),
		Translator: i18n.Translator{Locale: locale},
	}
}

// Render writes the landing page.
func Render(w io.Writer, p Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("web: render landing page: %w", err)
	}
	return nil
}

// formatPercent shows a probability as a percentage, or a dash when missing.
func formatPercent(p *float64) string {
	v := oddsmath.ToPercent(p)
	if v == nil {
		return "–"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// formatEV shows a signed EV rounded to one decimal.
func formatEV(v *float64) string {
	r := oddsmath.Round(v, 1)
	if r == nil {
		return "–"
	}
	return fmt.Sprintf("%+.1f%%", *r)
}

func evClass(v *float64) string {
	switch {
	case v == nil:
		return "ev-none"
	case *v > 0:
		return "ev-pos"
	case *v < 0:
		return "ev-neg"
	default:
		return "ev-flat"
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "–"
	}
	return formatTime(*t)
}
