// Package notify delivers the EV opportunity digest to chat channels.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashedalex/polydelta/internal/domain"
)

// Sender is one notification channel.
type Sender interface {
	Send(ctx context.Context, title, message string) error
	Name() string
}

// Notifier fans a message out to every configured Sender.
type Notifier struct {
	senders []Sender
	logger  *slog.Logger
}

// NewNotifier creates a Notifier. With no senders every call is a no-op.
func NewNotifier(senders []Sender, logger *slog.Logger) *Notifier {
	return &Notifier{
		senders: senders,
		logger:  logger.With(slog.String("component", "notifier")),
	}
}

// Enabled reports whether any sender is configured.
func (n *Notifier) Enabled() bool {
	return len(n.senders) > 0
}

// Send delivers to every sender. A failing sender does not stop delivery to
// the rest; all failures are joined into the returned error.
func (n *Notifier) Send(ctx context.Context, title, message string) error {
	var errs []error
	for _, s := range n.senders {
		if err := s.Send(ctx, title, message); err != nil {
			n.logger.ErrorContext(ctx, "sender failed",
				slog.String("sender", s.Name()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		n.logger.DebugContext(ctx, "notification sent",
			slog.String("sender", s.Name()),
			slog.String("title", title),
		)
	}
	if len(errs) > 0 {
		return fmt.Errorf("notify: %d sender(s) failed: %w", len(errs), errors.Join(errs...))
	}
	return nil
}

// SendDigest formats and delivers the opportunity digest. An empty list is
// not sent.
func (n *Notifier) SendDigest(ctx context.Context, opps []domain.Opportunity, at time.Time) error {
	if len(opps) == 0 || !n.Enabled() {
		return nil
	}
	return n.Send(ctx, DigestTitle(at), FormatDigest(opps))
}

// DigestTitle is the heading of a digest published at t.
func DigestTitle(t time.Time) string {
	return "PolyDelta top opportunities " + t.UTC().Format("2006-01-02 15:04 MST")
}

// FormatDigest renders one line per opportunity, e.g.
//
//	1. Boston Celtics [NBA Championship] EV +25.00%
func FormatDigest(opps []domain.Opportunity) string {
	var b strings.Builder
	for i, o := range opps {
		fmt.Fprintf(&b, "%d. %s [%s] EV %+.2f%%\n", i+1, o.Label, domain.SportLabel(o.SportType), o.EV)
	}
	return b.String()
}
