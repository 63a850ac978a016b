// Package series shapes odds history snapshots into the uniform chart series
// served by the history endpoint.
package series

import (
	"iter"

	"github.com/hashedalex/polydelta/internal/domain"
	"github.com/hashedalex/polydelta/internal/oddsmath"
)

// TimeLayout is UTC RFC 3339 with millisecond precision; it sorts
// lexically in time order.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Point is one chart sample in percent units.
type Point struct {
	Web2 *float64 `json:"web2"`
	Poly *float64 `json:"poly"`
	Time string   `json:"time"`
}

// Build maps snapshots to points in input order. Daily events read the
// home-side pair, every other event type reads the single-sided pair. The
// input is neither sorted nor filtered, and the returned sequence can be
// ranged over any number of times.
func Build(snapshots []domain.OddsHistorySnapshot, eventType domain.EventType) iter.Seq[Point] {
	pick := championshipPair
	if eventType == domain.EventTypeDaily {
		pick = dailyPair
	}
	return func(yield func(Point) bool) {
		for i := range snapshots {
			web2, poly := pick(&snapshots[i])
			p := Point{
				Web2: oddsmath.ToPercent(web2),
				Poly: oddsmath.ToPercent(poly),
				Time: snapshots[i].RecordedAt.UTC().Format(TimeLayout),
			}
			if !yield(p) {
				return
			}
		}
	}
}

func championshipPair(s *domain.OddsHistorySnapshot) (web2, poly *float64) {
	return s.Web2Odds, s.PolymarketPrice
}

func dailyPair(s *domain.OddsHistorySnapshot) (web2, poly *float64) {
	return s.Web2HomeOdds, s.PolyHomePrice
}
