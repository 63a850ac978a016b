package domain

import "time"

// EventType distinguishes single-sided championship rows from home/away
// daily match rows in the odds history table.
type EventType string

const (
	EventTypeChampionship EventType = "championship"
	EventTypeDaily        EventType = "daily"
)

// OddsHistorySnapshot is one recording tick for an event. Championship rows
// populate Web2Odds/PolymarketPrice; daily rows populate the home pair.
type OddsHistorySnapshot struct {
	EventID         string
	EventType       EventType
	SportType       string
	RecordedAt      time.Time
	Web2Odds        *float64
	PolymarketPrice *float64
	Web2HomeOdds    *float64
	PolyHomePrice   *float64
}

// HistoryQuery selects the snapshots of one event recorded at or after Since.
type HistoryQuery struct {
	EventID   string
	EventType EventType
	SportType string
	Since     time.Time
}
