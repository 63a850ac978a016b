package domain

import "time"

// ChampionshipOdds is one team's entry in an outright-winner market. Both
// prices are probabilities in [0,1] when present; nil means the source had no
// quote.
type ChampionshipOdds struct {
	ID                int64
	SportType         SportType
	TeamName          string
	Web2Odds          *float64
	PolymarketPrice   *float64
	SourceBookmaker   string
	SourceURL         string
	PolymarketURL     string
	AIAnalysis        *string
	AnalysisTimestamp *time.Time
	LastUpdated       time.Time
}

// DailyMatch is a head-to-head event with separate home/away quotes.
type DailyMatch struct {
	ID                int64
	MatchID           string
	SportType         SportType
	HomeTeam          string
	AwayTeam          string
	CommenceTime      time.Time
	Web2HomeOdds      *float64
	Web2AwayOdds      *float64
	PolyHomePrice     *float64
	PolyAwayPrice     *float64
	SourceBookmaker   string
	SourceURL         string
	PolymarketURL     string
	AIAnalysis        *string
	AnalysisTimestamp *time.Time
	LastUpdated       time.Time
}
