package domain

import "time"

// Verdict is the position recommendation attached to a team in a report.
type Verdict string

const (
	VerdictAccumulate Verdict = "Accumulate"
	VerdictHold       Verdict = "Hold"
	VerdictSell       Verdict = "Sell"
)

// TournamentReport is the generated strategy document for one sport.
type TournamentReport struct {
	SportType   SportType
	Report      ReportDocument
	GeneratedAt time.Time
}

// ReportDocument mirrors the report_json column.
type ReportDocument struct {
	StrategyCard     StrategyCard `json:"strategy_card"`
	NewsCard         NewsCard     `json:"news_card"`
	PortfolioSummary string       `json:"portfolio_summary"`
}

type StrategyCard struct {
	Headline string `json:"headline"`
	Analysis string `json:"analysis"`
	RiskText string `json:"risk_text"`
}

type NewsCard struct {
	Tiers []ReportTier `json:"tiers"`
}

type ReportTier struct {
	TierName  string       `json:"tier_name"`
	TierEmoji string       `json:"tier_emoji"`
	Teams     []ReportTeam `json:"teams"`
}

type ReportTeam struct {
	TeamName        string   `json:"team_name"`
	PolymarketPrice *float64 `json:"polymarket_price"`
	Web2Odds        *float64 `json:"web2_odds"`
	Verdict         Verdict  `json:"verdict"`
	OneLiner        string   `json:"one_liner"`
}
