package domain

import "time"

// ChampionshipItem is one row of a featured championship table.
type ChampionshipItem struct {
	ID              string    `json:"id"`
	SportType       SportType `json:"sportType"`
	TeamName        string    `json:"teamName"`
	Web2Odds        *float64  `json:"web2Odds"`
	PolymarketPrice *float64  `json:"polymarketPrice"`
	EV              *float64  `json:"ev"`
	SourceBookmaker string    `json:"sourceBookmaker"`
	SourceURL       string    `json:"sourceUrl"`
	PolymarketURL   string    `json:"polymarketUrl"`
	AIAnalysis      *string   `json:"aiAnalysis"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// FeaturedChampionship is the ordered table for one featured sport.
type FeaturedChampionship struct {
	SportType SportType          `json:"sportType"`
	Label     string             `json:"label"`
	Items     []ChampionshipItem `json:"items"`
}

// MatchItem is a daily match with both EV sides attached.
type MatchItem struct {
	MatchID         string    `json:"matchId"`
	SportType       SportType `json:"sportType"`
	HomeTeam        string    `json:"homeTeam"`
	AwayTeam        string    `json:"awayTeam"`
	CommenceTime    time.Time `json:"commenceTime"`
	Web2HomeOdds    *float64  `json:"web2HomeOdds"`
	Web2AwayOdds    *float64  `json:"web2AwayOdds"`
	PolyHomePrice   *float64  `json:"polyHomePrice"`
	PolyAwayPrice   *float64  `json:"polyAwayPrice"`
	EVHome          *float64  `json:"evHome"`
	EVAway          *float64  `json:"evAway"`
	SourceBookmaker string    `json:"sourceBookmaker"`
	PolymarketURL   string    `json:"polymarketUrl"`
	AIAnalysis      *string   `json:"aiAnalysis"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// DashboardStats summarises the landing page.
type DashboardStats struct {
	TotalOpportunities int        `json:"totalOpportunities"`
	HighEVCount        int        `json:"highEvCount"`
	DailyMatchCount    int        `json:"dailyMatchCount"`
	LastUpdated        *time.Time `json:"lastUpdated"`
}

// Dashboard is everything the landing page renders.
type Dashboard struct {
	Championships []FeaturedChampionship `json:"championships"`
	DailyMatches  []MatchItem            `json:"dailyMatches"`
	Stats         DashboardStats         `json:"stats"`
	GeneratedAt   time.Time              `json:"generatedAt"`
}

// Opportunity is one line of the EV digest.
type Opportunity struct {
	EventID   string
	SportType SportType
	Label     string
	EV        float64
}
