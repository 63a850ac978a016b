package domain

// SportType is the canonical sport/market key stored alongside every odds row.
type SportType string

const (
	SportNBAWinner SportType = "nba_winner"
	SportWorldCup  SportType = "world_cup"
	SportEPLWinner SportType = "epl_winner"
	SportUCLWinner SportType = "ucl_winner"

	// SportNBA tags daily NBA head-to-head matches.
	SportNBA SportType = "nba"
)

// ChampionshipSports lists the outright-winner markets in display order.
var ChampionshipSports = []SportType{SportNBAWinner, SportWorldCup, SportEPLWinner, SportUCLWinner}

// sportAliases maps URL-facing league tokens to their stored championship key.
var sportAliases = map[string]SportType{
	"nba":       SportNBAWinner,
	"epl":       SportEPLWinner,
	"ucl":       SportUCLWinner,
	"world_cup": SportWorldCup,
}

// NormalizeSportType maps a league alias to its canonical stored value.
// Canonical values and unknown keys are returned unchanged so that an
// unrecognised key simply matches no rows.
func NormalizeSportType(raw string) string {
	if canonical, ok := sportAliases[raw]; ok {
		return string(canonical)
	}
	return raw
}

var sportLabels = map[SportType]string{
	SportNBAWinner: "NBA Championship",
	SportWorldCup:  "FIFA World Cup",
	SportEPLWinner: "Premier League",
	SportUCLWinner: "Champions League",
	SportNBA:       "NBA",
}

// SportLabel returns a human-readable label, or the raw key when unknown.
func SportLabel(s SportType) string {
	if label, ok := sportLabels[s]; ok {
		return label
	}
	return string(s)
}
