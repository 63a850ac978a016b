package domain

import (
	"strings"
	"time"
)

// EventKind tags which record family an event identifier points at.
type EventKind string

const (
	EventKindMatch        EventKind = "match"
	EventKindChampionship EventKind = "championship"
)

const championshipPrefix = "championship-"

// EventRef is a parsed event identifier. Championship refs carry the
// canonical sport and the team slug; match refs carry the literal match id.
type EventRef struct {
	Raw      string
	Kind     EventKind
	MatchID  string
	Sport    SportType
	TeamSlug string
}

// ParseEventRef classifies an identifier of the form
// championship-{sport}-{teamSlug}; anything else, including a championship
// prefix with an empty sport or slug, is a literal match id.
func ParseEventRef(raw string) EventRef {
	if rest, ok := strings.CutPrefix(raw, championshipPrefix); ok {
		sport, teamSlug, found := strings.Cut(rest, "-")
		if found && sport != "" && teamSlug != "" {
			return EventRef{
				Raw:      raw,
				Kind:     EventKindChampionship,
				Sport:    SportType(NormalizeSportType(sport)),
				TeamSlug: teamSlug,
			}
		}
	}
	return EventRef{Raw: raw, Kind: EventKindMatch, MatchID: raw}
}

// ChampionshipEventID builds the identifier ParseEventRef understands.
func ChampionshipEventID(sport SportType, teamSlug string) string {
	return championshipPrefix + string(sport) + "-" + teamSlug
}

// EventDescriptor is the client-facing shape shared by daily matches and
// championship entries. Championship entries put the team in HomeTeam and
// their single-sided prices in the home fields.
type EventDescriptor struct {
	ID                string     `json:"id"`
	MatchID           string     `json:"matchId"`
	Kind              EventKind  `json:"kind"`
	SportType         SportType  `json:"sportType"`
	HomeTeam          string     `json:"homeTeam"`
	AwayTeam          string     `json:"awayTeam"`
	CommenceTime      *time.Time `json:"commenceTime"`
	Web2HomeOdds      *float64   `json:"web2HomeOdds"`
	Web2AwayOdds      *float64   `json:"web2AwayOdds"`
	PolyHomePrice     *float64   `json:"polyHomePrice"`
	PolyAwayPrice     *float64   `json:"polyAwayPrice"`
	EVHome            *float64   `json:"evHome"`
	EVAway            *float64   `json:"evAway"`
	SourceBookmaker   string     `json:"sourceBookmaker"`
	SourceURL         string     `json:"sourceUrl"`
	PolymarketURL     string     `json:"polymarketUrl"`
	AIAnalysis        *string    `json:"aiAnalysis"`
	AnalysisTimestamp *time.Time `json:"analysisTimestamp"`
	LastUpdated       *time.Time `json:"lastUpdated"`
	Placeholder       bool       `json:"placeholder"`
}
