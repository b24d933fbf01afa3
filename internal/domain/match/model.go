package match

// RawGame is one match record as it arrives from imports or the remote
// datastore. Field names vary across data generations, so games are kept
// as loose objects and canonicalized through Normalize.
type RawGame map[string]any

// Game is the canonical shape of one match. A nil score means the match
// has not been played; such games are excluded from every aggregation.
type Game struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore *int   `json:"homeScore"`
	AwayScore *int   `json:"awayScore"`
}

// Played reports whether both scores are recorded.
func (g Game) Played() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Block is one scheduled round of games. Identity is
// (championship lowercased, season, matchday); duplicate blocks for the
// same identity are merged last-write-wins upstream.
type Block struct {
	Championship string    `json:"championship"`
	Season       int       `json:"season"`
	Matchday     int       `json:"matchday"`
	Games        []RawGame `json:"games"`
}

// Scored is a fully played game tagged with its block coordinates. The
// flat scored-match list is the sole input of the statistics views.
type Scored struct {
	Championship string `json:"championship"`
	Season       int    `json:"season"`
	Matchday     int    `json:"matchday"`
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
}

// TotalGoals returns the combined score of the match.
func (s Scored) TotalGoals() int {
	return s.HomeScore + s.AwayScore
}

// Margin returns the absolute score differential.
func (s Scored) Margin() int {
	diff := s.HomeScore - s.AwayScore
	if diff < 0 {
		return -diff
	}
	return diff
}

// Winner returns the winning team name, or "" on a draw.
func (s Scored) Winner() string {
	switch {
	case s.HomeScore > s.AwayScore:
		return s.HomeTeam
	case s.AwayScore > s.HomeScore:
		return s.AwayTeam
	default:
		return ""
	}
}
