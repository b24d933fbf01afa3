package usecase

import (
	"math"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/season"
)

// SeasonProgress is the completion verdict for one championship season.
type SeasonProgress struct {
	ChampionshipID string `json:"championshipId"`
	Season         int    `json:"season"`
	Complete       bool   `json:"complete"`
	// Percent may exceed 100 on schedule overrun; that is a data signal,
	// not an error.
	Percent         int `json:"percent"`
	PlayedMatchdays int `json:"playedMatchdays"`
	TotalMatchdays  int `json:"totalMatchdays"`
}

// seasonProgress decides whether a season's schedule is complete.
// playedMatchdays is the match-derived count; when no match data exists the
// caller passes the first standings row's played count as a proxy. A season
// whose outcome is overridden to co-champions is complete unconditionally.
func seasonProgress(championshipID string, seasonNumber, playedMatchdays int) (SeasonProgress, bool) {
	total, ok := championship.TotalMatchdays(championshipID, seasonNumber)
	if !ok || total <= 0 {
		return SeasonProgress{}, false
	}

	progress := SeasonProgress{
		ChampionshipID:  championshipID,
		Season:          seasonNumber,
		PlayedMatchdays: playedMatchdays,
		TotalMatchdays:  total,
		Percent:         int(math.Round(100 * float64(playedMatchdays) / float64(total))),
	}
	progress.Complete = playedMatchdays >= total || championship.HasPairedChampions(championshipID, seasonNumber)
	return progress, true
}

// entryPlayedMatchdays returns the matchday count recorded on a season
// entry, falling back to the leader's played count when the entry predates
// matchday tracking.
func entryPlayedMatchdays(entry season.Entry) int {
	if entry.PlayedMatchdays > 0 {
		return entry.PlayedMatchdays
	}
	if len(entry.Standings) > 0 {
		return entry.Standings[0].Played
	}
	return 0
}
