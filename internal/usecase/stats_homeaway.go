package usecase

import (
	"sort"

	"github.com/matthieuv/superligue/internal/domain/match"
)

// minVenueGames is the floor for the specialized home/away win-rate boards.
const minVenueGames = 2

// computeHomeAway splits every team's record by venue. Teams need at least
// three games overall for the comparison table and two games at the venue
// for the win-rate leaderboards.
func computeHomeAway(flat []match.Scored) HomeAwayStats {
	splits := make(map[string]*VenueSplit, 16)

	splitFor := func(team string) *VenueSplit {
		if split, ok := splits[team]; ok {
			return split
		}
		split := &VenueSplit{Team: team}
		splits[team] = split
		return split
	}

	for _, item := range flat {
		home := splitFor(item.HomeTeam)
		away := splitFor(item.AwayTeam)

		home.HomePlayed++
		home.HomeGoalsFor += item.HomeScore
		home.HomeGoalsAgn += item.AwayScore
		away.AwayPlayed++
		away.AwayGoalsFor += item.AwayScore
		away.AwayGoalsAgn += item.HomeScore

		switch {
		case item.HomeScore > item.AwayScore:
			home.HomeWon++
			away.AwayLost++
		case item.AwayScore > item.HomeScore:
			away.AwayWon++
			home.HomeLost++
		default:
			home.HomeDrawn++
			away.AwayDrawn++
		}
	}

	out := HomeAwayStats{
		Splits:          make([]VenueSplit, 0, len(splits)),
		BestHomeWinRate: make([]RatedTeam, 0, len(splits)),
		BestAwayWinRate: make([]RatedTeam, 0, len(splits)),
	}

	for _, split := range splits {
		if split.HomePlayed+split.AwayPlayed >= minSampleGames {
			out.Splits = append(out.Splits, *split)
		}
		if split.HomePlayed >= minVenueGames {
			out.BestHomeWinRate = append(out.BestHomeWinRate, RatedTeam{
				Team:  split.Team,
				Value: 100 * float64(split.HomeWon) / float64(split.HomePlayed),
			})
		}
		if split.AwayPlayed >= minVenueGames {
			out.BestAwayWinRate = append(out.BestAwayWinRate, RatedTeam{
				Team:  split.Team,
				Value: 100 * float64(split.AwayWon) / float64(split.AwayPlayed),
			})
		}
	}

	sort.SliceStable(out.Splits, func(i, j int) bool {
		return out.Splits[i].Team < out.Splits[j].Team
	})
	sortRatedDesc(out.BestHomeWinRate)
	sortRatedDesc(out.BestAwayWinRate)
	return out
}
