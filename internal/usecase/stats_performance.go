package usecase

import (
	"sort"

	"github.com/matthieuv/superligue/internal/domain/match"
)

// minSampleGames guards rate-based leaderboards against tiny samples.
const minSampleGames = 3

// computePerformance rates every team with enough games played. Each
// leaderboard is sorted independently; defense sorts ascending because
// fewer goals conceded per game is better.
func computePerformance(blocks []match.Block, roster []string) PerformanceStats {
	stats := aggregateTeamStats(blocks, roster)

	out := PerformanceStats{
		PointsPerGame: make([]RatedTeam, 0, len(stats)),
		WinRate:       make([]RatedTeam, 0, len(stats)),
		Attack:        make([]RatedTeam, 0, len(stats)),
		Defense:       make([]RatedTeam, 0, len(stats)),
	}

	for _, stat := range stats {
		if stat.Played < minSampleGames {
			continue
		}
		games := float64(stat.Played)
		out.PointsPerGame = append(out.PointsPerGame, RatedTeam{Team: stat.Name, Value: float64(stat.Points) / games})
		out.WinRate = append(out.WinRate, RatedTeam{Team: stat.Name, Value: 100 * float64(stat.Won) / games})
		out.Attack = append(out.Attack, RatedTeam{Team: stat.Name, Value: float64(stat.GoalsFor) / games})
		out.Defense = append(out.Defense, RatedTeam{Team: stat.Name, Value: float64(stat.GoalsAgainst) / games})
	}

	sortRatedDesc(out.PointsPerGame)
	sortRatedDesc(out.WinRate)
	sortRatedDesc(out.Attack)
	sortRatedAsc(out.Defense)
	return out
}

func sortRatedDesc(items []RatedTeam) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Team < items[j].Team
	})
}

func sortRatedAsc(items []RatedTeam) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value < items[j].Value
		}
		return items[i].Team < items[j].Team
	})
}
