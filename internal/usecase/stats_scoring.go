package usecase

import (
	"fmt"
	"sort"

	"github.com/matthieuv/superligue/internal/domain/match"
)

// highScoringThreshold marks a game as high-scoring when its combined
// score reaches this many goals.
const highScoringThreshold = 4

// topScoresLimit caps the most-frequent-scores list.
const topScoresLimit = 10

// computeScoring derives the scoring distribution: totals, per-game
// averages, clean-sheet and failed-to-score counts, and the most frequent
// final scores. Score buckets are order-independent: 3-1 and 1-3 land in
// the same "3-1" bucket.
func computeScoring(blocks []match.Block, flat []match.Scored) ScoringStats {
	out := ScoringStats{
		TotalGames:     len(flat),
		TotalMatchdays: distinctMatchdays(blocks),
	}

	type shutoutCounts struct {
		played        int
		cleanSheets   int
		failedToScore int
	}
	byTeam := make(map[string]*shutoutCounts, 16)
	countsFor := func(team string) *shutoutCounts {
		if counts, ok := byTeam[team]; ok {
			return counts
		}
		counts := &shutoutCounts{}
		byTeam[team] = counts
		return counts
	}

	buckets := make(map[string]int, len(flat))
	highScoring := 0

	for _, item := range flat {
		out.TotalGoals += item.TotalGoals()
		if item.TotalGoals() >= highScoringThreshold {
			highScoring++
		}

		home := countsFor(item.HomeTeam)
		away := countsFor(item.AwayTeam)
		home.played++
		away.played++
		if item.AwayScore == 0 {
			home.cleanSheets++
			away.failedToScore++
		}
		if item.HomeScore == 0 {
			away.cleanSheets++
			home.failedToScore++
		}

		high, low := item.HomeScore, item.AwayScore
		if low > high {
			high, low = low, high
		}
		buckets[fmt.Sprintf("%d-%d", high, low)]++
	}

	if out.TotalGames > 0 {
		out.AvgGoalsPerGame = float64(out.TotalGoals) / float64(out.TotalGames)
		out.HighScoringPct = 100 * float64(highScoring) / float64(out.TotalGames)
	}

	for team, counts := range byTeam {
		if counts.played < minSampleGames {
			continue
		}
		out.CleanSheets = append(out.CleanSheets, CountEntry{Team: team, Count: counts.cleanSheets})
		out.FailedToScore = append(out.FailedToScore, CountEntry{Team: team, Count: counts.failedToScore})
	}
	sortCountsDesc(out.CleanSheets)
	sortCountsDesc(out.FailedToScore)

	out.TopScores = make([]ScoreBucket, 0, len(buckets))
	for score, count := range buckets {
		out.TopScores = append(out.TopScores, ScoreBucket{Score: score, Count: count})
	}
	sort.SliceStable(out.TopScores, func(i, j int) bool {
		if out.TopScores[i].Count != out.TopScores[j].Count {
			return out.TopScores[i].Count > out.TopScores[j].Count
		}
		return out.TopScores[i].Score < out.TopScores[j].Score
	})
	if len(out.TopScores) > topScoresLimit {
		out.TopScores = out.TopScores[:topScoresLimit]
	}
	return out
}

func distinctMatchdays(blocks []match.Block) int {
	seen := make(map[string]struct{}, len(blocks))
	for _, block := range blocks {
		seen[blockKey(block)] = struct{}{}
	}
	return len(seen)
}

func sortCountsDesc(items []CountEntry) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Team < items[j].Team
	})
}
