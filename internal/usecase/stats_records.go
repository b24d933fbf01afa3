package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/season"
)

const recordsTopN = 3

// computeRecords derives the record book for the filter scope. The trophy
// board is recomputed from the raw match set rather than the persisted
// season entries, so a stale persisted table can never surface here.
func computeRecords(snapshot season.Snapshot, flat []match.Scored, penalties map[string]int) RecordsStats {
	out := RecordsStats{
		BiggestWins:    biggestWins(flat),
		HighestScoring: highestScoring(flat),
		TrophyLeaders:  buildPantheon(buildSeasonEntries(snapshot, penalties), penalties),
	}
	out.WinStreaks, out.UnbeatenRuns, out.LosingStreaks = computeStreaks(flat)
	return out
}

func biggestWins(flat []match.Scored) []match.Scored {
	wins := make([]match.Scored, 0, len(flat))
	for _, item := range flat {
		if item.Margin() > 0 {
			wins = append(wins, item)
		}
	}
	sort.SliceStable(wins, func(i, j int) bool {
		if wins[i].Margin() != wins[j].Margin() {
			return wins[i].Margin() > wins[j].Margin()
		}
		return wins[i].TotalGoals() > wins[j].TotalGoals()
	})
	return topMatches(wins)
}

func highestScoring(flat []match.Scored) []match.Scored {
	scored := make([]match.Scored, len(flat))
	copy(scored, flat)
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].TotalGoals() != scored[j].TotalGoals() {
			return scored[i].TotalGoals() > scored[j].TotalGoals()
		}
		return scored[i].Margin() > scored[j].Margin()
	})
	return topMatches(scored)
}

func topMatches(items []match.Scored) []match.Scored {
	if len(items) > recordsTopN {
		items = items[:recordsTopN]
	}
	out := make([]match.Scored, len(items))
	copy(out, items)
	return out
}

// streakGroup is one team's chronological results within a single
// championship season. Matchday numbering resets per championship, so runs
// must never bridge groups.
type streakGroup struct {
	team           string
	championshipID string
	seasonNumber   int
	results        []byte // 'W', 'D', 'L' ordered by matchday
}

func computeStreaks(flat []match.Scored) (wins, unbeaten, losses []StreakEntry) {
	type timedResult struct {
		matchday int
		result   byte
	}
	groups := make(map[string][]timedResult)
	meta := make(map[string]streakGroup)

	record := func(team string, item match.Scored, result byte) {
		key := fmt.Sprintf("%s|%s|%d", strings.ToLower(team), strings.ToLower(item.Championship), item.Season)
		groups[key] = append(groups[key], timedResult{matchday: item.Matchday, result: result})
		if _, ok := meta[key]; !ok {
			id := item.Championship
			if canonical, found := championship.IDForKey(item.Championship); found {
				id = canonical
			} else if _, found := championship.KeyForID(item.Championship); found {
				id = strings.ToLower(item.Championship)
			}
			meta[key] = streakGroup{team: team, championshipID: id, seasonNumber: item.Season}
		}
	}

	for _, item := range flat {
		switch {
		case item.HomeScore > item.AwayScore:
			record(item.HomeTeam, item, 'W')
			record(item.AwayTeam, item, 'L')
		case item.AwayScore > item.HomeScore:
			record(item.AwayTeam, item, 'W')
			record(item.HomeTeam, item, 'L')
		default:
			record(item.HomeTeam, item, 'D')
			record(item.AwayTeam, item, 'D')
		}
	}

	bestWin := make(map[string]StreakEntry)
	bestUnbeaten := make(map[string]StreakEntry)
	bestLoss := make(map[string]StreakEntry)

	for key, results := range groups {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].matchday < results[j].matchday
		})
		group := meta[key]

		winRun, unbeatenRun, lossRun := 0, 0, 0
		maxWin, maxUnbeaten, maxLoss := 0, 0, 0
		for _, item := range results {
			if item.result == 'W' {
				winRun++
			} else {
				winRun = 0
			}
			if item.result == 'W' || item.result == 'D' {
				unbeatenRun++
			} else {
				unbeatenRun = 0
			}
			if item.result == 'L' {
				lossRun++
			} else {
				lossRun = 0
			}
			if winRun > maxWin {
				maxWin = winRun
			}
			if unbeatenRun > maxUnbeaten {
				maxUnbeaten = unbeatenRun
			}
			if lossRun > maxLoss {
				maxLoss = lossRun
			}
		}

		keepBest(bestWin, group, maxWin)
		keepBest(bestUnbeaten, group, maxUnbeaten)
		keepBest(bestLoss, group, maxLoss)
	}

	return sortStreaks(bestWin), sortStreaks(bestUnbeaten), sortStreaks(bestLoss)
}

func keepBest(best map[string]StreakEntry, group streakGroup, length int) {
	if length == 0 {
		return
	}
	current, ok := best[group.team]
	if !ok || length > current.Length {
		best[group.team] = StreakEntry{
			Team:           group.team,
			Length:         length,
			ChampionshipID: group.championshipID,
			Season:         group.seasonNumber,
		}
	}
}

func sortStreaks(best map[string]StreakEntry) []StreakEntry {
	out := make([]StreakEntry, 0, len(best))
	for _, entry := range best {
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length > out[j].Length
		}
		return out[i].Team < out[j].Team
	})
	return out
}
