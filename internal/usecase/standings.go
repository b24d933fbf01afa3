package usecase

import (
	"sort"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/standings"
)

// aggregateTeamStats folds a set of match blocks into per-team totals.
// Every roster name gets a zero-valued entry up front; team names that only
// appear in match data are added on demand. Unplayed or unparsable games
// are skipped, and a team pair is counted at most once per block.
func aggregateTeamStats(blocks []match.Block, roster []string) map[string]*standings.TeamStat {
	stats := make(map[string]*standings.TeamStat, len(roster))
	for _, name := range roster {
		if name == "" {
			continue
		}
		stats[name] = &standings.TeamStat{Name: name}
	}

	for _, block := range blocks {
		seenPairs := make(map[string]struct{}, len(block.Games))
		for _, raw := range block.Games {
			game := raw.Normalize()
			if !game.Played() || game.HomeTeam == "" || game.AwayTeam == "" {
				continue
			}

			pair := pairKey(game.HomeTeam, game.AwayTeam)
			if _, ok := seenPairs[pair]; ok {
				continue
			}
			seenPairs[pair] = struct{}{}

			home := statFor(stats, game.HomeTeam)
			away := statFor(stats, game.AwayTeam)
			applyResult(home, away, *game.HomeScore, *game.AwayScore)
		}
	}

	return stats
}

func statFor(stats map[string]*standings.TeamStat, name string) *standings.TeamStat {
	if stat, ok := stats[name]; ok {
		return stat
	}
	stat := &standings.TeamStat{Name: name}
	stats[name] = stat
	return stat
}

func applyResult(home, away *standings.TeamStat, homeScore, awayScore int) {
	home.Played++
	away.Played++
	home.GoalsFor += homeScore
	home.GoalsAgainst += awayScore
	away.GoalsFor += awayScore
	away.GoalsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		home.Won++
		home.Points += 3
		away.Lost++
	case awayScore > homeScore:
		away.Won++
		away.Points += 3
		home.Lost++
	default:
		home.Drawn++
		away.Drawn++
		home.Points++
		away.Points++
	}

	home.Diff = home.GoalsFor - home.GoalsAgainst
	away.Diff = away.GoalsFor - away.GoalsAgainst
}

// pairKey builds an order-independent key for a home/away pairing.
func pairKey(a, b string) string {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// rankStandings orders the aggregated stats into a positioned table.
// Teams that never played are excluded. Ordering is effective points,
// goal difference, goals for, then team name, all strict, so equal records
// still rank deterministically. With pairedRanks, consecutive rows equal on
// (effective points, diff) share a position and the next distinct row
// increments the position by exactly one.
func rankStandings(stats map[string]*standings.TeamStat, lookup penalty.Lookup, pairedRanks bool) []standings.Row {
	if lookup == nil {
		lookup = penalty.None
	}

	rows := make([]standings.Row, 0, len(stats))
	for _, stat := range stats {
		if stat.Played == 0 {
			continue
		}
		deduction := lookup(stat.Name)
		rows = append(rows, standings.Row{
			TeamStat:        *stat,
			Penalty:         deduction,
			EffectivePoints: stat.Points - deduction,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].EffectivePoints != rows[j].EffectivePoints {
			return rows[i].EffectivePoints > rows[j].EffectivePoints
		}
		if rows[i].Diff != rows[j].Diff {
			return rows[i].Diff > rows[j].Diff
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		return rows[i].Name < rows[j].Name
	})

	if pairedRanks {
		position := 0
		for idx := range rows {
			if idx == 0 ||
				rows[idx].EffectivePoints != rows[idx-1].EffectivePoints ||
				rows[idx].Diff != rows[idx-1].Diff {
				position++
			}
			rows[idx].Position = position
		}
		return rows
	}

	for idx := range rows {
		rows[idx].Position = idx + 1
	}
	return rows
}

// sumTeamStats merges per-championship totals into the super-league
// aggregate for one team.
func sumTeamStats(target *standings.TeamStat, source standings.TeamStat) {
	target.Points += source.Points
	target.Played += source.Played
	target.Won += source.Won
	target.Drawn += source.Drawn
	target.Lost += source.Lost
	target.GoalsFor += source.GoalsFor
	target.GoalsAgainst += source.GoalsAgainst
	target.Diff = target.GoalsFor - target.GoalsAgainst
}
