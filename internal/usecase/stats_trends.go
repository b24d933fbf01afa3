package usecase

import (
	"sort"

	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/penalty"
)

// computeTrends replays the season matchday by matchday and records each
// team's cumulative points and rank. It is only meaningful for a specific
// season: mixing seasons would make the cumulative table nonsense, so the
// caller skips it for the all-time scope.
func computeTrends(blocks []match.Block, roster []string, penalties map[string]int, champFilter string, seasonNumber int) *TrendsStats {
	maxMatchday := 0
	for _, block := range blocks {
		if block.Matchday > maxMatchday {
			maxMatchday = block.Matchday
		}
	}
	if maxMatchday == 0 {
		return nil
	}

	lookup := penalty.LookupFrom(penalties, champFilter, seasonNumber)

	pointsByTeam := make(map[string][]int)
	positionsByTeam := make(map[string][]int)

	for matchday := 1; matchday <= maxMatchday; matchday++ {
		upTo := make([]match.Block, 0, len(blocks))
		for _, block := range blocks {
			if block.Matchday <= matchday {
				upTo = append(upTo, block)
			}
		}

		rows := rankStandings(aggregateTeamStats(upTo, roster), lookup, false)
		for _, row := range rows {
			if _, ok := pointsByTeam[row.Name]; !ok {
				// Teams entering late pad with zeros so every series
				// has one value per matchday.
				pointsByTeam[row.Name] = make([]int, matchday-1)
				positionsByTeam[row.Name] = make([]int, matchday-1)
			}
		}
		present := make(map[string]struct{}, len(rows))
		for _, row := range rows {
			pointsByTeam[row.Name] = append(pointsByTeam[row.Name], row.EffectivePoints)
			positionsByTeam[row.Name] = append(positionsByTeam[row.Name], row.Position)
			present[row.Name] = struct{}{}
		}
		for name := range pointsByTeam {
			if _, ok := present[name]; ok {
				continue
			}
			last := 0
			if n := len(pointsByTeam[name]); n > 0 {
				last = pointsByTeam[name][n-1]
			}
			lastPos := 0
			if n := len(positionsByTeam[name]); n > 0 {
				lastPos = positionsByTeam[name][n-1]
			}
			pointsByTeam[name] = append(pointsByTeam[name], last)
			positionsByTeam[name] = append(positionsByTeam[name], lastPos)
		}
	}

	out := &TrendsStats{
		Matchdays: maxMatchday,
		Teams:     make([]TeamTrend, 0, len(pointsByTeam)),
	}
	for name, points := range pointsByTeam {
		out.Teams = append(out.Teams, TeamTrend{
			Team:      name,
			Points:    points,
			Positions: positionsByTeam[name],
		})
	}
	sort.SliceStable(out.Teams, func(i, j int) bool {
		return out.Teams[i].Team < out.Teams[j].Team
	})
	return out
}
