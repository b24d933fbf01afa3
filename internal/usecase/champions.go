package usecase

import (
	"sort"
	"strings"

	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/trophy"
)

const coChampionSeparator = " & "
const coRunnerUpSeparator = " / "

// titleRow is a standings row reduced to what champion derivation needs.
type titleRow struct {
	name   string
	points int
	diff   int
	goals  int
}

// deriveChampion determines the title outcome of one season entry.
// Incomplete seasons yield no champion. Effective points are recomputed
// from the penalty set so a stale persisted table cannot misassign a title.
func deriveChampion(championshipID string, entry season.Entry, penalties map[string]int) (trophy.Champion, bool) {
	if len(entry.Standings) == 0 {
		return trophy.Champion{}, false
	}

	progress, ok := seasonProgress(championshipID, entry.Season, entryPlayedMatchdays(entry))
	if !ok || !progress.Complete {
		return trophy.Champion{}, false
	}

	lookup := penalty.LookupFrom(penalties, championshipID, entry.Season)
	rows := make([]titleRow, 0, len(entry.Standings))
	for _, row := range entry.Standings {
		rows = append(rows, titleRow{
			name:   row.Name,
			points: row.Points - lookup(row.Name),
			diff:   row.Diff,
			goals:  row.GoalsFor,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].points != rows[j].points {
			return rows[i].points > rows[j].points
		}
		if rows[i].diff != rows[j].diff {
			return rows[i].diff > rows[j].diff
		}
		if rows[i].goals != rows[j].goals {
			return rows[i].goals > rows[j].goals
		}
		return rows[i].name < rows[j].name
	})

	if resolution, overridden := championship.ResolutionFor(championshipID, entry.Season); overridden && len(resolution.CoChampions) > 0 {
		return resolvedChampion(championshipID, entry.Season, resolution, rows), true
	}

	champion := trophy.Champion{
		ChampionshipID: championshipID,
		Season:         entry.Season,
		Team:           rows[0].name,
		Points:         rows[0].points,
	}
	if len(rows) > 1 {
		champion.RunnerUp = rows[1].name
	}
	return champion, true
}

// resolvedChampion applies a co-champion override. Both named teams share
// the title; the runner-up slot goes to the remaining team(s) tied for
// third under the usual ranking.
func resolvedChampion(championshipID string, seasonNumber int, resolution championship.Resolution, rows []titleRow) trophy.Champion {
	champion := trophy.Champion{
		ChampionshipID: championshipID,
		Season:         seasonNumber,
		Team:           strings.Join(resolution.CoChampions, coChampionSeparator),
	}

	titled := make(map[string]struct{}, len(resolution.CoChampions))
	for _, name := range resolution.CoChampions {
		titled[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	for _, row := range rows {
		if _, ok := titled[strings.ToLower(row.name)]; ok && row.points > champion.Points {
			champion.Points = row.points
		}
	}

	runnersUp := make([]string, 0, 2)
	bestPoints, bestDiff := 0, 0
	for _, row := range rows {
		if _, ok := titled[strings.ToLower(row.name)]; ok {
			continue
		}
		if len(runnersUp) == 0 {
			bestPoints, bestDiff = row.points, row.diff
			runnersUp = append(runnersUp, row.name)
			continue
		}
		if row.points == bestPoints && row.diff == bestDiff {
			runnersUp = append(runnersUp, row.name)
		}
	}
	champion.RunnerUp = strings.Join(runnersUp, coRunnerUpSeparator)
	return champion
}

// championsFor lists every completed season title of one championship,
// newest season first.
func championsFor(entries map[string]season.Entry, championshipID string, penalties map[string]int) []trophy.Champion {
	key, ok := championship.KeyForID(championshipID)
	if !ok {
		return nil
	}

	out := make([]trophy.Champion, 0, len(entries))
	for entryKey, entry := range entries {
		prefix, _ := splitSeasonKey(entryKey)
		if prefix != key {
			continue
		}
		if champion, ok := deriveChampion(championshipID, entry, penalties); ok {
			out = append(out, champion)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Season > out[j].Season
	})
	return out
}

// buildPantheon accumulates the cross-championship trophy board. Shared
// titles credit every co-champion. Ranking is super-league titles first,
// then total, then name.
func buildPantheon(entries map[string]season.Entry, penalties map[string]int) []trophy.Record {
	byTeam := make(map[string]*trophy.Record)

	for _, championshipID := range championship.AllIDs {
		for _, champion := range championsFor(entries, championshipID, penalties) {
			for _, name := range strings.Split(champion.Team, coChampionSeparator) {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				record, ok := byTeam[name]
				if !ok {
					record = &trophy.Record{Team: name, ByChampionship: make(map[string]int)}
					byTeam[name] = record
				}
				record.ByChampionship[championshipID]++
				record.Total++
			}
		}
	}

	out := make([]trophy.Record, 0, len(byTeam))
	for _, record := range byTeam {
		out = append(out, *record)
	}
	sort.SliceStable(out, func(i, j int) bool {
		superI := out[i].Titles(championship.IDSuperLeague)
		superJ := out[j].Titles(championship.IDSuperLeague)
		if superI != superJ {
			return superI > superJ
		}
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Team < out[j].Team
	})
	return out
}
