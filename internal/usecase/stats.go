package usecase

import (
	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/season"
	"github.com/matthieuv/superligue/internal/domain/trophy"
	"github.com/sourcegraph/conc"
)

// StatsResult bundles the six analytics views for one filter scope.
type StatsResult struct {
	ChampionshipFilter string            `json:"championshipFilter"`
	SeasonFilter       int               `json:"seasonFilter"`
	Records            RecordsStats      `json:"records"`
	Performance        PerformanceStats  `json:"performance"`
	HeadToHead         HeadToHeadStats   `json:"headToHead"`
	Trends             *TrendsStats      `json:"trends,omitempty"`
	HomeAway           HomeAwayStats     `json:"homeAway"`
	Scoring            ScoringStats      `json:"scoring"`
}

// RatedTeam is one leaderboard line.
type RatedTeam struct {
	Team  string  `json:"team"`
	Value float64 `json:"value"`
}

// CountEntry is one counted leaderboard line.
type CountEntry struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

// RecordsStats holds all-time records for the filter scope.
type RecordsStats struct {
	BiggestWins    []match.Scored  `json:"biggestWins"`
	HighestScoring []match.Scored  `json:"highestScoring"`
	WinStreaks     []StreakEntry   `json:"winStreaks"`
	UnbeatenRuns   []StreakEntry   `json:"unbeatenRuns"`
	LosingStreaks  []StreakEntry   `json:"losingStreaks"`
	TrophyLeaders  []trophy.Record `json:"trophyLeaders"`
}

// StreakEntry is a team's longest run of one result type, confined to a
// single championship season.
type StreakEntry struct {
	Team           string `json:"team"`
	Length         int    `json:"length"`
	ChampionshipID string `json:"championshipId"`
	Season         int    `json:"season"`
}

// PerformanceStats rates teams with at least three games played.
type PerformanceStats struct {
	PointsPerGame []RatedTeam `json:"pointsPerGame"`
	WinRate       []RatedTeam `json:"winRate"`
	Attack        []RatedTeam `json:"attack"`
	Defense       []RatedTeam `json:"defense"`
}

// HeadToHeadStats is the pairwise record matrix.
type HeadToHeadStats struct {
	Pairs       []PairRecord `json:"pairs"`
	ActiveTeams []string     `json:"activeTeams"`
}

// PairRecord is the aggregate record of one team pairing. TeamA sorts
// before TeamB alphabetically; wins/goals are from TeamA's perspective.
type PairRecord struct {
	TeamA   string         `json:"teamA"`
	TeamB   string         `json:"teamB"`
	Played  int            `json:"played"`
	WinsA   int            `json:"winsA"`
	Draws   int            `json:"draws"`
	WinsB   int            `json:"winsB"`
	GoalsA  int            `json:"goalsA"`
	GoalsB  int            `json:"goalsB"`
	Matches []match.Scored `json:"matches"`
}

// TrendsStats is the cumulative standings timeline for one season.
type TrendsStats struct {
	Matchdays int         `json:"matchdays"`
	Teams     []TeamTrend `json:"teams"`
}

// TeamTrend carries one team's points and rank after each matchday.
type TeamTrend struct {
	Team      string `json:"team"`
	Points    []int  `json:"points"`
	Positions []int  `json:"positions"`
}

// HomeAwayStats splits team records by venue.
type HomeAwayStats struct {
	Splits          []VenueSplit `json:"splits"`
	BestHomeWinRate []RatedTeam  `json:"bestHomeWinRate"`
	BestAwayWinRate []RatedTeam  `json:"bestAwayWinRate"`
}

// VenueSplit is one team's home/away breakdown.
type VenueSplit struct {
	Team         string `json:"team"`
	HomePlayed   int    `json:"homePlayed"`
	HomeWon      int    `json:"homeWon"`
	HomeDrawn    int    `json:"homeDrawn"`
	HomeLost     int    `json:"homeLost"`
	HomeGoalsFor int    `json:"homeGoalsFor"`
	HomeGoalsAgn int    `json:"homeGoalsAgainst"`
	AwayPlayed   int    `json:"awayPlayed"`
	AwayWon      int    `json:"awayWon"`
	AwayDrawn    int    `json:"awayDrawn"`
	AwayLost     int    `json:"awayLost"`
	AwayGoalsFor int    `json:"awayGoalsFor"`
	AwayGoalsAgn int    `json:"awayGoalsAgainst"`
}

// ScoringStats describes the scoring distribution of the filter scope.
type ScoringStats struct {
	TotalGoals      int           `json:"totalGoals"`
	TotalGames      int           `json:"totalGames"`
	TotalMatchdays  int           `json:"totalMatchdays"`
	AvgGoalsPerGame float64       `json:"avgGoalsPerGame"`
	HighScoringPct  float64       `json:"highScoringPct"`
	CleanSheets     []CountEntry  `json:"cleanSheets"`
	FailedToScore   []CountEntry  `json:"failedToScore"`
	TopScores       []ScoreBucket `json:"topScores"`
}

// ScoreBucket counts one final score, order-independent ("3-1" covers 1-3
// as well, keyed higher score first).
type ScoreBucket struct {
	Score string `json:"score"`
	Count int    `json:"count"`
}

// computeAllStats runs the six views over the filter scope. It returns nil
// when the scope holds no usable data at all. The views are independent
// pure functions, so they fan out concurrently.
func computeAllStats(snapshot season.Snapshot, penalties map[string]int, champFilter string, seasonFilter int) *StatsResult {
	blocks := filteredBlocks(snapshot, champFilter, seasonFilter)
	flat := flattenBlocks(blocks)
	if len(flat) == 0 && len(snapshot.Managers) == 0 {
		return nil
	}

	result := &StatsResult{
		ChampionshipFilter: champFilter,
		SeasonFilter:       seasonFilter,
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		result.Records = computeRecords(snapshot, flat, penalties)
	})
	wg.Go(func() {
		result.Performance = computePerformance(blocks, snapshot.TeamNames())
	})
	wg.Go(func() {
		result.HeadToHead = computeHeadToHead(flat)
	})
	wg.Go(func() {
		if seasonFilter != championship.SeasonAll {
			result.Trends = computeTrends(blocks, snapshot.TeamNames(), penalties, champFilter, seasonFilter)
		}
	})
	wg.Go(func() {
		result.HomeAway = computeHomeAway(flat)
	})
	wg.Go(func() {
		result.Scoring = computeScoring(blocks, flat)
	})
	wg.Wait()

	return result
}
