package memory

import (
	"github.com/matthieuv/superligue/internal/domain/championship"
	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/season"
)

// SeedSnapshot builds a small demo dataset, enough to exercise standings,
// champions and every statistics view without a database.
func SeedSnapshot() season.Snapshot {
	return season.Snapshot{
		Managers: SeedManagers(),
		Seasons:  map[string]season.Entry{},
		Matches:  SeedMatches(),
	}
}

func SeedManagers() map[string]season.Manager {
	return map[string]season.Manager{
		"mgr-01": {ID: "mgr-01", Name: "Les Invincibles"},
		"mgr-02": {ID: "mgr-02", Name: "Real Fantasy"},
		"mgr-03": {ID: "mgr-03", Name: "Olympique Virtuel"},
		"mgr-04": {ID: "mgr-04", Name: "AC Pixel"},
		"mgr-05": {ID: "mgr-05", Name: "Dream United"},
	}
}

func SeedMatches() []match.Block {
	return []match.Block{
		{
			Championship: championship.IDFrance,
			Season:       1,
			Matchday:     1,
			Games: []match.RawGame{
				{"homeTeam": "Les Invincibles", "awayTeam": "Real Fantasy", "homeScore": 2, "awayScore": 1},
				{"homeTeam": "Olympique Virtuel", "awayTeam": "AC Pixel", "homeScore": 0, "awayScore": 0},
			},
		},
		{
			Championship: championship.IDFrance,
			Season:       1,
			Matchday:     2,
			Games: []match.RawGame{
				{"homeTeam": "Real Fantasy", "awayTeam": "Olympique Virtuel", "homeScore": 3, "awayScore": 2},
				{"homeTeam": "AC Pixel", "awayTeam": "Dream United", "homeScore": 1, "awayScore": 4},
			},
		},
		{
			Championship: championship.IDSpain,
			Season:       1,
			Matchday:     1,
			Games: []match.RawGame{
				// Older records use the legacy field aliases.
				{"equipe1": "Dream United", "equipe2": "Les Invincibles", "scoreHome": 1, "scoreAway": 1},
				{"equipe1": "AC Pixel", "equipe2": "Real Fantasy", "scoreHome": 0, "scoreAway": 2},
			},
		},
	}
}
