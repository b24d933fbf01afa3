package season

import (
	"fmt"

	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/standings"
)

// Manager is one league participant. The stable id survives renames; the
// display name is what match records and standings carry, so a rename is a
// single store operation that rewrites the name in one pass.
type Manager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Entry is the derived state of one championship season.
type Entry struct {
	Season    int             `json:"season"`
	Standings []standings.Row `json:"standings"`
	// PlayedMatchdays counts distinct matchday numbers with at least one
	// recorded block. With an odd roster one team sits out each round, so
	// a team's played count can be lower than this.
	PlayedMatchdays int    `json:"playedMatchdays"`
	ExemptTeam      string `json:"exemptTeam,omitempty"`
}

// Snapshot is the authoritative dataset handed to the engine. The engine
// never holds a reference across calls; callers serialize writes
// themselves.
type Snapshot struct {
	Managers map[string]Manager `json:"managers"`
	Seasons  map[string]Entry   `json:"seasons"`
	Matches  []match.Block      `json:"matches"`
}

// Key builds the season map key for a championship snapshot key.
func Key(championshipKey string, seasonNumber int) string {
	return fmt.Sprintf("%s_s%d", championshipKey, seasonNumber)
}

// TeamNames lists every manager display name in the snapshot roster.
func (s Snapshot) TeamNames() []string {
	names := make([]string, 0, len(s.Managers))
	for _, manager := range s.Managers {
		if manager.Name != "" {
			names = append(names, manager.Name)
		}
	}
	return names
}

// Clone deep-copies the snapshot so engine calls never share mutable state
// with the store.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Managers: make(map[string]Manager, len(s.Managers)),
		Seasons:  make(map[string]Entry, len(s.Seasons)),
		Matches:  make([]match.Block, 0, len(s.Matches)),
	}
	for id, manager := range s.Managers {
		out.Managers[id] = manager
	}
	for key, entry := range s.Seasons {
		rows := make([]standings.Row, len(entry.Standings))
		copy(rows, entry.Standings)
		entry.Standings = rows
		out.Seasons[key] = entry
	}
	for _, block := range s.Matches {
		games := make([]match.RawGame, 0, len(block.Games))
		for _, game := range block.Games {
			copied := make(match.RawGame, len(game))
			for field, value := range game {
				copied[field] = value
			}
			games = append(games, copied)
		}
		block.Games = games
		out.Matches = append(out.Matches, block)
	}
	return out
}
