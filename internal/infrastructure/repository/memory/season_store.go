package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/matthieuv/superligue/internal/domain/match"
	"github.com/matthieuv/superligue/internal/domain/season"
)

// SeasonStore holds the authoritative snapshot. Reads hand out deep copies,
// so callers can never mutate shared state.
type SeasonStore struct {
	mu       sync.RWMutex
	snapshot season.Snapshot
}

func NewSeasonStore(initial season.Snapshot) *SeasonStore {
	if initial.Managers == nil {
		initial.Managers = make(map[string]season.Manager)
	}
	if initial.Seasons == nil {
		initial.Seasons = make(map[string]season.Entry)
	}
	return &SeasonStore{snapshot: initial.Clone()}
}

func (s *SeasonStore) Snapshot(_ context.Context) (season.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Clone(), nil
}

func (s *SeasonStore) Replace(_ context.Context, snapshot season.Snapshot) error {
	clone := snapshot.Clone()

	s.mu.Lock()
	s.snapshot = clone
	s.mu.Unlock()

	return nil
}

// UpsertBlock merges one match block, last write wins on the lowercased
// (championship, season, matchday) identity.
func (s *SeasonStore) UpsertBlock(_ context.Context, block match.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	incoming := blockIdentity(block)
	for idx := range s.snapshot.Matches {
		if blockIdentity(s.snapshot.Matches[idx]) == incoming {
			s.snapshot.Matches[idx] = cloneBlock(block)
			return nil
		}
	}
	s.snapshot.Matches = append(s.snapshot.Matches, cloneBlock(block))
	return nil
}

// RenameManager updates the roster entry and rewrites the old display name
// in match records and standings rows in the same locked pass.
func (s *SeasonStore) RenameManager(_ context.Context, managerID, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	manager, ok := s.snapshot.Managers[managerID]
	if !ok {
		return season.ErrManagerNotFound
	}

	oldName := manager.Name
	manager.Name = newName
	s.snapshot.Managers[managerID] = manager
	if oldName == "" || oldName == newName {
		return nil
	}

	for _, block := range s.snapshot.Matches {
		for _, game := range block.Games {
			renameInGame(game, oldName, newName)
		}
	}
	for key, entry := range s.snapshot.Seasons {
		for idx := range entry.Standings {
			if entry.Standings[idx].Name == oldName {
				entry.Standings[idx].Name = newName
			}
		}
		if entry.ExemptTeam == oldName {
			entry.ExemptTeam = newName
			s.snapshot.Seasons[key] = entry
		}
	}
	return nil
}

func blockIdentity(block match.Block) string {
	return fmt.Sprintf("%s|%d|%d", strings.ToLower(block.Championship), block.Season, block.Matchday)
}

func cloneBlock(block match.Block) match.Block {
	games := make([]match.RawGame, 0, len(block.Games))
	for _, game := range block.Games {
		copied := make(match.RawGame, len(game))
		for field, value := range game {
			copied[field] = value
		}
		games = append(games, copied)
	}
	block.Games = games
	return block
}

// renameInGame touches every alias field carrying the old name, so legacy
// records keep their original field spelling.
func renameInGame(game match.RawGame, oldName, newName string) {
	for field, value := range game {
		text, ok := value.(string)
		if !ok {
			continue
		}
		if strings.TrimSpace(text) == oldName {
			game[field] = newName
		}
	}
}
