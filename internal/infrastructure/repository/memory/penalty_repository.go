package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/matthieuv/superligue/internal/domain/penalty"
)

type PenaltyRepository struct {
	mu     sync.RWMutex
	points map[string]int
}

func NewPenaltyRepository(initial map[string]int) *PenaltyRepository {
	points := make(map[string]int, len(initial))
	for key, value := range initial {
		points[key] = value
	}
	return &PenaltyRepository{points: points}
}

func (r *PenaltyRepository) Map(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int, len(r.points))
	for key, value := range r.points {
		out[key] = value
	}
	return out, nil
}

func (r *PenaltyRepository) Upsert(_ context.Context, item penalty.Penalty) error {
	r.mu.Lock()
	r.points[penalty.Key(item.ChampionshipID, item.Season, item.Team)] = item.Points
	r.mu.Unlock()
	return nil
}

// RenameTeam rekeys deductions; the team name is the final key segment.
func (r *PenaltyRepository) RenameTeam(_ context.Context, oldName, newName string) error {
	if oldName == "" || oldName == newName {
		return nil
	}

	oldSuffix := "_" + oldName
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, value := range r.points {
		if !strings.HasSuffix(key, oldSuffix) {
			continue
		}
		delete(r.points, key)
		r.points[strings.TrimSuffix(key, oldSuffix)+"_"+newName] = value
	}
	return nil
}
