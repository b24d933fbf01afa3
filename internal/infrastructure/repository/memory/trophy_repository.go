package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/matthieuv/superligue/internal/domain/trophy"
)

type TrophyRepository struct {
	mu        sync.RWMutex
	champions map[string]trophy.Champion
}

func NewTrophyRepository() *TrophyRepository {
	return &TrophyRepository{champions: make(map[string]trophy.Champion)}
}

func (r *TrophyRepository) ListChampions(_ context.Context) ([]trophy.Champion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]trophy.Champion, 0, len(r.champions))
	for _, item := range r.champions {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ChampionshipID != out[j].ChampionshipID {
			return out[i].ChampionshipID < out[j].ChampionshipID
		}
		return out[i].Season < out[j].Season
	})
	return out, nil
}

func (r *TrophyRepository) UpsertChampion(_ context.Context, item trophy.Champion) error {
	r.mu.Lock()
	r.champions[championKey(item)] = item
	r.mu.Unlock()
	return nil
}

func championKey(item trophy.Champion) string {
	return item.ChampionshipID + "|" + strconv.Itoa(item.Season)
}
