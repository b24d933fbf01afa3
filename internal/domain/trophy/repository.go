package trophy

import "context"

// Repository persists derived champions. Writes are fire-and-forget from
// the engine's point of view: a failed push never fails a computation.
type Repository interface {
	ListChampions(ctx context.Context) ([]Champion, error)
	UpsertChampion(ctx context.Context, item Champion) error
}
