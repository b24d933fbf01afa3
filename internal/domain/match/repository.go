package match

import "context"

// Repository exposes the persisted match-block set.
type Repository interface {
	ListBlocks(ctx context.Context) ([]Block, error)
	UpsertBlock(ctx context.Context, block Block) error
}
