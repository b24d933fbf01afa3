package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/matthieuv/superligue/internal/domain/match"
	qb "github.com/matthieuv/superligue/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListBlocks(ctx context.Context) ([]match.Block, error) {
	query, args, err := qb.Select("*").From("match_blocks").
		Where(qb.IsNull("deleted_at")).
		OrderBy("championship", "season", "matchday", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match blocks query: %w", err)
	}

	var rows []matchBlockTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match blocks: %w", err)
	}

	out := make([]match.Block, 0, len(rows))
	for _, row := range rows {
		block, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode match block id=%d: %w", row.ID, err)
		}
		out = append(out, block)
	}
	return out, nil
}

func (r *MatchRepository) UpsertBlock(ctx context.Context, block match.Block) error {
	games, err := sonic.Marshal(block.Games)
	if err != nil {
		return fmt.Errorf("encode match block games: %w", err)
	}

	insertModel := matchBlockInsertModel{
		Championship: strings.ToLower(strings.TrimSpace(block.Championship)),
		Season:       block.Season,
		Matchday:     block.Matchday,
		Games:        games,
	}
	query, args, err := qb.InsertModel("match_blocks", insertModel, `ON CONFLICT (championship, season, matchday) WHERE deleted_at IS NULL
DO UPDATE SET
    games = EXCLUDED.games,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert match block query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match block %s s%d md%d: %w", block.Championship, block.Season, block.Matchday, err)
	}
	return nil
}
