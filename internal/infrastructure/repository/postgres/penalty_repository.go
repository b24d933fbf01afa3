package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/matthieuv/superligue/internal/domain/penalty"
	qb "github.com/matthieuv/superligue/internal/platform/querybuilder"
)

type PenaltyRepository struct {
	db *sqlx.DB
}

func NewPenaltyRepository(db *sqlx.DB) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

func (r *PenaltyRepository) Map(ctx context.Context) (map[string]int, error) {
	query, args, err := qb.Select("*").From("penalties").
		Where(qb.IsNull("deleted_at")).
		OrderBy("championship_id", "season", "team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list penalties query: %w", err)
	}

	var rows []penaltyTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list penalties: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[penalty.Key(row.ChampionshipID, row.Season, row.Team)] = row.Points
	}
	return out, nil
}

func (r *PenaltyRepository) Upsert(ctx context.Context, item penalty.Penalty) error {
	insertModel := penaltyInsertModel{
		ChampionshipID: item.ChampionshipID,
		Season:         item.Season,
		Team:           item.Team,
		Points:         item.Points,
	}
	query, args, err := qb.InsertModel("penalties", insertModel, `ON CONFLICT (championship_id, season, team) WHERE deleted_at IS NULL
DO UPDATE SET
    points = EXCLUDED.points,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert penalty query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert penalty %s s%d team=%s: %w", item.ChampionshipID, item.Season, item.Team, err)
	}
	return nil
}

func (r *PenaltyRepository) RenameTeam(ctx context.Context, oldName, newName string) error {
	query, args, err := qb.Update("penalties").
		Set("team", newName).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("team", oldName), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build rename penalty team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("rename penalty team %s: %w", oldName, err)
	}
	return nil
}
