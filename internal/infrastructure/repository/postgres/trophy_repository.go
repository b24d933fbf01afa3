package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/matthieuv/superligue/internal/domain/trophy"
	qb "github.com/matthieuv/superligue/internal/platform/querybuilder"
)

type TrophyRepository struct {
	db *sqlx.DB
}

func NewTrophyRepository(db *sqlx.DB) *TrophyRepository {
	return &TrophyRepository{db: db}
}

func (r *TrophyRepository) ListChampions(ctx context.Context) ([]trophy.Champion, error) {
	query, args, err := qb.Select("*").From("champions").
		Where(qb.IsNull("deleted_at")).
		OrderBy("championship_id", "season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list champions query: %w", err)
	}

	var rows []championTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list champions: %w", err)
	}

	out := make([]trophy.Champion, 0, len(rows))
	for _, row := range rows {
		out = append(out, trophy.Champion{
			ChampionshipID: row.ChampionshipID,
			Season:         row.Season,
			Team:           row.Team,
			Points:         row.Points,
			RunnerUp:       row.RunnerUp,
		})
	}
	return out, nil
}

func (r *TrophyRepository) UpsertChampion(ctx context.Context, item trophy.Champion) error {
	insertModel := championInsertModel{
		ChampionshipID: item.ChampionshipID,
		Season:         item.Season,
		Team:           item.Team,
		Points:         item.Points,
		RunnerUp:       item.RunnerUp,
	}
	query, args, err := qb.InsertModel("champions", insertModel, `ON CONFLICT (championship_id, season) WHERE deleted_at IS NULL
DO UPDATE SET
    team = EXCLUDED.team,
    points = EXCLUDED.points,
    runner_up = EXCLUDED.runner_up,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert champion query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert champion %s s%d: %w", item.ChampionshipID, item.Season, err)
	}
	return nil
}
