package postgres

import "time"

type championTableModel struct {
	ID             int64      `db:"id"`
	ChampionshipID string     `db:"championship_id"`
	Season         int        `db:"season"`
	Team           string     `db:"team"`
	Points         int        `db:"points"`
	RunnerUp       string     `db:"runner_up"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type championInsertModel struct {
	ChampionshipID string `db:"championship_id"`
	Season         int    `db:"season"`
	Team           string `db:"team"`
	Points         int    `db:"points"`
	RunnerUp       string `db:"runner_up"`
}
