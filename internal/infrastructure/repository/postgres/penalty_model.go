package postgres

import "time"

type penaltyTableModel struct {
	ID             int64      `db:"id"`
	ChampionshipID string     `db:"championship_id"`
	Season         int        `db:"season"`
	Team           string     `db:"team"`
	Points         int        `db:"points"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type penaltyInsertModel struct {
	ChampionshipID string `db:"championship_id"`
	Season         int    `db:"season"`
	Team           string `db:"team"`
	Points         int    `db:"points"`
}
