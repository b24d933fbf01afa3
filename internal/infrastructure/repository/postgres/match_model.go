package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/matthieuv/superligue/internal/domain/match"
)

type matchBlockTableModel struct {
	ID           int64      `db:"id"`
	Championship string     `db:"championship"`
	Season       int        `db:"season"`
	Matchday     int        `db:"matchday"`
	Games        []byte     `db:"games"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type matchBlockInsertModel struct {
	Championship string `db:"championship"`
	Season       int    `db:"season"`
	Matchday     int    `db:"matchday"`
	Games        []byte `db:"games"`
}

func (m matchBlockTableModel) toDomain() (match.Block, error) {
	block := match.Block{
		Championship: m.Championship,
		Season:       m.Season,
		Matchday:     m.Matchday,
	}
	if len(m.Games) > 0 {
		if err := sonic.Unmarshal(m.Games, &block.Games); err != nil {
			return match.Block{}, err
		}
	}
	return block, nil
}
