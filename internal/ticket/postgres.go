package ticket

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLArchive stores tickets in Postgres.
type SQLArchive struct {
	db *sqlx.DB
}

// NewSQLArchive wraps an open database handle.
func NewSQLArchive(db *sqlx.DB) *SQLArchive {
	return &SQLArchive{db: db}
}

func (a *SQLArchive) Save(ctx context.Context, t Ticket) error {
	const q = `
		INSERT INTO tickets (id, user_id, language, issue, wallet, created_at)
		VALUES (:id, :user_id, :language, :issue, :wallet, :created_at)`
	if _, err := a.db.NamedExecContext(ctx, q, t); err != nil {
		return fmt.Errorf("save ticket: %w", err)
	}
	return nil
}
