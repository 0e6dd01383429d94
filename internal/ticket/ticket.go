// Package ticket archives completed support requests. The archive is best
// effort: a save failure never blocks or rolls back the conversation.
package ticket

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Ticket is one submitted support request.
type Ticket struct {
	ID        uuid.UUID `db:"id"`
	UserID    int64     `db:"user_id"`
	Language  string    `db:"language"`
	Issue     string    `db:"issue"`
	Wallet    string    `db:"wallet"`
	CreatedAt time.Time `db:"created_at"`
}

// New builds a ticket with a fresh id and timestamp.
func New(userID int64, language, issue, wallet string) Ticket {
	return Ticket{
		ID:        uuid.New(),
		UserID:    userID,
		Language:  language,
		Issue:     issue,
		Wallet:    wallet,
		CreatedAt: time.Now().UTC(),
	}
}

// Archive persists submitted tickets.
type Archive interface {
	Save(ctx context.Context, t Ticket) error
}

// NopArchive discards tickets; used when no database is configured.
type NopArchive struct{}

func (NopArchive) Save(context.Context, Ticket) error { return nil }
