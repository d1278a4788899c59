package core

import (
	"context"
	"time"
)

type ConversationRepository interface {
	// EnsureUser records a user the first time it is seen; later calls are no-ops.
	EnsureUser(ctx context.Context, userID string, at time.Time) error
	// AddTurn stores the turn and bumps the user's last contact.
	AddTurn(ctx context.Context, turn Turn) error
	// RecentTurns returns up to limit of the newest turns, oldest first.
	RecentTurns(ctx context.Context, userID string, limit int) ([]Turn, error)
}
