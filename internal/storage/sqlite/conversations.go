package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/pkg/log"
)

type ConversationsRepo struct {
	db *sql.DB
}

func NewConversationsRepo(db *sql.DB) *ConversationsRepo {
	return &ConversationsRepo{db: db}
}

func (r *ConversationsRepo) EnsureUser(ctx context.Context, userID string, at time.Time) error {
	at = at.UTC()
	query := `INSERT OR IGNORE INTO users (user_id, first_contact, last_contact) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, at, at); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *ConversationsRepo) AddTurn(ctx context.Context, turn core.Turn) error {
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}
	if turn.Platform == "" {
		turn.Platform = core.PlatformWeb
	}
	at := turn.CreatedAt.UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO conversation_turns (user_id, sender, message, platform, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, turn.UserID, string(turn.Sender), turn.Message, string(turn.Platform), at); err != nil {
		return fmt.Errorf("failed to insert turn: %w", err)
	}

	// A turn may arrive for a user minted on another node; create it on the fly
	upsert := `INSERT INTO users (user_id, first_contact, last_contact) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET last_contact = excluded.last_contact`
	if _, err := tx.ExecContext(ctx, upsert, turn.UserID, at, at); err != nil {
		return fmt.Errorf("failed to touch user: %w", err)
	}

	return tx.Commit()
}

func (r *ConversationsRepo) RecentTurns(ctx context.Context, userID string, limit int) ([]core.Turn, error) {
	query := `SELECT user_id, sender, message, platform, created_at FROM conversation_turns
		WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []core.Turn
	for rows.Next() {
		var (
			t                core.Turn
			sender, platform string
		)
		if err := rows.Scan(&t.UserID, &sender, &t.Message, &platform, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		t.Sender = core.Sender(sender)
		t.Platform = core.Platform(platform)
		turns = append(turns, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest first from the query, oldest first for the caller
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	log.FromCtx(ctx).Debug().Str("user_id", userID).Int("count", len(turns)).Msg("loaded conversation turns")
	return turns, nil
}

// User returns the stored record, or sql.ErrNoRows.
func (r *ConversationsRepo) User(ctx context.Context, userID string) (core.UserRecord, error) {
	var u core.UserRecord
	query := `SELECT user_id, first_contact, last_contact FROM users WHERE user_id = ?`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&u.UserID, &u.FirstContact, &u.LastContact)
	if err != nil {
		return core.UserRecord{}, err
	}
	return u, nil
}
