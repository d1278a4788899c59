package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/pkg/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userModel struct {
	UserID       string    `gorm:"primaryKey;size:128"`
	FirstContact time.Time `gorm:"not null"`
	LastContact  time.Time `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type turnModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"size:128;not null;index:idx_conversation_turns_user_created,priority:1"`
	Sender    string    `gorm:"size:8;not null"`
	Message   string    `gorm:"type:text;not null"`
	Platform  string    `gorm:"size:16;not null;default:web"`
	CreatedAt time.Time `gorm:"not null;index:idx_conversation_turns_user_created,priority:2"`
}

func (turnModel) TableName() string { return "conversation_turns" }

type ConversationsRepo struct {
	db *gorm.DB
}

func NewConversationsRepo(db *gorm.DB) *ConversationsRepo {
	return &ConversationsRepo{db: db}
}

func (r *ConversationsRepo) EnsureUser(ctx context.Context, userID string, at time.Time) error {
	at = at.UTC()
	u := userModel{UserID: userID, FirstContact: at, LastContact: at}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&u).Error
	if err != nil {
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

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := turnModel{
			UserID:    turn.UserID,
			Sender:    string(turn.Sender),
			Message:   turn.Message,
			Platform:  string(turn.Platform),
			CreatedAt: at,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert turn: %w", err)
		}

		u := userModel{UserID: turn.UserID, FirstContact: at, LastContact: at}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_contact"}),
		}).Create(&u).Error
		if err != nil {
			return fmt.Errorf("failed to touch user: %w", err)
		}
		return nil
	})
}

func (r *ConversationsRepo) RecentTurns(ctx context.Context, userID string, limit int) ([]core.Turn, error) {
	var rows []turnModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}

	turns := make([]core.Turn, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		turns = append(turns, core.Turn{
			UserID:    rows[i].UserID,
			Sender:    core.Sender(rows[i].Sender),
			Message:   rows[i].Message,
			Platform:  core.Platform(rows[i].Platform),
			CreatedAt: rows[i].CreatedAt,
		})
	}

	log.FromCtx(ctx).Debug().Str("user_id", userID).Int("count", len(turns)).Msg("loaded conversation turns")
	return turns, nil
}
