package history

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/pkg/log"
)

const DefaultLimit = 10

// Store wraps a repository so that storage problems never reach the caller:
// writes report a bool and reads degrade to an empty history.
type Store struct {
	repo core.ConversationRepository
	now  func() time.Time
}

func New(repo core.ConversationRepository) (*Store, error) {
	if repo == nil {
		return nil, errors.New("history: repository must not be nil")
	}
	return &Store{repo: repo, now: time.Now}, nil
}

// Identify resolves the caller's user id and records first contact for new ids.
// It returns "" when the id cannot be resolved.
func (s *Store) Identify(ctx context.Context, identity core.Identity) string {
	logger := log.FromCtx(ctx)

	if identity == nil {
		return ""
	}

	userID, err := identity.UserID(ctx)
	if err != nil || userID == "" {
		logger.Warn().Err(err).Msg("failed to resolve user identity")
		return ""
	}

	if err := s.repo.EnsureUser(ctx, userID, s.now()); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("failed to register user")
	}

	return userID
}

func (s *Store) AppendTurn(ctx context.Context, userID string, sender core.Sender, message string, platform core.Platform) bool {
	if platform == "" {
		platform = core.PlatformWeb
	}

	err := s.repo.AddTurn(ctx, core.Turn{
		UserID:    userID,
		Sender:    sender,
		Message:   message,
		Platform:  platform,
		CreatedAt: s.now(),
	})
	if err != nil {
		log.FromCtx(ctx).Error().
			Err(err).
			Str("user_id", userID).
			Str("sender", string(sender)).
			Msg("failed to save conversation turn")
		return false
	}

	return true
}

// RecentHistory returns at most limit of the latest turns, oldest first.
func (s *Store) RecentHistory(ctx context.Context, userID string, limit int) []core.Turn {
	if limit <= 0 {
		limit = DefaultLimit
	}

	turns, err := s.repo.RecentTurns(ctx, userID, limit)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("user_id", userID).Msg("failed to load conversation history")
		return []core.Turn{}
	}

	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	// Repositories already sort, but the contract must not depend on it
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].CreatedAt.Before(turns[j].CreatedAt)
	})

	return turns
}
