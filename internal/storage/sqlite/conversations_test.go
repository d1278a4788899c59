package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *ConversationsRepo {
	t.Helper()

	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "data", "advogado.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewConversationsRepo(db)
}

func TestConversationsRepo_EnsureUserIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.EnsureUser(ctx, "web_1", first))
	require.NoError(t, repo.EnsureUser(ctx, "web_1", first.Add(time.Hour)))

	u, err := repo.User(ctx, "web_1")
	require.NoError(t, err)
	assert.True(t, u.FirstContact.Equal(first))
	assert.True(t, u.LastContact.Equal(first))
}

func TestConversationsRepo_AddTurnTouchesLastContact(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(5 * time.Minute)

	require.NoError(t, repo.EnsureUser(ctx, "web_1", first))
	require.NoError(t, repo.AddTurn(ctx, core.Turn{
		UserID: "web_1", Sender: core.SenderUser, Message: "Olá", Platform: core.PlatformWeb, CreatedAt: later,
	}))

	u, err := repo.User(ctx, "web_1")
	require.NoError(t, err)
	assert.True(t, u.FirstContact.Equal(first))
	assert.True(t, u.LastContact.Equal(later))
}

func TestConversationsRepo_RecentTurnsOldestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, msg := range []string{"T1", "T2", "T3"} {
		require.NoError(t, repo.AddTurn(ctx, core.Turn{
			UserID: "web_1", Sender: core.SenderUser, Message: msg, CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	turns, err := repo.RecentTurns(ctx, "web_1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "T1", turns[0].Message)
	assert.Equal(t, "T2", turns[1].Message)
	assert.Equal(t, "T3", turns[2].Message)
	assert.Equal(t, core.PlatformWeb, turns[0].Platform)
}

func TestConversationsRepo_RecentTurnsKeepsNewest(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.AddTurn(ctx, core.Turn{
			UserID: "web_1", Sender: core.SenderBot, Message: string(rune('a' + i)), CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.AddTurn(ctx, core.Turn{UserID: "web_2", Sender: core.SenderUser, Message: "outro", CreatedAt: base}))

	turns, err := repo.RecentTurns(ctx, "web_1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 10)
	assert.Equal(t, "f", turns[0].Message)
	assert.Equal(t, "o", turns[9].Message)
}

func TestConversationsRepo_UnknownUser(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.User(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	turns, err := repo.RecentTurns(context.Background(), "nope", 10)
	require.NoError(t, err)
	assert.Empty(t, turns)
}
