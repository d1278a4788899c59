//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/service/history"
	"github.com/sandevgo/advogado/internal/storage/postgres"
	"github.com/sandevgo/advogado/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresConversations(t *testing.T) {
	dsn := test.RequireEnv(t, "DATABASE_URL")
	ctx := context.Background()

	db, err := postgres.NewDB(ctx, dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := postgres.NewConversationsRepo(db)
	userID := "it_" + uuid.NewString()
	start := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.EnsureUser(ctx, userID, start))
	require.NoError(t, repo.EnsureUser(ctx, userID, start.Add(time.Hour)), "second EnsureUser must be a no-op")

	for i, msg := range []string{"um", "dois", "três"} {
		require.NoError(t, repo.AddTurn(ctx, core.Turn{
			UserID:    userID,
			Sender:    core.SenderUser,
			Message:   msg,
			Platform:  core.PlatformWeb,
			CreatedAt: start.Add(time.Duration(i) * time.Second),
		}))
	}

	turns, err := repo.RecentTurns(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "dois", turns[0].Message)
	assert.Equal(t, "três", turns[1].Message)

	store, err := history.New(repo)
	require.NoError(t, err)
	assert.Len(t, store.RecentHistory(ctx, userID, 10), 3)
}
