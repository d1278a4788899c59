package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users     map[string]time.Time
	turns     []core.Turn
	ensureErr error
	addErr    error
	recentErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]time.Time)}
}

func (f *fakeRepo) EnsureUser(_ context.Context, userID string, at time.Time) error {
	if f.ensureErr != nil {
		return f.ensureErr
	}
	if _, ok := f.users[userID]; !ok {
		f.users[userID] = at
	}
	return nil
}

func (f *fakeRepo) AddTurn(_ context.Context, turn core.Turn) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.turns = append(f.turns, turn)
	return nil
}

// RecentTurns returns newest first to prove Store reorders.
func (f *fakeRepo) RecentTurns(_ context.Context, userID string, limit int) ([]core.Turn, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	var out []core.Turn
	for i := len(f.turns) - 1; i >= 0 && len(out) < limit; i-- {
		if f.turns[i].UserID == userID {
			out = append(out, f.turns[i])
		}
	}
	return out, nil
}

func newTestStore(t *testing.T, repo *fakeRepo) *Store {
	t.Helper()

	s, err := New(repo)
	require.NoError(t, err)

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestNew_RequiresRepository(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestStore_IdentifyRegistersUserOnce(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo)
	ctx := context.Background()

	id := s.Identify(ctx, core.StaticIdentity("web_abc"))
	assert.Equal(t, "web_abc", id)
	first := repo.users["web_abc"]

	assert.Equal(t, "web_abc", s.Identify(ctx, core.StaticIdentity("web_abc")))
	assert.Equal(t, first, repo.users["web_abc"])
}

func TestStore_IdentifyFailures(t *testing.T) {
	s := newTestStore(t, newFakeRepo())
	ctx := context.Background()

	failing := core.IdentityFunc(func(context.Context) (string, error) {
		return "", errors.New("session store down")
	})

	assert.Empty(t, s.Identify(ctx, failing))
	assert.Empty(t, s.Identify(ctx, nil))
}

func TestStore_IdentifyToleratesRegistrationFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.ensureErr = errors.New("disk full")
	s := newTestStore(t, repo)

	assert.Equal(t, "web_abc", s.Identify(context.Background(), core.StaticIdentity("web_abc")))
}

func TestStore_AppendTurn(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo)

	ok := s.AppendTurn(context.Background(), "web_abc", core.SenderUser, "Olá", "")
	require.True(t, ok)
	require.Len(t, repo.turns, 1)
	assert.Equal(t, core.PlatformWeb, repo.turns[0].Platform)
	assert.False(t, repo.turns[0].CreatedAt.IsZero())
}

func TestStore_AppendTurnFailureIsReported(t *testing.T) {
	repo := newFakeRepo()
	repo.addErr = errors.New("database is locked")
	s := newTestStore(t, repo)

	assert.False(t, s.AppendTurn(context.Background(), "web_abc", core.SenderBot, "Resposta", core.PlatformWhatsApp))
}

func TestStore_RecentHistoryOldestFirst(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo)
	ctx := context.Background()

	for _, msg := range []string{"T1", "T2", "T3"} {
		require.True(t, s.AppendTurn(ctx, "web_abc", core.SenderUser, msg, core.PlatformWeb))
	}

	turns := s.RecentHistory(ctx, "web_abc", 10)
	require.Len(t, turns, 3)
	assert.Equal(t, []string{"T1", "T2", "T3"}, []string{turns[0].Message, turns[1].Message, turns[2].Message})
}

func TestStore_RecentHistoryLimit(t *testing.T) {
	repo := newFakeRepo()
	s := newTestStore(t, repo)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		s.AppendTurn(ctx, "web_abc", core.SenderUser, string(rune('a'+i)), core.PlatformWeb)
	}

	turns := s.RecentHistory(ctx, "web_abc", 0)
	require.Len(t, turns, DefaultLimit)
	assert.Equal(t, "c", turns[0].Message)
	assert.Equal(t, "l", turns[9].Message)
}

func TestStore_RecentHistoryFailureIsEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.recentErr = errors.New("no such table")
	s := newTestStore(t, repo)

	turns := s.RecentHistory(context.Background(), "web_abc", 10)
	assert.NotNil(t, turns)
	assert.Empty(t, turns)
}
