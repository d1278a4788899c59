package main

import (
	"context"
	"testing"

	"github.com/sandevgo/advogado/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIIdentity(t *testing.T) {
	orig := newUUID
	t.Cleanup(func() { newUUID = orig })
	newUUID = func() string { return "fixed" }

	id, err := cliIdentity("  maria ").UserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cli_maria", id)

	id, err = cliIdentity("").UserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cli_fixed", id)
}

func TestInitStorage_SQLite(t *testing.T) {
	cfg := &config.AppConfig{RuntimePath: t.TempDir(), StorageDriver: config.StorageSQLite}

	repo, closeDB, err := initStorage(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeDB() })

	assert.NotNil(t, repo)
	assert.FileExists(t, cfg.GetDatabasePath())
}

func TestInitStorage_Errors(t *testing.T) {
	_, _, err := initStorage(context.Background(), &config.AppConfig{StorageDriver: config.StoragePostgres})
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, _, err = initStorage(context.Background(), &config.AppConfig{StorageDriver: "mongo"})
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestInitGemini(t *testing.T) {
	g, err := initGemini(&config.GeminiConfig{
		Model:          "gemini-1.5-pro-latest",
		BaseURL:        "http://localhost",
		MaxAttempts:    5,
		InitialBackoff: 0,
	})
	require.NoError(t, err)
	assert.NotNil(t, g)
}
