package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/advogado/internal/config"
	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/providers/llm"
	"github.com/sandevgo/advogado/internal/providers/search"
	"github.com/sandevgo/advogado/internal/service/cache"
	"github.com/sandevgo/advogado/internal/service/command"
	"github.com/sandevgo/advogado/internal/service/history"
	"github.com/sandevgo/advogado/internal/service/intent"
	"github.com/sandevgo/advogado/internal/service/resolver"
	"github.com/sandevgo/advogado/internal/storage/postgres"
	"github.com/sandevgo/advogado/internal/storage/sqlite"
	"github.com/sandevgo/advogado/internal/transport/telegram"
	"github.com/sandevgo/advogado/internal/transport/web"
	"github.com/sandevgo/advogado/pkg/log"
	"github.com/sandevgo/advogado/pkg/retry"
	"github.com/sandevgo/advogado/pkg/srv"
)

// Pipeline is everything a transport needs to answer users.
type Pipeline struct {
	Resolver *resolver.Resolver
	Commands *command.Router
	// Cleanups only release resources and must be shut down by the caller.
	Cleanups []srv.Service
}

// NewPipeline wires storage, Gemini and web search into the resolver.
func NewPipeline(ctx context.Context, appCfg *config.AppConfig) *Pipeline {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// 1. Storage
	repo, closeDB, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", appCfg.StorageDriver).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(closeDB))

	store, err := history.New(repo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize history store")
	}

	// 2. LLM
	geminiCfg := config.NewGeminiConfig(ctx, appCfg.GetRuntimePath())
	gemini, err := initGemini(geminiCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}
	if _, ok := geminiCfg.ReadAPIKey(); !ok {
		logger.Warn().Str("key_file", geminiCfg.KeyFile).Msg("Gemini API key not configured, answers will report the missing key")
	}

	// 3. Web search
	var searcher core.Searcher
	searchCfg := config.NewSearchConfig(ctx)
	if searchCfg.Enabled {
		searcher = search.NewClient(
			search.WithBaseURL(searchCfg.BaseURL),
			search.WithMaxResults(searchCfg.MaxResults),
			search.WithTimeout(searchCfg.Timeout),
		)
	}

	// 4. Resolver
	res, err := resolver.New(resolver.Deps{
		Cache:        cache.New(appCfg.CacheMaxEntries),
		Classifier:   intent.NewDefault(),
		History:      store,
		LLM:          gemini,
		Search:       searcher,
		HistoryLimit: appCfg.HistoryLimit,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize resolver")
	}

	return &Pipeline{
		Resolver: res,
		Commands: command.NewRouter(store),
		Cleanups: services,
	}
}

// NewServices builds everything the start command runs.
func NewServices(ctx context.Context, appCfg *config.AppConfig) []srv.Service {
	logger := log.FromCtx(ctx)

	p := NewPipeline(ctx, appCfg)

	transports, err := initTransports(ctx, appCfg, p)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(transports) == 0 {
		logger.Fatal().Msg("no transport enabled, set ENABLE_HTTP or ENABLE_TELEGRAM")
	}

	return append(p.Cleanups, transports...)
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (core.ConversationRepository, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite, "":
		if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create runtime directory: %w", err)
		}
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewConversationsRepo(db), db.Close, nil

	case config.StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for the %s driver", cfg.StorageDriver)
		}
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewConversationsRepo(db), sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func initGemini(cfg *config.GeminiConfig) (*llm.Gemini, error) {
	policy := retry.NewDefaultPolicy()
	if cfg.MaxAttempts > 0 {
		policy.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.InitialBackoff > 0 {
		policy.InitialDelay = cfg.InitialBackoff
	}

	return llm.NewGemini(cfg.ReadAPIKey,
		llm.WithBaseURL(cfg.BaseURL),
		llm.WithModel(cfg.Model),
		llm.WithTimeout(cfg.Timeout),
		llm.WithRetryPolicy(*policy),
	)
}

func initTransports(ctx context.Context, cfg *config.AppConfig, p *Pipeline) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableHTTP {
		server, err := web.NewServer(ctx, p.Resolver, cfg.HTTPAddr, config.NewWhatsAppConfig(ctx))
		if err != nil {
			return nil, err
		}
		services = append(services, server)
	}

	if cfg.EnableTelegram {
		bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), p.Resolver, p.Commands)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

// loadConfig reads <runtime>/.env and then the app config built on top of it.
func loadConfig(ctx context.Context) *config.AppConfig {
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to init env")
	}
	return config.NewAppConfig(ctx)
}
