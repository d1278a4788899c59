package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/service/history"
	"github.com/sandevgo/advogado/internal/service/intent"
	"github.com/sandevgo/advogado/pkg/conv"
	"github.com/sandevgo/advogado/pkg/log"
)

type Cache interface {
	Lookup(key string) (string, bool)
	Insert(key, answer string) bool
}

type Classifier interface {
	Classify(question string) intent.Result
}

type History interface {
	Identify(ctx context.Context, identity core.Identity) string
	AppendTurn(ctx context.Context, userID string, sender core.Sender, message string, platform core.Platform) bool
	RecentHistory(ctx context.Context, userID string, limit int) []core.Turn
}

type Deps struct {
	Cache      Cache
	Classifier Classifier
	History    History
	LLM        core.LLM
	// Search is optional; without it web-augmented questions get the
	// "no web results" instruction.
	Search       core.Searcher
	HistoryLimit int
}

type Request struct {
	Question string
	Identity core.Identity
	Platform core.Platform
}

type Result struct {
	Answer        string `json:"answer"`
	UsedAPI       bool   `json:"used_api"`
	WebSearchUsed bool   `json:"web_search_used"`
}

type Resolver struct {
	cache        Cache
	classifier   Classifier
	history      History
	llm          core.LLM
	search       core.Searcher
	historyLimit int
}

func New(d Deps) (*Resolver, error) {
	if d.Cache == nil {
		return nil, errors.New("resolver: cache must not be nil")
	}
	if d.Classifier == nil {
		return nil, errors.New("resolver: classifier must not be nil")
	}
	if d.History == nil {
		return nil, errors.New("resolver: history must not be nil")
	}
	if d.LLM == nil {
		return nil, errors.New("resolver: llm must not be nil")
	}
	if d.HistoryLimit <= 0 {
		d.HistoryLimit = history.DefaultLimit
	}

	return &Resolver{
		cache:        d.Cache,
		classifier:   d.Classifier,
		history:      d.History,
		llm:          d.LLM,
		search:       d.Search,
		historyLimit: d.HistoryLimit,
	}, nil
}

// Resolve answers one question. It never fails: every problem becomes a
// Portuguese message with UsedAPI=false.
func (r *Resolver) Resolve(ctx context.Context, req Request) (res Result) {
	logger := log.FromCtx(ctx).With().Str("component", "resolver").Str("platform", string(req.Platform)).Logger()

	defer func() {
		if p := recover(); p != nil {
			logger.Error().Interface("panic", p).Msg("resolution panicked")
			res = Result{Answer: msgGeneric}
		}
	}()

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Result{Answer: msgEmptyQuestion}
	}
	if req.Platform == "" {
		req.Platform = core.PlatformWeb
	}

	key := conv.Normalize(question)
	if key != "" {
		if cached, ok := r.cache.Lookup(key); ok {
			logger.Debug().Str("key", key).Msg("answer served from cache")
			return newResult(cached, true)
		}
	}

	cls := r.classifier.Classify(question)
	logger.Debug().Str("intent", cls.Kind.String()).Str("matched", cls.Matched).Msg("question classified")

	userID := r.history.Identify(ctx, req.Identity)

	if cls.Kind == intent.KindMeta {
		r.persist(ctx, userID, core.SenderUser, question, req.Platform)
		r.persist(ctx, userID, core.SenderBot, cls.FixedAnswer, req.Platform)
		r.remember(key, cls.FixedAnswer)
		return newResult(cls.FixedAnswer, true)
	}

	var turns []core.Turn
	if userID != "" {
		turns = r.history.RecentHistory(ctx, userID, r.historyLimit)
	}

	var web *core.WebContext
	if cls.Kind == intent.KindWebAugmented {
		web = r.webContext(ctx, question)
	}

	completion := r.llm.Query(ctx, question, turns, web)

	r.persist(ctx, userID, core.SenderUser, question, req.Platform)

	if !completion.OK() {
		logger.Warn().Err(completion.Err).Str("kind", completion.Kind.String()).Msg("llm query failed")
		return newResult(FailureMessage(completion.Kind), false)
	}

	r.persist(ctx, userID, core.SenderBot, completion.Text, req.Platform)
	r.remember(key, completion.Text)

	return newResult(completion.Text, true)
}

func (r *Resolver) webContext(ctx context.Context, question string) *core.WebContext {
	if r.search != nil {
		if content, ok := r.search.Search(ctx, question); ok {
			return &core.WebContext{Content: content, Mandatory: true}
		}
	}
	return &core.WebContext{Mandatory: true, NoResults: true}
}

func (r *Resolver) persist(ctx context.Context, userID string, sender core.Sender, message string, platform core.Platform) {
	if userID == "" {
		return
	}
	r.history.AppendTurn(ctx, userID, sender, message, platform)
}

func (r *Resolver) remember(key, answer string) {
	if key == "" {
		return
	}
	r.cache.Insert(key, answer)
}

func newResult(answer string, usedAPI bool) Result {
	return Result{
		Answer:        answer,
		UsedAPI:       usedAPI,
		WebSearchUsed: WebSearchUsed(answer),
	}
}

// WebSearchUsed reports whether an answer carries web-search markers.
func WebSearchUsed(answer string) bool {
	return strings.Contains(answer, "[Pesquisa Web]") || strings.Contains(answer, "Fonte:")
}
