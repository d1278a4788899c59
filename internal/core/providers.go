package core

import "context"

type LLM interface {
	Query(ctx context.Context, question string, history []Turn, web *WebContext) Completion
}

// Searcher returns formatted web results for a question, or false when there is
// nothing usable. Failures are never reported to the caller.
type Searcher interface {
	Search(ctx context.Context, question string) (string, bool)
}
