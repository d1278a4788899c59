package core

// FailureKind tags how an LLM query ended.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureConfigurationMissing
	FailureTransientNetwork
	FailureTimeout
	FailureProviderOverloaded
	FailureProviderError
	FailureEmptyCompletion
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureConfigurationMissing:
		return "configuration_missing"
	case FailureTransientNetwork:
		return "transient_network"
	case FailureTimeout:
		return "timeout"
	case FailureProviderOverloaded:
		return "provider_overloaded"
	case FailureProviderError:
		return "provider_error"
	case FailureEmptyCompletion:
		return "empty_completion"
	default:
		return "unknown"
	}
}

// Completion is the tagged result of an LLM query. Text is set only when Kind
// is FailureNone; Err carries the underlying cause for logging.
type Completion struct {
	Text string
	Kind FailureKind
	Err  error
}

func (c Completion) OK() bool {
	return c.Kind == FailureNone
}

func Failed(kind FailureKind, err error) Completion {
	return Completion{Kind: kind, Err: err}
}
