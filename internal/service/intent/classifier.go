package intent

import (
	"slices"
	"strings"

	"github.com/sandevgo/advogado/pkg/conv"
)

type Kind int

const (
	KindPlain Kind = iota
	KindWebAugmented
	KindMeta
)

func (k Kind) String() string {
	switch k {
	case KindMeta:
		return "meta"
	case KindWebAugmented:
		return "web_augmented"
	default:
		return "plain"
	}
}

// Rule matches when the lowercased question contains any of Phrases. With
// WholeWords set, phrases and question are normalized and a phrase must start
// and end on word boundaries, so "quem e voce" does not match "quem e voces".
type Rule struct {
	Kind       Kind
	Phrases    []string
	WholeWords bool
	// Answer is the fixed reply for KindMeta rules.
	Answer string
}

type Result struct {
	Kind        Kind
	FixedAnswer string
	Matched     string
}

type Classifier struct {
	rules []Rule
}

// New builds a classifier evaluating rules by descending kind priority
// (Meta, then WebAugmented). Rules of equal kind keep their given order.
func New(rules []Rule) *Classifier {
	sorted := slices.Clone(rules)
	for i := range sorted {
		if sorted[i].WholeWords {
			sorted[i].Phrases = normalizeAll(sorted[i].Phrases)
		} else {
			sorted[i].Phrases = lowerAll(sorted[i].Phrases)
		}
	}
	slices.SortStableFunc(sorted, func(a, b Rule) int {
		return int(b.Kind) - int(a.Kind)
	})

	return &Classifier{rules: sorted}
}

func NewDefault() *Classifier {
	return New(DefaultRules())
}

func (c *Classifier) Classify(question string) Result {
	q := strings.ToLower(question)
	words := " " + conv.Normalize(question) + " "

	for _, r := range c.rules {
		for _, phrase := range r.Phrases {
			if phrase == "" {
				continue
			}
			if r.WholeWords && !strings.Contains(words, " "+phrase+" ") {
				continue
			}
			if !r.WholeWords && !strings.Contains(q, phrase) {
				continue
			}
			return Result{Kind: r.Kind, FixedAnswer: r.Answer, Matched: phrase}
		}
	}

	return Result{Kind: KindPlain}
}

// normalizeAll drops phrases that normalize to nothing and duplicates left
// by accented and unaccented spellings.
func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := conv.Normalize(s); n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
