package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name     string
		question string
		want     Kind
	}{
		{name: "creator question", question: "Quem criou você?", want: KindMeta},
		{name: "purpose question", question: "Qual é o seu propósito?", want: KindMeta},
		{name: "about yourself", question: "Fale sobre você", want: KindMeta},
		{name: "recency term", question: "Qual a decisão recente sobre aluguel?", want: KindWebAugmented},
		{name: "authority term", question: "O que diz a súmula 331?", want: KindWebAugmented},
		{name: "court acronym upper case", question: "O STF julgou isso?", want: KindWebAugmented},
		{name: "about yourself with punctuation", question: "Quem é você?!", want: KindMeta},
		{name: "about yourself unaccented", question: "o que voce e", want: KindMeta},
		{name: "topic starting with si", question: "Fale sobre sigilo bancário", want: KindPlain},
		{name: "topic starting with sindicato", question: "Fale sobre sindicato e greve", want: KindPlain},
		{name: "verb starting with e", question: "O que voce entende por usucapião?", want: KindPlain},
		{name: "plural voces", question: "Quem e voces acham que paga a pensão?", want: KindPlain},
		{name: "plain question", question: "Como funciona o divórcio consensual?", want: KindPlain},
		{name: "empty", question: "", want: KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.question).Kind)
		})
	}
}

func TestClassify_MetaBeatsWebAugmented(t *testing.T) {
	res := NewDefault().Classify("Quem criou você e qual a decisão mais recente do STF?")

	assert.Equal(t, KindMeta, res.Kind)
	assert.Equal(t, MetaAnswer, res.FixedAnswer)
}

func TestClassify_PriorityIndependentOfRuleOrder(t *testing.T) {
	c := New([]Rule{
		{Kind: KindWebAugmented, Phrases: []string{"hoje"}},
		{Kind: KindMeta, Phrases: []string{"QUEM É VOCÊ"}, Answer: "fixo"},
	})

	res := c.Classify("quem é você hoje?")
	assert.Equal(t, KindMeta, res.Kind)
	assert.Equal(t, "fixo", res.FixedAnswer)
	assert.Equal(t, "quem é você", res.Matched)
}

func TestClassify_WholeWordsMatchesNormalizedPhrase(t *testing.T) {
	c := New([]Rule{{Kind: KindMeta, Phrases: []string{"Quem É Você", "quem e voce"}, WholeWords: true, Answer: "fixo"}})

	res := c.Classify("Afinal, QUEM é você?")
	assert.Equal(t, KindMeta, res.Kind)
	assert.Equal(t, "quem e voce", res.Matched)

	assert.Equal(t, KindPlain, c.Classify("quem é vocês").Kind)
}

func TestClassify_FirstMatchingPhraseWins(t *testing.T) {
	c := New([]Rule{{Kind: KindWebAugmented, Phrases: []string{"stf", "hoje"}}})

	assert.Equal(t, "stf", c.Classify("hoje o stf decidiu").Matched)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "meta", KindMeta.String())
	assert.Equal(t, "web_augmented", KindWebAugmented.String())
	assert.Equal(t, "plain", KindPlain.String())
}
