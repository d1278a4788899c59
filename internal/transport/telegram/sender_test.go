package telegram

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitHTML_Short(t *testing.T) {
	assert.Equal(t, []string{"curto"}, splitHTML("curto", 100))
}

func TestSplitHTML_PrefersNewlines(t *testing.T) {
	text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)

	chunks := splitHTML(text, 100)
	assert.Equal(t, []string{strings.Repeat("a", 60), strings.Repeat("b", 60)}, chunks)
}

func TestSplitHTML_KeepsRunesIntact(t *testing.T) {
	text := strings.Repeat("ação ", 50)

	chunks := splitHTML(text, 33)
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c), c)
		assert.LessOrEqual(t, len(c), 33)
	}
	assert.Equal(t, strings.ReplaceAll(strings.TrimSpace(text), " ", ""), strings.ReplaceAll(strings.Join(chunks, ""), " ", ""))
}

func TestChatIdentity(t *testing.T) {
	id, err := chatIdentity(-100123).UserID(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "telegram_-100123", id)
}
