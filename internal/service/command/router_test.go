package command

import (
	"context"
	"testing"
	"time"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	turns    []core.Turn
	gotUser  string
	gotLimit int
}

func (f *fakeHistory) RecentHistory(_ context.Context, userID string, limit int) []core.Turn {
	f.gotUser = userID
	f.gotLimit = limit
	if len(f.turns) > limit {
		return f.turns[len(f.turns)-limit:]
	}
	return f.turns
}

func TestRouter_NotACommand(t *testing.T) {
	r := NewRouter(&fakeHistory{})

	out, ok := r.Execute(context.Background(), "u1", "O que é usucapião?")
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestRouter_Unknown(t *testing.T) {
	r := NewRouter(&fakeHistory{})

	out, ok := r.Execute(context.Background(), "u1", "/xyz")
	assert.True(t, ok)
	assert.Contains(t, out, "Comando desconhecido: /xyz")
}

func TestRouter_Help(t *testing.T) {
	r := NewRouter(&fakeHistory{})

	out, ok := r.Execute(context.Background(), "u1", "/AJUDA@AdvogadoBot")
	require.True(t, ok)
	assert.Contains(t, out, "/ajuda")
	assert.Contains(t, out, "/sobre")
	assert.Contains(t, out, "/historico")

	names := []string{}
	for _, c := range r.ListCommands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"ajuda", "historico", "sobre"}, names)
}

func TestRouter_About(t *testing.T) {
	out, ok := NewRouter(&fakeHistory{}).Execute(context.Background(), "", "/sobre")
	require.True(t, ok)
	assert.Contains(t, out, core.BotName)
	assert.Contains(t, out, core.BotVersion)
}

func TestHistoryCommand(t *testing.T) {
	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	h := &fakeHistory{turns: []core.Turn{
		{Sender: core.SenderUser, Message: "Qual o prazo?", CreatedAt: at},
		{Sender: core.SenderBot, Message: "O prazo é de **15 dias**.", CreatedAt: at.Add(time.Second)},
	}}
	r := NewRouter(h)

	out, ok := r.Execute(context.Background(), "web_1", "/historico 4")
	require.True(t, ok)
	assert.Equal(t, "web_1", h.gotUser)
	assert.Equal(t, 4, h.gotLimit)
	assert.Contains(t, out, "Você (05/03 14:30): Qual o prazo?")
	assert.Contains(t, out, core.BotName+" (05/03 14:30): O prazo é de 15 dias.")
}

func TestHistoryCommand_Errors(t *testing.T) {
	r := NewRouter(&fakeHistory{})

	out, _ := r.Execute(context.Background(), "u1", "/historico abc")
	assert.Contains(t, out, "quantidade inválida")

	out, _ = r.Execute(context.Background(), "", "/historico")
	assert.Contains(t, out, "não foi possível identificar")

	out, _ = r.Execute(context.Background(), "u1", "/historico")
	assert.Contains(t, out, "Nenhuma conversa")
}
