package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/service/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	result   resolver.Result
	requests []resolver.Request
}

func (f *fakeResolver) Resolve(_ context.Context, req resolver.Request) resolver.Result {
	f.requests = append(f.requests, req)
	return f.result
}

func TestAnswer(t *testing.T) {
	r := &fakeResolver{result: resolver.Result{Answer: "Prazo de 15 dias. [Fonte: stj.jus.br]", UsedAPI: true, WebSearchUsed: true}}
	var out bytes.Buffer

	h := &Handler{Resolver: r, Identity: core.StaticIdentity("cli_1")}
	cont := h.Answer(context.Background(), &out, "  Qual o prazo?  ")

	assert.True(t, cont)
	require.Len(t, r.requests, 1)
	assert.Equal(t, "Qual o prazo?", r.requests[0].Question)
	assert.Equal(t, core.PlatformCLI, r.requests[0].Platform)
	assert.Contains(t, out.String(), "Prazo de 15 dias.")
	assert.Contains(t, out.String(), "pesquisa na web")
}

func TestAnswer_QuitAndBlank(t *testing.T) {
	r := &fakeResolver{}
	var out bytes.Buffer

	h := &Handler{Resolver: r}

	assert.True(t, h.Answer(context.Background(), &out, "   "))
	assert.False(t, h.Answer(context.Background(), &out, "sair"))
	assert.False(t, h.Answer(context.Background(), &out, "EXIT"))
	assert.Empty(t, r.requests)
}

func TestAnswer_Failure(t *testing.T) {
	r := &fakeResolver{result: resolver.Result{Answer: "Por favor, verifique sua conexão com a internet."}}
	var out bytes.Buffer

	h := &Handler{Resolver: r}

	assert.True(t, h.Answer(context.Background(), &out, "pergunta"))
	assert.Contains(t, out.String(), "verifique sua conexão")
	assert.NotContains(t, out.String(), "pesquisa na web")
}

type fakeCommands struct {
	gotUser string
}

func (f *fakeCommands) Execute(_ context.Context, userID, input string) (string, bool) {
	f.gotUser = userID
	if input == "/sobre" {
		return "**Advogado Virtual** 1.0.0", true
	}
	return "", false
}

func (f *fakeCommands) ListCommands() []core.Command { return nil }

func TestAnswer_Command(t *testing.T) {
	r := &fakeResolver{result: resolver.Result{Answer: "resposta", UsedAPI: true}}
	cmds := &fakeCommands{}
	h := &Handler{Resolver: r, Commands: cmds, Identity: core.StaticIdentity("cli_ana")}
	var out bytes.Buffer

	assert.True(t, h.Answer(context.Background(), &out, "/sobre"))
	assert.Equal(t, "cli_ana", cmds.gotUser)
	assert.Contains(t, out.String(), "Advogado Virtual 1.0.0")
	assert.Empty(t, r.requests)

	assert.True(t, h.Answer(context.Background(), &out, "o que é habeas corpus?"))
	assert.Len(t, r.requests, 1)
}
