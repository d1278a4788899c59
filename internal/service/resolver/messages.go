package resolver

import "github.com/sandevgo/advogado/internal/core"

const (
	msgEmptyQuestion = "Por favor, faça uma pergunta."
	msgGeneric       = "Ocorreu um erro ao processar sua solicitação."
	msgFallback      = "Não foi possível obter uma resposta no momento."
)

var failureMessages = map[core.FailureKind]string{
	core.FailureConfigurationMissing: "Por favor, configure a chave da API Gemini para que eu possa processar suas perguntas adequadamente.",
	core.FailureTransientNetwork:     "Por favor, verifique sua conexão com a internet.",
	core.FailureTimeout:              "A resposta está demorando muito. Por favor, tente novamente mais tarde.",
	core.FailureProviderOverloaded:   "Desculpe, estamos com alta demanda no momento. Por favor, tente novamente em alguns instantes.",
	core.FailureProviderError:        "Houve um erro ao processar sua pergunta.",
	core.FailureEmptyCompletion:      "Não consegui formular uma resposta. Poderia reformular sua pergunta?",
}

// FailureMessage is the user-facing text for a failed completion.
func FailureMessage(kind core.FailureKind) string {
	if msg, ok := failureMessages[kind]; ok {
		return msg
	}
	return msgFallback
}
