package llm

import "github.com/sandevgo/advogado/internal/core"

// WebMarker prefixes every web-context turn.
const WebMarker = "[Pesquisa Web]"

const Persona = `Você é um assistente jurídico virtual chamado Advogado Virtual. Sua função é fornecer informações gerais sobre leis e procedimentos legais no Brasil.

Como assistente jurídico, você deve:
1. Fornecer informações precisas sobre leis brasileiras, códigos e procedimentos legais.
2. Explicar termos jurídicos em linguagem acessível.
3. Orientar sobre processos legais comuns (como divórcio, pensão, direitos do consumidor, direito trabalhista, etc.)
4. Manter um tom profissional, empático e direto.

Limitações importantes - você DEVE sempre:
1. Deixar claro que suas informações são apenas orientativas e não substituem um advogado real.
2. NÃO dar conselhos jurídicos específicos que possam estabelecer uma relação advogado-cliente.
3. NÃO elaborar petições, contratos ou documentos legais completos.
4. NÃO prometer resultados em processos.
5. Recomendar consulta a um advogado para casos específicos.
6. Ser transparente sobre suas limitações.

Quando receber informações marcadas com [Pesquisa Web], cite as fontes usando o formato [Fonte: endereço].

Ao responder, mantenha um tom profissional, informativo, mas acessível. Evite jargões excessivos e explique termos técnicos quando necessário.`

const (
	mandatoryWebPrefix = WebMarker + " Informações atualizadas encontradas na web. " +
		"Você DEVE incorporar estas informações na sua resposta e citar as fontes:\n"
	optionalWebPrefix = WebMarker + " Informações da web que você pode usar para complementar sua resposta:\n"
	noWebResults      = WebMarker + " A pesquisa na web não encontrou resultados relevantes para esta pergunta. " +
		"Informe ao usuário que não foram encontradas informações atualizadas na web e responda apenas " +
		"com base no seu conhecimento geral, sem inventar fontes, decisões ou datas."
)

const (
	roleUser  = "user"
	roleModel = "model"
)

// buildContents orders the conversation: persona, web context, history, question.
func buildContents(persona, question string, history []core.Turn, web *core.WebContext) []content {
	contents := make([]content, 0, len(history)+3)
	contents = append(contents, textContent(roleUser, persona))

	if msg, ok := webMessage(web); ok {
		contents = append(contents, textContent(roleUser, msg))
	}

	for _, t := range history {
		role := roleModel
		if t.Sender == core.SenderUser {
			role = roleUser
		}
		contents = append(contents, textContent(role, t.Message))
	}

	return append(contents, textContent(roleUser, question))
}

func webMessage(web *core.WebContext) (string, bool) {
	switch {
	case web == nil:
		return "", false
	case web.NoResults:
		return noWebResults, true
	case web.Content == "":
		return "", false
	case web.Mandatory:
		return mandatoryWebPrefix + web.Content, true
	default:
		return optionalWebPrefix + web.Content, true
	}
}

func textContent(role, text string) content {
	return content{Role: role, Parts: []part{{Text: text}}}
}
