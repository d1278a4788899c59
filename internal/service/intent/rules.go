package intent

import "github.com/sandevgo/advogado/internal/core"

// MetaAnswer is returned for questions about the assistant itself.
const MetaAnswer = "Eu sou o " + core.BotName + ", um assistente jurídico criado para oferecer " +
	"informações gerais sobre leis e procedimentos legais no Brasil. Fui desenvolvido como um " +
	"projeto independente que usa a API Gemini do Google para gerar respostas e, quando a " +
	"pergunta pede informações atuais, consulta a web em fontes como STF, STJ e TST. " +
	"Minhas respostas são apenas orientativas e não substituem a consulta a um advogado."

var metaPhrases = []string{
	"quem criou voce",
	"quem criou você",
	"quem te criou",
	"quem e seu criador",
	"quem é seu criador",
	"quem te desenvolveu",
	"quem desenvolveu voce",
	"quem desenvolveu você",
	"qual e o seu proposito",
	"qual é o seu propósito",
	"qual o seu proposito",
	"qual o seu propósito",
	"qual seu proposito",
	"qual seu propósito",
	"qual seu objetivo",
	"qual é o seu objetivo",
	"fale sobre voce",
	"fale sobre você",
	"fale sobre si mesmo",
	"quem e voce",
	"quem é você",
	"o que voce e",
	"o que você é",
}

var recencyTerms = []string{
	"recente",
	"último",
	"última",
	"ultimo",
	"ultima",
	"hoje",
	"esta semana",
	"essa semana",
	"nesta semana",
	"atual",
	"decisão",
	"decisao",
	"novidade",
}

var authorityTerms = []string{
	"stf",
	"supremo tribunal",
	"stj",
	"superior tribunal",
	"tst",
	"tse",
	"jurisprudência",
	"jurisprudencia",
	"súmula",
	"sumula",
}

// DefaultRules returns the Portuguese rule set. Order inside the slice does not
// matter; Classifier sorts by kind priority.
func DefaultRules() []Rule {
	web := make([]string, 0, len(recencyTerms)+len(authorityTerms))
	web = append(web, recencyTerms...)
	web = append(web, authorityTerms...)

	return []Rule{
		{Kind: KindMeta, Phrases: metaPhrases, WholeWords: true, Answer: MetaAnswer},
		{Kind: KindWebAugmented, Phrases: web},
	}
}
