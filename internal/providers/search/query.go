package search

import "strings"

type court struct {
	names []string
	site  string
}

var courts = []court{
	{names: []string{"stf", "supremo tribunal federal"}, site: "stf.jus.br"},
	{names: []string{"stj", "superior tribunal de justiça", "superior tribunal de justica"}, site: "stj.jus.br"},
	{names: []string{"tst", "tribunal superior do trabalho"}, site: "tst.jus.br"},
	{names: []string{"tse", "tribunal superior eleitoral"}, site: "tse.jus.br"},
}

// BuildQuery turns a question into a search query. Questions naming a high
// court are restricted to that court's site; others get topical keywords.
func BuildQuery(question string) string {
	q := strings.TrimSpace(question)
	words := strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '?' || r == '!' || r == ';' || r == ':' || r == '(' || r == ')'
	})
	lower := " " + strings.Join(words, " ") + " "

	var sites []string
	for _, c := range courts {
		for _, name := range c.names {
			if strings.Contains(lower, " "+name+" ") {
				sites = append(sites, "site:"+c.site)
				break
			}
		}
	}

	if len(sites) > 0 {
		return q + " " + strings.Join(sites, " OR ")
	}

	if strings.Contains(lower, "jurisprud") {
		return q + " direito"
	}
	return q + " jurisprudência direito"
}
