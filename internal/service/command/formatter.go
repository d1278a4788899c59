package command

import (
	"fmt"
	"strings"
)

// formatter renders command replies as the markdown subset the transports
// convert for display.
type formatter struct{}

func newFormatter() formatter {
	return formatter{}
}

func (f formatter) Info(title string) string {
	return fmt.Sprintf("⚖️ **%s**\n", title)
}

func (f formatter) Error(err error) string {
	return fmt.Sprintf("❌ **Erro no comando**\n\n%s\n", err.Error())
}

func (f formatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**  ›  %s\n", label, value)
}

func (f formatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f formatter) Tip(text string) string {
	return fmt.Sprintf("_%s_\n", text)
}

func (f formatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
