package advisor

import (
	"fmt"
	"math"
	"strings"

	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/i18n"
)

// maxPromptRows bounds the machine list sent to the backend.
const maxPromptRows = 30

// BuildPrompt renders the single-turn prompt: instructions in lang, the
// scenario weights, the visible machines and the user question.
func BuildPrompt(query string, lang i18n.Lang, scenario machine.Scenario, rows []catalog.Row) string {
	p := i18n.NewPrinter(lang)
	w := scenario.Weights()

	var sb strings.Builder
	sb.WriteString(p.T(i18n.KeyAdvisorSystem, p.T(i18n.KeyLanguageName)))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Scenario: %s (single %d%%, multi %d%%, gpu %d%%)\n", scenario, w.Single, w.Multi, w.GPU)
	sb.WriteString("Machines (name | chip | type | year | memory | single | multi | gpu | score | tier | price USD):\n")
	for i, r := range rows {
		if i == maxPromptRows {
			fmt.Fprintf(&sb, "... %d more omitted\n", len(rows)-maxPromptRows)
			break
		}
		fmt.Fprintf(&sb, "- %s | %s | %s | %d | %s | %d | %d | %d | %d | %s | %d\n",
			r.Name, r.Chip, r.Type, r.Year, r.Memory,
			r.SingleCore, r.MultiCore, r.Metal,
			r.Score, r.Tier, int64(math.Round(r.EffectivePrice())))
	}
	if len(rows) == 0 {
		sb.WriteString("(none)\n")
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(strings.TrimSpace(query))
	sb.WriteString("\n")
	return sb.String()
}

//Personal.AI order the ending
