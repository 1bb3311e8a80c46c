package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/samuel/pkg/domain"
)

// TraceOverlay highlights the path one stage took through the tables.
type TraceOverlay struct {
	Trace []domain.TraceEvent
}

// GenerateMermaid produces a Mermaid flowchart of the rule tables, one
// subgraph per colour. Conditions are decisions ({Rhombus}), actions are
// [Rectangles]; a dotted edge links every action to the one used instead
// when it already ran this stage. The overlay, if given, marks matched
// conditions, skipped actions and applied actions.
func GenerateMermaid(rules []domain.RuleInfo, overlay *TraceOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	decisions := make(map[string]bool)
	byColour := make(map[domain.Colour][]domain.RuleInfo)
	for _, r := range rules {
		byColour[r.Colour] = append(byColour[r.Colour], r)
	}

	for _, c := range domain.Colours {
		rows := byColour[c]
		if len(rows) == 0 {
			continue
		}
		entry := c.Initial() + "_start"
		fmt.Fprintf(&sb, "    subgraph %s\n", c)
		fmt.Fprintf(&sb, "    %s((\"%s symbol\"))\n", entry, c)

		prev := entry
		for i, r := range rows {
			cond, act := conditionID(c, r.Number), actionID(c, r.Number)
			last := i == len(rows)-1

			if last {
				// The final row always matches; skip the decision node.
				fmt.Fprintf(&sb, "    %s[\"%d: %s\"]\n", act, r.Number, escape(r.Action))
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", prev, escape(r.Condition), act)
			} else {
				decisions[cond] = true
				fmt.Fprintf(&sb, "    %s{\"%s\"}\n", cond, escape(r.Condition))
				fmt.Fprintf(&sb, "    %s[\"%d: %s\"]\n", act, r.Number, escape(r.Action))
				fmt.Fprintf(&sb, "    %s --> %s\n", arrowFrom(prev, entry), cond)
				fmt.Fprintf(&sb, "    %s -- yes --> %s\n", cond, act)
				prev = cond
			}
		}

		for i := range rows {
			from := rows[i].Number
			to := rows[(i+len(rows)-1)%len(rows)].Number
			fmt.Fprintf(&sb, "    %s -. \"already applied\" .-> %s\n", actionID(c, from), actionID(c, to))
		}
		sb.WriteString("    end\n")
	}

	if overlay != nil {
		writeOverlay(&sb, overlay, decisions)
	}
	return sb.String()
}

// arrowFrom labels the "no" branch of a decision; the entry node has none.
func arrowFrom(prev, entry string) string {
	if prev == entry {
		return prev
	}
	return prev + " -- no"
}

func writeOverlay(sb *strings.Builder, overlay *TraceOverlay, decisions map[string]bool) {
	sb.WriteString("\n    %% Overlay Styles\n")
	sb.WriteString("    classDef matched fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef skipped fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray: 5 5,color:#000;\n")
	sb.WriteString("    classDef applied fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	seen := make(map[string]bool)
	emit := func(id, class string) {
		key := id + " " + class
		if seen[key] {
			return
		}
		seen[key] = true
		fmt.Fprintf(sb, "    class %s %s;\n", id, class)
	}

	for _, ev := range overlay.Trace {
		switch ev.Type {
		case domain.TraceConditionMatched:
			if id := conditionID(ev.Colour, ev.Rule); decisions[id] {
				emit(id, "matched")
			}
		case domain.TraceRuleSkipped:
			emit(actionID(ev.Colour, ev.Rule), "skipped")
		case domain.TraceActionApplied:
			emit(actionID(ev.Colour, ev.Rule), "applied")
		}
	}
}

func conditionID(c domain.Colour, rule int) string {
	return fmt.Sprintf("%s_c%d", c.Initial(), rule)
}

func actionID(c domain.Colour, rule int) string {
	return fmt.Sprintf("%s_a%d", c.Initial(), rule)
}

// escape replaces double quotes, which would end a Mermaid label.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
