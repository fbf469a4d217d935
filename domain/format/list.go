package format

import (
	"fmt"
	"strings"
)

// Natural-language joins for multi-select answers. Three or more items use
// the Oxford comma: "A, B, and C".

func FormatListAnd(items []string) string {
	return joinNatural(items, "and")
}

func FormatListOr(items []string) string {
	return joinNatural(items, "or")
}

func FormatListComma(items []string) string {
	return strings.Join(items, ", ")
}

func FormatListNewline(items []string) string {
	return strings.Join(items, "\n")
}

func joinNatural(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
	}
}

// LoopItem is one entry of the loop-ready array emitted alongside list
// variables, for templates with repeat constructs.
type LoopItem struct {
	Value   string `json:"value"`
	Index   int    `json:"index"` // 1-based
	IsFirst bool   `json:"isFirst"`
	IsLast  bool   `json:"isLast"`
}

// ArrayHelperVariables derives the scalar helper bundle for one list answer:
// count, joined renderings, first/last, multiplicity flags and 1-indexed
// per-item variables. The loop-ready items are returned separately so the
// scalar map stays flat.
func ArrayHelperVariables(baseName string, items []string) (map[string]string, []LoopItem) {
	vars := map[string]string{
		baseName + "Count":     fmt.Sprintf("%d", len(items)),
		baseName + "Formatted": FormatListAnd(items),
		baseName + "List":      FormatListComma(items),
		baseName + "OrList":    FormatListOr(items),
		baseName + "First":     "",
		baseName + "Last":      "",
	}
	if len(items) > 0 {
		vars[baseName+"First"] = items[0]
		vars[baseName+"Last"] = items[len(items)-1]
	}

	capBase := CapitalizeFirst(baseName)
	vars["hasMultiple"+capBase] = boolString(len(items) > 1)
	vars["hasSingle"+capBase] = boolString(len(items) == 1)
	vars["hasNo"+capBase] = boolString(len(items) == 0)

	loop := make([]LoopItem, len(items))
	for i, item := range items {
		vars[fmt.Sprintf("%s%d", baseName, i+1)] = item
		loop[i] = LoopItem{
			Value:   item,
			Index:   i + 1,
			IsFirst: i == 0,
			IsLast:  i == len(items)-1,
		}
	}
	return vars, loop
}

// CapitalizeFirst is exported for the group expander, which builds helper
// variable names from group and field identifiers.
func CapitalizeFirst(s string) string {
	return capitalizeFirst(s)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
