package format

import (
	"fmt"
	"strings"

	"github.com/rescuegate/rescuegate/internal/rescuegroups"
)

// Compare renders a side-by-side Markdown table for up to five animals.
// ids fixes the column order to the caller's input order regardless of the
// order results were fetched in.
func Compare(byID map[string]rescuegroups.Doc, ids []string) string {
	animals := make(map[string]item, len(ids))
	for _, id := range ids {
		doc, ok := byID[id]
		if !ok {
			continue
		}
		items := asItems(doc)
		if len(items) > 0 {
			animals[id] = items[0]
		}
	}

	var b strings.Builder
	b.WriteString("| Field |")
	for _, id := range ids {
		fmt.Fprintf(&b, " %s |", id)
	}
	b.WriteString("\n|---|")
	for range ids {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	rows := []struct {
		label string
		get   func(item) string
	}{
		{"Name", func(it item) string { return it.str("name") }},
		{"Species", func(it item) string { return it.str("species") }},
		{"Breed", breedSummary},
		{"Sex", func(it item) string { return it.str("sex") }},
		{"Age", func(it item) string { return it.str("ageGroup") }},
		{"Size", func(it item) string { return it.str("sizeGroup") }},
		{"Compatibility", compatibilitySummary},
	}

	for _, row := range rows {
		fmt.Fprintf(&b, "| %s |", row.label)
		for _, id := range ids {
			it, ok := animals[id]
			cell := fallback
			if ok {
				cell = row.get(it)
			}
			fmt.Fprintf(&b, " %s |", cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}
