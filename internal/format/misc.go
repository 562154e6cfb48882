package format

import (
	"fmt"
	"strings"

	"github.com/rescuegate/rescuegate/internal/rescuegroups"
)

// SpeciesList renders the recognized species as a Markdown list.
func SpeciesList(doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return "No species found."
	}
	var b strings.Builder
	b.WriteString("## Species\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s (id: %s)\n", it.str("name"), it.id())
	}
	return b.String()
}

// BreedList renders the breeds of one species as a Markdown list.
func BreedList(doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return "No breeds found."
	}
	var b strings.Builder
	b.WriteString("## Breeds\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s (id: %s)\n", it.str("name"), it.id())
	}
	return b.String()
}

// Breed renders a single breed.
func Breed(doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return "No breed found."
	}
	it := items[0]
	return fmt.Sprintf("## %s (id: %s)\n", it.str("name"), it.id())
}

// Metadata renders one metadata kind's entries as a Markdown list.
func Metadata(kind string, doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return fmt.Sprintf("No %s found.", kind)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", kind)
	for _, it := range items {
		name := it.str("name")
		if name == fallback {
			name = it.str("value")
		}
		fmt.Fprintf(&b, "- %s (id: %s)\n", name, it.id())
	}
	return b.String()
}

// MetadataTypes renders the static list of recognized metadata kinds.
func MetadataTypes(kinds []string) string {
	var b strings.Builder
	b.WriteString("## Metadata types\n\n")
	for _, k := range kinds {
		fmt.Fprintf(&b, "- %s\n", k)
	}
	return b.String()
}
