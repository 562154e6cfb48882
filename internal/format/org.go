package format

import (
	"fmt"
	"strings"

	"github.com/rescuegate/rescuegate/internal/rescuegroups"
)

// Org renders a single organization's profile.
func Org(doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return "No organization found."
	}
	return orgSection(items[0])
}

// OrgList renders a Markdown list of organizations.
func OrgList(doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return "No organizations found."
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		b.WriteString(orgSection(it))
	}
	return b.String()
}

func orgSection(it item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (id: %s)\n\n", it.str("name"), it.id())
	fmt.Fprintf(&b, "- **Email:** %s\n", it.str("email"))
	fmt.Fprintf(&b, "- **Phone:** %s\n", it.str("phone"))
	fmt.Fprintf(&b, "- **Website:** %s\n", it.str("url"))
	fmt.Fprintf(&b, "- **City/State:** %s, %s\n", it.str("city"), it.str("state"))
	return b.String()
}
