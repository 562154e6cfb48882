package format

import (
	"fmt"
	"strings"

	"github.com/rescuegate/rescuegate/internal/rescuegroups"
)

// Contact renders the primary organization's contact details for an
// animal fetched with ?include=orgs — the "included" section of the doc.
func Contact(doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return "No animal found."
	}
	animal := items[0]

	included, _ := doc["included"].([]any)
	var org item
	for _, raw := range included {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if t, _ := m["type"].(string); t == "orgs" {
			org = item(m)
			break
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Contact for %s (id: %s)\n\n", animal.str("name"), animal.id())
	if org == nil {
		b.WriteString("No organization contact information available.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "- **Organization:** %s\n", org.str("name"))
	fmt.Fprintf(&b, "- **Email:** %s\n", org.str("email"))
	fmt.Fprintf(&b, "- **Phone:** %s\n", org.str("phone"))
	fmt.Fprintf(&b, "- **Website:** %s\n", org.str("url"))
	fmt.Fprintf(&b, "- **City/State:** %s, %s\n", org.str("city"), org.str("state"))
	return b.String()
}
