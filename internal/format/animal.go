package format

import (
	"fmt"
	"strings"

	"github.com/rescuegate/rescuegate/internal/rescuegroups"
)

// maxPhotos bounds how many images an animal profile embeds.
const maxPhotos = 3

// Animal renders a single animal profile as Markdown. If doc wraps a
// single-element array (as get_animal's GET can), it is unwrapped first.
func Animal(doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return "No animal found."
	}
	return animalSection(items[0])
}

// AnimalList renders a Markdown list of animals, as returned by search and
// list operations.
func AnimalList(doc rescuegroups.Doc) string {
	items := asItems(doc)
	if len(items) == 0 {
		return "No animals found."
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		b.WriteString(animalSection(it))
	}
	return b.String()
}

func animalSection(it item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (id: %s)\n\n", it.str("name"), it.id())
	fmt.Fprintf(&b, "- **Species:** %s\n", it.str("species"))
	fmt.Fprintf(&b, "- **Breed:** %s\n", breedSummary(it))
	fmt.Fprintf(&b, "- **Sex:** %s\n", it.str("sex"))
	fmt.Fprintf(&b, "- **Age:** %s\n", it.str("ageGroup"))
	fmt.Fprintf(&b, "- **Size:** %s\n", it.str("sizeGroup"))
	fmt.Fprintf(&b, "- **Compatibility:** %s\n", compatibilitySummary(it))

	if desc := description(it); desc != "" {
		fmt.Fprintf(&b, "\n%s\n", desc)
	}

	if photos := photoURLs(it); len(photos) > 0 {
		b.WriteString("\n")
		for _, url := range photos {
			fmt.Fprintf(&b, "![%s](%s)\n", it.str("name"), url)
		}
	}

	return b.String()
}

func breedSummary(it item) string {
	primary := it.str("breedPrimary")
	secondary := it.str("breedSecondary")
	if secondary != fallback && secondary != "" {
		return primary + " / " + secondary
	}
	return primary
}

func compatibilitySummary(it item) string {
	var tags []string
	add := func(label, field string) {
		a := it.attrs()
		if a == nil {
			return
		}
		if v, ok := a[field].(bool); ok && v {
			tags = append(tags, label)
		}
	}
	add("good with children", "isGoodWithChildren")
	add("good with dogs", "isGoodWithDogs")
	add("good with cats", "isGoodWithCats")
	add("house trained", "isHousetrained")
	add("special needs", "isSpecialNeeds")
	add("needs foster", "isNeedsFoster")
	if len(tags) == 0 {
		return fallback
	}
	return strings.Join(tags, ", ")
}

func description(it item) string {
	a := it.attrs()
	if a == nil {
		return ""
	}
	if v, ok := a["descriptionHtml"].(string); ok && v != "" {
		return StripHTML(v)
	}
	if v, ok := a["descriptionText"].(string); ok && v != "" {
		return v
	}
	return ""
}

func photoURLs(it item) []string {
	a := it.attrs()
	if a == nil {
		return nil
	}
	raw, ok := a["pictures"].([]any)
	if !ok {
		return nil
	}
	var urls []string
	for _, p := range raw {
		pic, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, key := range []string{"large", "original", "small"} {
			if u, ok := pic[key].(string); ok && u != "" {
				urls = append(urls, u)
				break
			}
		}
		if len(urls) >= maxPhotos {
			break
		}
	}
	return urls
}
