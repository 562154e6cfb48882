package format

import (
	"strings"
	"testing"

	"github.com/rescuegate/rescuegate/internal/rescuegroups"
)

func TestContactRendersIncludedOrg(t *testing.T) {
	doc := rescuegroups.Doc{
		"data": map[string]any{
			"id":         "1",
			"attributes": map[string]any{"name": "Fido"},
		},
		"included": []any{
			map[string]any{
				"type": "orgs",
				"attributes": map[string]any{
					"name": "Happy Tails Rescue", "email": "info@happytails.test",
				},
			},
		},
	}
	out := Contact(doc)
	if !strings.Contains(out, "Fido") || !strings.Contains(out, "Happy Tails Rescue") {
		t.Fatalf("expected animal and org names in output, got:\n%s", out)
	}
}

func TestContactNoOrgIncludedSaysUnavailable(t *testing.T) {
	doc := rescuegroups.Doc{
		"data": map[string]any{"id": "1", "attributes": map[string]any{"name": "Fido"}},
	}
	out := Contact(doc)
	if !strings.Contains(out, "No organization contact information available.") {
		t.Fatalf("expected the no-contact message, got:\n%s", out)
	}
}

func TestContactNoAnimalFound(t *testing.T) {
	doc := rescuegroups.Doc{"data": []any{}}
	if got := Contact(doc); got != "No animal found." {
		t.Fatalf("got %q, want exact no-results message", got)
	}
}

func TestOrgRendersSingleOrganization(t *testing.T) {
	doc := rescuegroups.Doc{
		"data": map[string]any{
			"id":         "5",
			"attributes": map[string]any{"name": "Paws Rescue", "city": "Austin", "state": "TX"},
		},
	}
	out := Org(doc)
	if !strings.Contains(out, "Paws Rescue") || !strings.Contains(out, "Austin") {
		t.Fatalf("expected org details, got:\n%s", out)
	}
}

func TestOrgListJoinsMultipleOrgs(t *testing.T) {
	doc := rescuegroups.Doc{
		"data": []any{
			map[string]any{"id": "1", "attributes": map[string]any{"name": "A"}},
			map[string]any{"id": "2", "attributes": map[string]any{"name": "B"}},
		},
	}
	out := OrgList(doc)
	if !strings.Contains(out, "\n---\n\n") {
		t.Fatalf("expected a separator between orgs, got:\n%s", out)
	}
	if strings.Count(out, "## ") != 2 {
		t.Fatalf("expected 2 headers, got:\n%s", out)
	}
}

func TestOrgListNoResults(t *testing.T) {
	doc := rescuegroups.Doc{"data": []any{}}
	if got := OrgList(doc); got != "No organizations found." {
		t.Fatalf("got %q, want exact no-results message", got)
	}
}

func TestSpeciesListRendersEntries(t *testing.T) {
	doc := rescuegroups.Doc{
		"data": []any{
			map[string]any{"id": "1", "attributes": map[string]any{"name": "Dogs"}},
			map[string]any{"id": "2", "attributes": map[string]any{"name": "Cats"}},
		},
	}
	out := SpeciesList(doc)
	if !strings.Contains(out, "Dogs") || !strings.Contains(out, "Cats") {
		t.Fatalf("expected both species, got:\n%s", out)
	}
}

func TestBreedListNoResults(t *testing.T) {
	doc := rescuegroups.Doc{"data": []any{}}
	if got := BreedList(doc); got != "No breeds found." {
		t.Fatalf("got %q, want exact no-results message", got)
	}
}

func TestBreedRendersSingleEntry(t *testing.T) {
	doc := rescuegroups.Doc{
		"data": map[string]any{"id": "9", "attributes": map[string]any{"name": "Beagle"}},
	}
	out := Breed(doc)
	if !strings.Contains(out, "Beagle") || !strings.Contains(out, "9") {
		t.Fatalf("expected breed name and id, got:\n%s", out)
	}
}

func TestMetadataFallsBackToValueWhenNameMissing(t *testing.T) {
	doc := rescuegroups.Doc{
		"data": []any{
			map[string]any{"id": "1", "attributes": map[string]any{"value": "Large"}},
		},
	}
	out := Metadata("sizes", doc)
	if !strings.Contains(out, "Large") {
		t.Fatalf("expected fallback to 'value' field, got:\n%s", out)
	}
}

func TestMetadataNoResultsUsesKindInMessage(t *testing.T) {
	doc := rescuegroups.Doc{"data": []any{}}
	got := Metadata("colors", doc)
	if got != "No colors found." {
		t.Fatalf("got %q, want kind-specific no-results message", got)
	}
}

func TestMetadataTypesListsEachKind(t *testing.T) {
	out := MetadataTypes([]string{"colors", "sizes"})
	if !strings.Contains(out, "colors") || !strings.Contains(out, "sizes") {
		t.Fatalf("expected both kinds listed, got:\n%s", out)
	}
}
