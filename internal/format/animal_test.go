package format

import (
	"strings"
	"testing"
)

func animalDoc(id, name, species string, extra map[string]any) map[string]any {
	attrs := map[string]any{
		"name":    name,
		"species": species,
	}
	for k, v := range extra {
		attrs[k] = v
	}
	return map[string]any{
		"data": map[string]any{
			"id":         id,
			"type":       "animals",
			"attributes": attrs,
		},
	}
}

func TestAnimalRendersCoreFields(t *testing.T) {
	doc := animalDoc("123", "Fido", "Dog", map[string]any{
		"breedPrimary":       "Labrador",
		"sex":                "Male",
		"ageGroup":           "Adult",
		"sizeGroup":          "Large",
		"isGoodWithChildren": true,
		"isGoodWithDogs":     true,
	})

	out := Animal(doc)
	for _, want := range []string{"Fido", "id: 123", "Labrador", "Dog", "good with children", "good with dogs"} {
		if !strings.Contains(out, want) {
			t.Errorf("Animal() missing %q in:\n%s", want, out)
		}
	}
}

func TestAnimalNoResults(t *testing.T) {
	doc := map[string]any{"data": []any{}}
	if got := Animal(doc); got != "No animal found." {
		t.Fatalf("got %q, want the no-results fallback", got)
	}
}

func TestAnimalMissingFieldsUseFallback(t *testing.T) {
	doc := map[string]any{
		"data": map[string]any{"id": "1", "attributes": map[string]any{"name": "Mystery"}},
	}
	out := Animal(doc)
	if !strings.Contains(out, fallback) {
		t.Errorf("expected fallback placeholder for missing fields, got:\n%s", out)
	}
}

func TestAnimalListJoinsWithSeparator(t *testing.T) {
	doc := map[string]any{
		"data": []any{
			map[string]any{"id": "1", "attributes": map[string]any{"name": "A"}},
			map[string]any{"id": "2", "attributes": map[string]any{"name": "B"}},
		},
	}
	out := AnimalList(doc)
	if !strings.Contains(out, "\n---\n\n") {
		t.Errorf("expected a separator between animal sections, got:\n%s", out)
	}
	if strings.Count(out, "##") != 2 {
		t.Errorf("expected two animal headers, got:\n%s", out)
	}
}

func TestAnimalListNoResults(t *testing.T) {
	doc := map[string]any{"data": []any{}}
	if got := AnimalList(doc); got != "No animals found." {
		t.Fatalf("got %q, want the no-results fallback", got)
	}
}

func TestAnimalDescriptionPrefersStrippedHTML(t *testing.T) {
	doc := animalDoc("1", "Rex", "Dog", map[string]any{
		"descriptionHtml": "<p>Loves <b>fetch</b>.</p>",
		"descriptionText": "should not be used",
	})
	out := Animal(doc)
	if strings.Contains(out, "<p>") || strings.Contains(out, "<b>") {
		t.Errorf("HTML tags leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "Loves") || !strings.Contains(out, "fetch") {
		t.Errorf("expected stripped description text, got:\n%s", out)
	}
}

func TestPhotoURLsPrefersLargeThenOriginalThenSmall(t *testing.T) {
	doc := animalDoc("1", "Rex", "Dog", map[string]any{
		"pictures": []any{
			map[string]any{"small": "s1.jpg", "original": "o1.jpg", "large": "l1.jpg"},
			map[string]any{"small": "s2.jpg"},
		},
	})
	out := Animal(doc)
	if !strings.Contains(out, "l1.jpg") {
		t.Errorf("expected the large variant to be chosen, got:\n%s", out)
	}
	if !strings.Contains(out, "s2.jpg") {
		t.Errorf("expected the only available variant for the second photo, got:\n%s", out)
	}
}

func TestPhotoURLsBoundedByMaxPhotos(t *testing.T) {
	pics := make([]any, 0, 5)
	for i := 0; i < 5; i++ {
		pics = append(pics, map[string]any{"large": "p.jpg"})
	}
	doc := animalDoc("1", "Rex", "Dog", map[string]any{"pictures": pics})
	out := Animal(doc)
	if got := strings.Count(out, "p.jpg"); got != maxPhotos {
		t.Errorf("got %d photo references, want %d", got, maxPhotos)
	}
}
