package rescuegroups

import "testing"

func TestClampLimit(t *testing.T) {
	cases := map[int]int{
		-5:  1,
		0:   1,
		1:   1,
		50:  50,
		100: 100,
		101: 100,
		500: 100,
	}
	for in, want := range cases {
		if got := clampLimit(in); got != want {
			t.Errorf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestNormalizeSort(t *testing.T) {
	cases := map[string]string{
		"":         "Newest",
		"bogus":    "Newest",
		"Newest":   "Newest",
		"Distance": "Distance",
		"Random":   "Random",
	}
	for in, want := range cases {
		if got := normalizeSort(in); got != want {
			t.Errorf("normalizeSort(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildFiltersLocationRadius(t *testing.T) {
	filters := buildFilters(SearchFilters{PostalCode: "12345", Miles: 25})
	if len(filters) != 1 {
		t.Fatalf("got %d filters, want 1", len(filters))
	}
	if filters[0].FieldName != fieldLocationRadius || filters[0].Operation != "within" {
		t.Fatalf("got %+v, want a within locationRadius filter", filters[0])
	}
}

func TestBuildFiltersZeroMilesIsEqual(t *testing.T) {
	filters := buildFilters(SearchFilters{PostalCode: "12345", Miles: 0})
	if len(filters) != 1 || filters[0].Operation != "equal" {
		t.Fatalf("got %+v, want an equal locationRadius filter for miles=0", filters)
	}
}

func TestBuildFiltersBooleanQualities(t *testing.T) {
	yes := true
	no := false
	filters := buildFilters(SearchFilters{
		GoodWithChildren: &yes,
		GoodWithDogs:     &no,
	})
	if len(filters) != 2 {
		t.Fatalf("got %d filters, want 2", len(filters))
	}
	for _, f := range filters {
		if f.Operation != "equal" {
			t.Errorf("boolean quality filter %+v should use equal", f)
		}
	}
}

func TestBuildFiltersOmitsUnsetQualities(t *testing.T) {
	filters := buildFilters(SearchFilters{})
	if len(filters) != 0 {
		t.Fatalf("got %d filters for an empty SearchFilters, want 0", len(filters))
	}
}

func TestBuildFiltersColorAndPatternUseContains(t *testing.T) {
	filters := buildFilters(SearchFilters{Color: "black", Pattern: "brindle"})
	if len(filters) != 2 {
		t.Fatalf("got %d filters, want 2", len(filters))
	}
	for _, f := range filters {
		if f.Operation != "contains" {
			t.Errorf("got operation %q, want contains", f.Operation)
		}
	}
}
