// Package rescuegroups implements the typed client against the
// RescueGroups.org v5 adoption API: cache-backed, limiter-gated, and
// returning decoded JSON trees for the formatters to render.
package rescuegroups

// Doc is a decoded JSON:API-shaped response tree: top-level "data" and,
// when requested via ?include=, "included". Kept as a generic tree rather
// than a fully-typed struct because the upstream schema varies per
// endpoint and the gateway only ever re-projects a handful of fields.
type Doc map[string]any

// Filter is one upstream search filter: {fieldName, operation, criteria}.
type Filter struct {
	FieldName string `json:"fieldName"`
	Operation string `json:"operation"`
	Criteria  any    `json:"criteria"`
}

// SearchFilters collects every recognized search_pets argument.
type SearchFilters struct {
	Species           string
	PostalCode        string
	Miles             int
	GoodWithChildren  *bool
	GoodWithDogs      *bool
	GoodWithCats      *bool
	HouseTrained      *bool
	SpecialNeeds      *bool
	NeedsFoster       *bool
	Color             string
	Pattern           string
	Sort              string
	Limit             int
	IncludeOrgs       bool
}

// MetadataKinds is the static list behind list_metadata_types — it names
// no network round trip, just the recognized `kind` values for
// list_metadata.
var MetadataKinds = []string{
	"colors", "patterns", "qualities", "species", "breeds",
	"sizes", "ages", "sexes", "sort-options",
}
