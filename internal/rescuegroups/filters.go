package rescuegroups

// Upstream field names for the boolean "quality" filters. The exact name
// for "needs foster" is not pinned down by the retrieved pack (the spec
// flags it as an open question); animals.isNeedsFoster follows the same
// "animals.is<Quality>" convention the other quality fields use and is
// documented as a best-guess in DESIGN.md pending confirmation against a
// live API response.
const (
	fieldGoodWithChildren = "animals.isGoodWithChildren"
	fieldGoodWithDogs     = "animals.isGoodWithDogs"
	fieldGoodWithCats     = "animals.isGoodWithCats"
	fieldHouseTrained     = "animals.isHousetrained"
	fieldSpecialNeeds     = "animals.isSpecialNeeds"
	fieldNeedsFoster      = "animals.isNeedsFoster"
	fieldColor            = "animals.colorDetails"
	fieldPattern          = "animals.patternDetails"
	fieldLocationRadius   = "locationRadius"
)

// buildFilters translates SearchFilters into the upstream filter array.
// Species is not included here: it is a path segment, resolved by the
// caller before the request is built.
func buildFilters(f SearchFilters) []Filter {
	var out []Filter

	if f.PostalCode != "" {
		op := "within"
		if f.Miles <= 0 {
			op = "equal"
		}
		out = append(out, Filter{
			FieldName: fieldLocationRadius,
			Operation: op,
			Criteria: map[string]any{
				"postalcode": f.PostalCode,
				"miles":      f.Miles,
			},
		})
	}

	appendBool := func(field string, v *bool) {
		if v != nil {
			out = append(out, Filter{FieldName: field, Operation: "equal", Criteria: *v})
		}
	}
	appendBool(fieldGoodWithChildren, f.GoodWithChildren)
	appendBool(fieldGoodWithDogs, f.GoodWithDogs)
	appendBool(fieldGoodWithCats, f.GoodWithCats)
	appendBool(fieldHouseTrained, f.HouseTrained)
	appendBool(fieldSpecialNeeds, f.SpecialNeeds)
	appendBool(fieldNeedsFoster, f.NeedsFoster)

	if f.Color != "" {
		out = append(out, Filter{FieldName: fieldColor, Operation: "contains", Criteria: f.Color})
	}
	if f.Pattern != "" {
		out = append(out, Filter{FieldName: fieldPattern, Operation: "contains", Criteria: f.Pattern})
	}

	return out
}

// normalizeSort maps the accepted sort names to the upstream sort query
// value, defaulting to Newest for anything unrecognized or empty.
func normalizeSort(sort string) string {
	switch sort {
	case "Distance", "Random", "Newest":
		return sort
	default:
		return "Newest"
	}
}

// clampLimit bounds a requested page size to [1, 100]. The spec leaves the
// over-100 policy as an open question between clamping and rejection;
// clamping is chosen here (documented in DESIGN.md) since it keeps
// search_pets usable for an LLM caller that guesses a round number like
// 250 rather than failing the whole call.
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 100 {
		return 100
	}
	return limit
}
