package format

import "strconv"

// fallback is rendered for any field that is missing, empty, or of an
// unexpected type — formatters must tolerate a ragged upstream schema
// rather than fail the whole tool call over one absent field.
const fallback = "—"

// item is one JSON:API resource object: {"id": ..., "type": ..., "attributes": {...}}.
type item map[string]any

// asItems normalizes a Doc's "data" member, which upstream returns as
// either a bare object (single-resource GET) or an array (search/list), into
// a uniform slice.
func asItems(doc map[string]any) []item {
	data, ok := doc["data"]
	if !ok {
		return nil
	}
	switch v := data.(type) {
	case []any:
		out := make([]item, 0, len(v))
		for _, raw := range v {
			if m, ok := raw.(map[string]any); ok {
				out = append(out, item(m))
			}
		}
		return out
	case map[string]any:
		return []item{item(v)}
	default:
		return nil
	}
}

func (it item) id() string {
	if v, ok := it["id"]; ok {
		return toStr(v)
	}
	return ""
}

func (it item) attrs() map[string]any {
	a, _ := it["attributes"].(map[string]any)
	return a
}

func (it item) str(field string) string {
	a := it.attrs()
	if a == nil {
		return fallback
	}
	v, ok := a[field]
	if !ok || v == nil {
		return fallback
	}
	s := toStr(v)
	if s == "" {
		return fallback
	}
	return s
}

func toStr(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return trimFloat(t)
	case bool:
		if t {
			return "yes"
		}
		return "no"
	default:
		return ""
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
