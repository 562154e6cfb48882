package cache

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Key fingerprints an upstream request as (path, canonical query, body).
// Query parameters are sorted by name so that equivalent requests built in
// a different argument order still collide on the same cache key.
func Key(path string, query map[string]string, body []byte) uint64 {
	var b strings.Builder
	b.WriteString(path)
	b.WriteByte('\n')

	names := make([]string, 0, len(query))
	for k := range query {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(query[k])
		b.WriteByte('&')
	}
	b.WriteByte('\n')
	b.Write(body)

	return xxhash.Sum64String(b.String())
}
