package rescuegroups

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rescuegate/rescuegate/internal/cache"
	"github.com/rescuegate/rescuegate/internal/errs"
	"github.com/rescuegate/rescuegate/internal/metrics"
	"github.com/rescuegate/rescuegate/internal/ratelimit"
)

// slowAcquireThreshold is the minimum observed Acquire latency treated as
// "this call actually waited on the limiter" rather than taking the
// limiter's fast, non-blocking path.
const slowAcquireThreshold = time.Millisecond

// connectTimeout and totalTimeout bound every upstream call per the design:
// connect timeout <= 10s, total timeout <= 30s. The transport also sets a
// TLS 1.2 floor and bounds idle connections.
const (
	connectTimeout      = 10 * time.Second
	totalTimeout        = 30 * time.Second
	maxResponseBodySize = 10 << 20 // 10MB
)

// Client is the typed, cache-backed, limiter-gated RescueGroups.org client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *cache.Cache
	limiter    ratelimit.Limiter
	metrics    *metrics.Metrics
}

// New constructs a Client. baseURL should have no trailing slash.
func New(baseURL, apiKey string, c *cache.Cache, limiter ratelimit.Limiter) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   totalTimeout,
			Transport: transport,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		cache:   c,
		limiter: limiter,
	}
}

// SetMetrics attaches the gateway's Prometheus instrumentation. m may be
// nil, in which case the client records nothing — used by CLI call sites
// that have no metrics registry running.
func (c *Client) SetMetrics(m *metrics.Metrics) {
	c.metrics = m
}

// request describes one upstream call, ready to be cached and executed.
type request struct {
	method string
	path   string
	query  map[string]string
	body   any // marshaled as {"data": body} for POST, nil for GET
}

// do is the single chokepoint every operation funnels through: cache
// lookup, limiter-gated network call on miss, and JSON decoding into Doc.
// A token is drawn from the limiter if and only if the loader actually
// runs a network request — cache hits never touch the limiter.
func (c *Client) do(ctx context.Context, req request) (Doc, error) {
	var bodyBytes []byte
	if req.body != nil {
		b, err := json.Marshal(map[string]any{"data": req.body})
		if err != nil {
			return nil, errs.Internal("encode request body: %v", err)
		}
		bodyBytes = b
	}

	key := cache.Key(req.path, req.query, bodyBytes)

	value, _, err := c.cache.GetOrCompute(ctx, key, func(ctx context.Context) (any, error) {
		waitStart := time.Now()
		if err := c.limiter.Acquire(ctx); err != nil {
			c.recordUpstreamCall("rate_limited")
			return nil, err
		}
		if c.metrics != nil && time.Since(waitStart) > slowAcquireThreshold {
			c.metrics.RateLimitWaits.Inc()
		}

		doc, err := c.execute(ctx, req, bodyBytes)
		if err != nil {
			c.recordUpstreamCall(string(errs.As(err).Kind))
		} else {
			c.recordUpstreamCall("success")
		}
		return doc, err
	})
	if err != nil {
		return nil, err
	}
	return value.(Doc), nil
}

// recordUpstreamCall is a no-op when no metrics registry is attached, which
// is the normal case for the CLI's one-shot tool invocations.
func (c *Client) recordUpstreamCall(outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.UpstreamCalls.WithLabelValues(outcome).Inc()
}

func (c *Client) execute(ctx context.Context, req request, bodyBytes []byte) (Doc, error) {
	u, err := url.Parse(c.baseURL + req.path)
	if err != nil {
		return nil, errs.Internal("build request URL: %v", err)
	}
	if len(req.query) > 0 {
		q := u.Query()
		for k, v := range req.query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), bodyReader)
	if err != nil {
		return nil, errs.Internal("build request: %v", err)
	}
	httpReq.Header.Set("Authorization", c.apiKey)
	if bodyBytes != nil {
		httpReq.Header.Set("Content-Type", "application/vnd.api+json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errs.Upstream(0, "upstream request cancelled: %v", ctx.Err())
		}
		return nil, errs.Upstream(0, "upstream request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	limited := io.LimitReader(resp.Body, maxResponseBodySize)
	payload, err := io.ReadAll(limited)
	if err != nil {
		return nil, errs.Upstream(resp.StatusCode, "reading upstream response: %v", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.NotFound("upstream resource not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.Upstream(resp.StatusCode, "upstream returned status %d", resp.StatusCode)
	}

	var doc Doc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, errs.Upstream(resp.StatusCode, "malformed upstream JSON: %v", err)
	}

	if isEmptyDataArray(doc) {
		return nil, errs.NotFound("upstream returned no matching records")
	}

	return doc, nil
}

func isEmptyDataArray(doc Doc) bool {
	data, ok := doc["data"]
	if !ok {
		return false
	}
	arr, ok := data.([]any)
	return ok && len(arr) == 0
}

// SearchPets implements the full filtered animal search.
func (c *Client) SearchPets(ctx context.Context, f SearchFilters) (Doc, error) {
	species := f.Species
	if species == "" {
		species = "dogs"
	}
	limit := clampLimit(f.Limit)

	query := map[string]string{
		"sort":  normalizeSort(f.Sort),
		"limit": strconv.Itoa(limit),
	}
	if f.IncludeOrgs {
		query["include"] = "orgs"
	}

	body := map[string]any{"filters": buildFilters(f)}

	return c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/public/animals/search/available/%s", species),
		query:  query,
		body:   body,
	})
}

// ListPets returns the most recent adoptable animals with no filters.
func (c *Client) ListPets(ctx context.Context, limit int) (Doc, error) {
	return c.SearchPets(ctx, SearchFilters{Sort: "Newest", Limit: limit})
}

// GetAnimal fetches a single animal by id.
func (c *Client) GetAnimal(ctx context.Context, id string) (Doc, error) {
	return c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/public/animals/%s", id)})
}

// GetContact fetches an animal plus its organization's contact info.
func (c *Client) GetContact(ctx context.Context, id string) (Doc, error) {
	return c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/public/animals/%s", id),
		query:  map[string]string{"include": "orgs"},
	})
}

// ListAdopted returns already-adopted animals matching a location filter.
func (c *Client) ListAdopted(ctx context.Context, species, postalCode string, miles, limit int) (Doc, error) {
	if species == "" {
		species = "dogs"
	}
	op := "within"
	if miles <= 0 {
		op = "equal"
	}
	filters := []Filter{{
		FieldName: fieldLocationRadius,
		Operation: op,
		Criteria:  map[string]any{"postalcode": postalCode, "miles": miles},
	}}
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/public/animals/search/adopted/%s", species),
		query:  map[string]string{"limit": strconv.Itoa(clampLimit(limit))},
		body:   map[string]any{"filters": filters},
	})
}

// SearchOrgs looks up rescue organizations, by name when query is set or by
// location otherwise.
func (c *Client) SearchOrgs(ctx context.Context, postalCode, query string, miles, limit int) (Doc, error) {
	var filters []Filter
	if query != "" {
		filters = append(filters, Filter{FieldName: "orgs.name", Operation: "contains", Criteria: query})
	} else {
		op := "within"
		if miles <= 0 {
			op = "equal"
		}
		filters = append(filters, Filter{
			FieldName: fieldLocationRadius,
			Operation: op,
			Criteria:  map[string]any{"postalcode": postalCode, "miles": miles},
		})
	}
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/public/orgs/search",
		query:  map[string]string{"limit": strconv.Itoa(clampLimit(limit))},
		body:   map[string]any{"filters": filters},
	})
}

// GetOrg fetches a single organization by id.
func (c *Client) GetOrg(ctx context.Context, id string) (Doc, error) {
	return c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/public/orgs/%s", id)})
}

// ListOrgAnimals returns adoptable animals belonging to one organization.
func (c *Client) ListOrgAnimals(ctx context.Context, orgID string, limit int) (Doc, error) {
	filters := []Filter{{FieldName: "orgs.id", Operation: "equal", Criteria: orgID}}
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/public/animals/search/available/all",
		query:  map[string]string{"limit": strconv.Itoa(clampLimit(limit))},
		body:   map[string]any{"filters": filters},
	})
}

// ListSpecies returns every recognized species.
func (c *Client) ListSpecies(ctx context.Context) (Doc, error) {
	return c.do(ctx, request{method: http.MethodGet, path: "/public/animals/species"})
}

// ResolveSpeciesID looks up a species id by slug or display name,
// case-insensitively matching either the singular or plural name.
func (c *Client) ResolveSpeciesID(ctx context.Context, slugOrName string) (string, error) {
	doc, err := c.ListSpecies(ctx)
	if err != nil {
		// An empty species list means nothing can match the requested name.
		if e := errs.As(err); e.Kind == errs.KindNotFound {
			return "", errs.Validation("species", "unknown species %q", slugOrName)
		}
		return "", err
	}
	needle := strings.ToLower(strings.TrimSpace(slugOrName))

	data, _ := doc["data"].([]any)
	for _, item := range data {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, _ := obj["id"].(string)
		attrs, _ := obj["attributes"].(map[string]any)
		if attrs == nil {
			continue
		}
		for _, field := range []string{"name", "singular", "plural"} {
			if v, ok := attrs[field].(string); ok && strings.ToLower(v) == needle {
				return id, nil
			}
		}
	}
	return "", errs.Validation("species", "unknown species %q", slugOrName)
}

// ListBreeds returns the breeds for a species name or slug, resolving it to
// an id first.
func (c *Client) ListBreeds(ctx context.Context, species string) (Doc, error) {
	id, err := c.ResolveSpeciesID(ctx, species)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/public/animals/species/%s/breeds", id)})
}

// GetBreed fetches a single breed by id.
func (c *Client) GetBreed(ctx context.Context, breedID string) (Doc, error) {
	return c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/public/animals/breeds/%s", breedID)})
}

// ListMetadata fetches one metadata kind, optionally scoped to a species.
func (c *Client) ListMetadata(ctx context.Context, kind, species string) (Doc, error) {
	if species == "" {
		return c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/public/animals/metadata/%s", kind)})
	}
	id, err := c.ResolveSpeciesID(ctx, species)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/public/animals/species/%s/%s", id, kind)})
}

// ListMetadataTypes returns the static set of recognized metadata kinds.
// No network round trip: this list is fixed by the upstream API shape.
func (c *Client) ListMetadataTypes() []string {
	return MetadataKinds
}
