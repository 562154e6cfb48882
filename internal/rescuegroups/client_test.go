package rescuegroups

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rescuegate/rescuegate/internal/cache"
	"github.com/rescuegate/rescuegate/internal/errs"
	"github.com/rescuegate/rescuegate/internal/ratelimit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := cache.New(cache.DefaultTTL, cache.DefaultMaxEntries)
	t.Cleanup(c.Stop)
	limiter := ratelimit.New(1000, 1)
	return New(srv.URL, "test-api-key", c, limiter)
}

func TestGetAnimalSendsAuthorizationHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "1", "attributes": map[string]any{"name": "Fido"}},
		})
	})

	_, err := client.GetAnimal(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "test-api-key" {
		t.Fatalf("Authorization header = %q, want test-api-key", gotAuth)
	}
}

func TestGetAnimalMapsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetAnimal(context.Background(), "missing")
	e := errs.As(err)
	if e.Kind != errs.KindNotFound {
		t.Fatalf("got kind %s, want not_found", e.Kind)
	}
}

func TestGetAnimalMapsUpstreamErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetAnimal(context.Background(), "1")
	e := errs.As(err)
	if e.Kind != errs.KindUpstream || e.Status != http.StatusBadGateway {
		t.Fatalf("got %+v, want upstream error with status 502", e)
	}
}

func TestGetAnimalMapsEmptyDataArrayToNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := client.GetAnimal(context.Background(), "1")
	e := errs.As(err)
	if e.Kind != errs.KindNotFound {
		t.Fatalf("got kind %s, want not_found for an empty data array", e.Kind)
	}
}

func TestDoCachesIdenticalRequests(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "1", "attributes": map[string]any{}},
		})
	})

	for i := 0; i < 3; i++ {
		if _, err := client.GetAnimal(context.Background(), "1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("upstream called %d times, want 1 (cache should collapse repeats)", got)
	}
}

func TestSearchPetsPostsFiltersAndDefaultsSpecies(t *testing.T) {
	var gotPath, gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := client.SearchPets(context.Background(), SearchFilters{})
	e := errs.As(err)
	if e.Kind != errs.KindNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotPath != "/public/animals/search/available/dogs" {
		t.Fatalf("path = %q, want the default dogs species path", gotPath)
	}
}

func TestResolveSpeciesIDMatchesCaseInsensitively(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []any{
				map[string]any{
					"id": "2",
					"attributes": map[string]any{
						"name": "Cats", "singular": "Cat", "plural": "Cats",
					},
				},
			},
		})
	})

	id, err := client.ResolveSpeciesID(context.Background(), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "2" {
		t.Fatalf("got id %q, want 2", id)
	}
}

func TestResolveSpeciesIDUnknownReturnsValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := client.ResolveSpeciesID(context.Background(), "dragon")
	e := errs.As(err)
	if e.Kind != errs.KindValidation {
		t.Fatalf("got kind %s, want validation", e.Kind)
	}
}
