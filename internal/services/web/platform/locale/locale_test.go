package locale

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/whogoesfirst/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	return c
}

func TestFromPath(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "en"},
		{path: "/en/", want: "en"},
		{path: "/fr/", want: "fr"},
		{path: "/fr/cartes/prix/à-propos/", want: "fr"},
		{path: "/de/anything/", want: "en"},
		{path: "/api/v1/cards.json", want: "en"},
		{path: "/french/", want: "en"},
	}
	for _, tt := range tests {
		if got := FromPath(tt.path, c).ID; got != tt.want {
			t.Fatalf("FromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFromContextWithoutLanguage(t *testing.T) {
	t.Parallel()

	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("expected no language in empty context")
	}
}

func TestMiddlewareStoresLanguagePerRequest(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	var got []string
	h := Middleware(c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang, ok := FromContext(r.Context())
		if !ok {
			t.Fatalf("language missing from context for %s", r.URL.Path)
		}
		got = append(got, lang.ID)
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, path := range []string{"/fr/cartes/prix/", "/en/cards/award/", "/de/anything/"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
		}
	}
	want := []string{"fr", "en", "en"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("languages = %v, want %v", got, want)
		}
	}
}
