package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if CardsJSON != "/api/v1/cards.json" {
		t.Fatalf("CardsJSON = %q", CardsJSON)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		segments []string
		want     string
	}{
		{segments: nil, want: "/"},
		{segments: []string{"en"}, want: "/en/"},
		{segments: []string{"fr", "cartes", "prix"}, want: "/fr/cartes/prix/"},
		{segments: []string{"fr", "", "/à-propos/"}, want: "/fr/à-propos/"},
	}
	for _, tt := range tests {
		if got := Join(tt.segments...); got != tt.want {
			t.Fatalf("Join(%q) = %q, want %q", tt.segments, got, tt.want)
		}
	}
	if got := Home("fr"); got != "/fr/" {
		t.Fatalf("Home(fr) = %q, want %q", got, "/fr/")
	}
}

func TestFirstSegment(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/":                  "",
		"":                   "",
		"/en/":               "en",
		"/fr":                "fr",
		"/de/anything/":      "de",
		"/fr/cartes/prix/":   "fr",
		"/api/v1/cards.json": "api",
	}
	for path, want := range tests {
		if got := FirstSegment(path); got != want {
			t.Fatalf("FirstSegment(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestExactPattern(t *testing.T) {
	t.Parallel()

	if got := ExactPattern("GET", "/en/cards/award/"); got != "GET /en/cards/award/{$}" {
		t.Fatalf("ExactPattern = %q", got)
	}
	if got := ExactPattern("GET", "/api/v1/cards.json"); got != "GET /api/v1/cards.json" {
		t.Fatalf("ExactPattern = %q", got)
	}
	if got := ExactPattern("", "/"); got != "/{$}" {
		t.Fatalf("ExactPattern = %q", got)
	}
}
