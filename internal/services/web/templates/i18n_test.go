package templates

import (
	"fmt"
	"testing"

	"golang.org/x/text/message"
)

type fakeLocalizer map[string]string

func (f fakeLocalizer) Sprintf(key message.Reference, args ...any) string {
	keyString, _ := key.(string)
	if value, ok := f[keyString]; ok {
		return fmt.Sprintf(value, args...)
	}
	return keyString
}

func TestT_NilLocalizer(t *testing.T) {
	got := T(nil, "some.key")
	if got != "some.key" {
		t.Fatalf("T(nil, ...) = %q, want %q", got, "some.key")
	}
}

func TestT_NilLocalizerFormatsArgs(t *testing.T) {
	got := T(nil, "card %s", "award")
	if got != "card award" {
		t.Fatalf("T(nil, ...) = %q, want %q", got, "card award")
	}
}

func TestT_NilLocalizerNonStringKey(t *testing.T) {
	got := T(nil, 42)
	if got != "" {
		t.Fatalf("T(nil, 42) = %q, want empty", got)
	}
}

func TestT_UsesLocalizer(t *testing.T) {
	loc := fakeLocalizer{"nav.home": "Accueil"}
	if got := T(loc, "nav.home"); got != "Accueil" {
		t.Fatalf("T(loc, nav.home) = %q, want %q", got, "Accueil")
	}
}
