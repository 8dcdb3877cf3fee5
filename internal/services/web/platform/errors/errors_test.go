package errors

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(E(KindNotFound, "missing")); got != http.StatusNotFound {
		t.Fatalf("not found status = %d, want %d", got, http.StatusNotFound)
	}
	if got := HTTPStatus(Wrap(KindTemplate, "render", fs.ErrNotExist)); got != http.StatusInternalServerError {
		t.Fatalf("template status = %d, want %d", got, http.StatusInternalServerError)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("nil status = %d, want %d", got, http.StatusOK)
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	err := Wrap(KindTemplate, `template "pizza"`, fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if KindOf(err) != KindTemplate {
		t.Fatalf("KindOf() = %q, want %q", KindOf(err), KindTemplate)
	}
	if !strings.Contains(err.Error(), `template "pizza"`) {
		t.Fatalf("Error() = %q", err.Error())
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatal("expected unknown kind for plain errors")
	}
}
