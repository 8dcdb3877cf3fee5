package routes

import (
	"errors"
	"fmt"

	"github.com/louisbranch/whogoesfirst/internal/catalog"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routepath"
)

var (
	// ErrDuplicatePath reports two routes deriving the same path.
	ErrDuplicatePath = errors.New("duplicate route path")
	// ErrDuplicateEndpoint reports two routes sharing an endpoint name.
	ErrDuplicateEndpoint = errors.New("duplicate route endpoint")
)

type pageLang struct {
	page Page
	lang string
}

// Table is the immutable set of routes served by the site.
type Table struct {
	catalog    *catalog.Catalog
	routes     []Route
	byPath     map[string]int
	byEndpoint map[string]int
	byPage     map[pageLang]int
	cards      CardsDocument
}

// Build derives every route for the catalog. A derived path or endpoint that
// collides with an earlier one is an error; nothing is overwritten.
func Build(c *catalog.Catalog) (*Table, error) {
	if c == nil {
		return nil, errors.New("catalog is required")
	}
	t := &Table{
		catalog:    c,
		byPath:     map[string]int{},
		byEndpoint: map[string]int{},
		byPage:     map[pageLang]int{},
		cards:      BuildCardsDocument(c),
	}

	if err := t.add(routepath.Root, Redirect, ""); err != nil {
		return nil, err
	}
	if err := t.add(routepath.Health, Health, ""); err != nil {
		return nil, err
	}
	if err := t.add(routepath.CardsJSON, CardsJSON, ""); err != nil {
		return nil, err
	}

	for _, lang := range c.Languages() {
		if err := t.add(routepath.Home(lang.ID), Home, lang.ID); err != nil {
			return nil, err
		}
		if err := t.add(SectionPath(lang, catalog.SectionAbout), AboutIndex, lang.ID); err != nil {
			return nil, err
		}
		if err := t.add(SectionPath(lang, catalog.SectionRandomCard), RandomCard, lang.ID); err != nil {
			return nil, err
		}
	}

	for _, card := range c.Cards() {
		for _, langID := range card.Languages() {
			lang, ok := c.Language(langID)
			if !ok {
				continue
			}
			name, _ := card.Name(langID)
			if err := t.add(CardPath(lang, name), Card(card.ID), langID); err != nil {
				return nil, err
			}
			if err := t.add(CardAboutPath(lang, name), CardAbout(card.ID), langID); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func (t *Table) add(path string, page Page, lang string) error {
	endpoint := Endpoint(page, lang)
	if idx, exists := t.byPath[path]; exists {
		return fmt.Errorf("%w: %q for %s and %s", ErrDuplicatePath, path, t.routes[idx].Endpoint, endpoint)
	}
	if _, exists := t.byEndpoint[endpoint]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateEndpoint, endpoint)
	}
	idx := len(t.routes)
	t.routes = append(t.routes, Route{Path: path, Page: page, Lang: lang, Endpoint: endpoint})
	t.byPath[path] = idx
	t.byEndpoint[endpoint] = idx
	t.byPage[pageLang{page: page, lang: lang}] = idx
	return nil
}

// Catalog returns the catalog the table was built from.
func (t *Table) Catalog() *catalog.Catalog {
	return t.catalog
}

// Routes returns every route in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup returns the route registered at path.
func (t *Table) Lookup(path string) (Route, bool) {
	idx, ok := t.byPath[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[idx], true
}

// ByEndpoint returns the route registered under an endpoint name.
func (t *Table) ByEndpoint(endpoint string) (Route, bool) {
	idx, ok := t.byEndpoint[endpoint]
	if !ok {
		return Route{}, false
	}
	return t.routes[idx], true
}

// URLFor reverse-resolves a page in a language to its registered path.
func (t *Table) URLFor(page Page, lang string) (string, bool) {
	idx, ok := t.byPage[pageLang{page: page, lang: lang}]
	if !ok {
		return "", false
	}
	return t.routes[idx].Path, true
}

// CardsDocument returns the JSON listing of the catalog.
func (t *Table) CardsDocument() CardsDocument {
	return t.cards
}
