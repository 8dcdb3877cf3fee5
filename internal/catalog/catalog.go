// Package catalog holds the language and card registries served by the site.
//
// A Catalog is built once at startup and never mutated afterwards, so it can be
// shared by every request without locking.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Section keys every Language must translate.
const (
	SectionAbout      = "about"
	SectionCards      = "cards"
	SectionRandomCard = "random-card"
)

// SectionKeys lists the section keys used by route derivation.
var SectionKeys = []string{SectionAbout, SectionCards, SectionRandomCard}

var (
	// ErrInvalidLanguage reports a malformed language entry.
	ErrInvalidLanguage = errors.New("invalid language")
	// ErrInvalidCard reports a malformed card entry.
	ErrInvalidCard = errors.New("invalid card")
)

// Language describes one supported site language.
type Language struct {
	ID       string
	Name     string
	Sections map[string]string
}

// Section returns the localized path segment for a section key.
func (l Language) Section(key string) string {
	return l.Sections[key]
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	return language.Make(l.ID)
}

// Card is one conversation-starter card and its localized slugs.
type Card struct {
	ID    string
	Names map[string]string
}

// Name returns the card slug for a language.
func (c Card) Name(lang string) (string, bool) {
	name, ok := c.Names[lang]
	return name, ok
}

// Languages returns the language IDs the card is translated to, sorted.
func (c Card) Languages() []string {
	out := make([]string, 0, len(c.Names))
	for lang := range c.Names {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Catalog is the immutable registry of languages and cards.
type Catalog struct {
	defaultLang string
	languages   map[string]Language
	langOrder   []string
	cards       map[string]Card
	cardOrder   []string
	matcher     language.Matcher
}

// New validates and indexes the given languages and cards.
func New(defaultLang string, languages []Language, cards []Card) (*Catalog, error) {
	defaultLang = strings.TrimSpace(defaultLang)
	c := &Catalog{
		defaultLang: defaultLang,
		languages:   make(map[string]Language, len(languages)),
		cards:       make(map[string]Card, len(cards)),
	}

	for _, lang := range languages {
		if strings.TrimSpace(lang.ID) == "" {
			return nil, fmt.Errorf("%w: id is required", ErrInvalidLanguage)
		}
		if strings.Contains(lang.ID, "/") {
			return nil, fmt.Errorf("%w: id %q contains a slash", ErrInvalidLanguage, lang.ID)
		}
		if _, exists := c.languages[lang.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidLanguage, lang.ID)
		}
		sections := make(map[string]string, len(lang.Sections))
		for _, key := range SectionKeys {
			segment := strings.TrimSpace(lang.Sections[key])
			if segment == "" {
				return nil, fmt.Errorf("%w: %q has no %q section", ErrInvalidLanguage, lang.ID, key)
			}
			if strings.Contains(segment, "/") {
				return nil, fmt.Errorf("%w: %q section %q contains a slash", ErrInvalidLanguage, lang.ID, key)
			}
			sections[key] = segment
		}
		c.languages[lang.ID] = Language{ID: lang.ID, Name: lang.Name, Sections: sections}
		c.langOrder = append(c.langOrder, lang.ID)
	}
	if _, ok := c.languages[defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q is not registered", ErrInvalidLanguage, defaultLang)
	}
	sort.SliceStable(c.langOrder, func(i, j int) bool {
		if c.langOrder[i] == defaultLang || c.langOrder[j] == defaultLang {
			return c.langOrder[i] == defaultLang
		}
		return c.langOrder[i] < c.langOrder[j]
	})

	for _, card := range cards {
		if strings.TrimSpace(card.ID) == "" {
			return nil, fmt.Errorf("%w: id is required", ErrInvalidCard)
		}
		if _, exists := c.cards[card.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCard, card.ID)
		}
		if _, ok := card.Names[defaultLang]; !ok {
			return nil, fmt.Errorf("%w: %q has no %q name", ErrInvalidCard, card.ID, defaultLang)
		}
		names := make(map[string]string, len(card.Names))
		for lang, name := range card.Names {
			if _, ok := c.languages[lang]; !ok {
				return nil, fmt.Errorf("%w: %q names unknown language %q", ErrInvalidCard, card.ID, lang)
			}
			name = strings.TrimSpace(name)
			if name == "" || strings.Contains(name, "/") {
				return nil, fmt.Errorf("%w: %q has invalid %q name %q", ErrInvalidCard, card.ID, lang, name)
			}
			names[lang] = name
		}
		c.cards[card.ID] = Card{ID: card.ID, Names: names}
		c.cardOrder = append(c.cardOrder, card.ID)
	}
	sort.Strings(c.cardOrder)

	tags := make([]language.Tag, 0, len(c.langOrder))
	for _, id := range c.langOrder {
		tags = append(tags, c.languages[id].Tag())
	}
	c.matcher = language.NewMatcher(tags)
	return c, nil
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() Language {
	return c.languages[c.defaultLang]
}

// Language looks up a registered language.
func (c *Catalog) Language(id string) (Language, bool) {
	lang, ok := c.languages[id]
	return lang, ok
}

// LanguageOrDefault returns the language for id, or the default language when
// id is not registered.
func (c *Catalog) LanguageOrDefault(id string) Language {
	if lang, ok := c.languages[id]; ok {
		return lang
	}
	return c.DefaultLanguage()
}

// Languages returns every language, default first.
func (c *Catalog) Languages() []Language {
	out := make([]Language, 0, len(c.langOrder))
	for _, id := range c.langOrder {
		out = append(out, c.languages[id])
	}
	return out
}

// Card looks up a card by ID.
func (c *Catalog) Card(id string) (Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// Cards returns every card sorted by ID.
func (c *Catalog) Cards() []Card {
	out := make([]Card, 0, len(c.cardOrder))
	for _, id := range c.cardOrder {
		out = append(out, c.cards[id])
	}
	return out
}

// Match picks the registered language closest to the preferred tags.
func (c *Catalog) Match(preferred ...language.Tag) Language {
	if len(preferred) == 0 {
		return c.DefaultLanguage()
	}
	_, index, confidence := c.matcher.Match(preferred...)
	if confidence == language.No || index < 0 || index >= len(c.langOrder) {
		return c.DefaultLanguage()
	}
	return c.languages[c.langOrder[index]]
}
