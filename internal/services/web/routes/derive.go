package routes

import (
	"github.com/louisbranch/whogoesfirst/internal/catalog"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routepath"
)

// SectionPath returns the path of a top-level localized section.
func SectionPath(lang catalog.Language, section string) string {
	return routepath.Join(lang.ID, lang.Section(section))
}

// CardPath returns the public path of a card translated as name in lang.
func CardPath(lang catalog.Language, name string) string {
	return routepath.Join(lang.ID, lang.Section(catalog.SectionCards), name)
}

// CardAboutPath returns the path of the card detail page.
func CardAboutPath(lang catalog.Language, name string) string {
	return CardPath(lang, name) + lang.Section(catalog.SectionAbout) + "/"
}

// CardEntry is one card translation in the JSON listing.
type CardEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CardsDocument maps card ID to language ID to its translated entry.
type CardsDocument map[string]map[string]CardEntry

// BuildCardsDocument derives the JSON listing of the whole catalog. Cards
// appear only under the languages they are translated to.
func BuildCardsDocument(c *catalog.Catalog) CardsDocument {
	doc := make(CardsDocument)
	for _, card := range c.Cards() {
		entries := make(map[string]CardEntry, len(card.Names))
		for _, langID := range card.Languages() {
			lang, ok := c.Language(langID)
			if !ok {
				continue
			}
			name, _ := card.Name(langID)
			entries[langID] = CardEntry{Name: name, URL: CardPath(lang, name)}
		}
		doc[card.ID] = entries
	}
	return doc
}
