package routes

// Link is an equivalent page in another language.
type Link struct {
	URL  string
	Name string
}

// LanguageLink is a Link annotated for rendering a language switcher.
type LanguageLink struct {
	Lang   string
	URL    string
	Name   string
	Active bool
}

// Translations returns, for every language that serves the route's page, the
// URL of that page and the language display name. Card pages only list the
// languages the card is translated to. Routes without navigation return nil.
func (t *Table) Translations(route Route) map[string]Link {
	links := t.LanguageLinks(route)
	if links == nil {
		return nil
	}
	out := make(map[string]Link, len(links))
	for _, link := range links {
		out[link.Lang] = Link{URL: link.URL, Name: link.Name}
	}
	return out
}

// LanguageLinks is Translations in catalog language order, with the route's
// own language marked active.
func (t *Table) LanguageLinks(route Route) []LanguageLink {
	if !route.Page.Kind.Localized() {
		return nil
	}
	var candidates []string
	if route.Page.Kind.IsCard() {
		card, ok := t.catalog.Card(route.Page.CardID)
		if !ok {
			return nil
		}
		for _, lang := range t.catalog.Languages() {
			if _, ok := card.Name(lang.ID); ok {
				candidates = append(candidates, lang.ID)
			}
		}
	} else {
		for _, lang := range t.catalog.Languages() {
			candidates = append(candidates, lang.ID)
		}
	}

	links := make([]LanguageLink, 0, len(candidates))
	for _, langID := range candidates {
		url, ok := t.URLFor(route.Page, langID)
		if !ok {
			continue
		}
		lang, _ := t.catalog.Language(langID)
		links = append(links, LanguageLink{
			Lang:   langID,
			URL:    url,
			Name:   lang.Name,
			Active: langID == route.Lang,
		})
	}
	return links
}
