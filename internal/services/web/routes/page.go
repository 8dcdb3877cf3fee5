// Package routes derives the localized route table for the card catalog and
// maps rendered pages back to their equivalents in other languages.
package routes

import (
	"fmt"
	"strings"
)

// Kind enumerates the page families served by the site.
type Kind int

const (
	KindRedirect Kind = iota
	KindHealth
	KindCardsJSON
	KindHome
	KindAboutIndex
	KindRandomCard
	KindCard
	KindCardAbout
)

func (k Kind) String() string {
	switch k {
	case KindRedirect:
		return "redirect"
	case KindHealth:
		return "health"
	case KindCardsJSON:
		return "cards_json"
	case KindHome:
		return "home"
	case KindAboutIndex:
		return "about_index"
	case KindRandomCard:
		return "random_card"
	case KindCard:
		return "card"
	case KindCardAbout:
		return "card_about"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Localized reports whether pages of this kind exist once per language and
// carry cross-language navigation.
func (k Kind) Localized() bool {
	switch k {
	case KindHome, KindAboutIndex, KindRandomCard, KindCard, KindCardAbout:
		return true
	default:
		return false
	}
}

// IsCard reports whether the kind belongs to a single card.
func (k Kind) IsCard() bool {
	return k == KindCard || k == KindCardAbout
}

// Page identifies a logical page independent of its language.
type Page struct {
	Kind   Kind
	CardID string
}

// Page constructors.
var (
	Redirect   = Page{Kind: KindRedirect}
	Health     = Page{Kind: KindHealth}
	CardsJSON  = Page{Kind: KindCardsJSON}
	Home       = Page{Kind: KindHome}
	AboutIndex = Page{Kind: KindAboutIndex}
	RandomCard = Page{Kind: KindRandomCard}
)

// Card returns the page for one card.
func Card(id string) Page {
	return Page{Kind: KindCard, CardID: id}
}

// CardAbout returns the about page for one card.
func CardAbout(id string) Page {
	return Page{Kind: KindCardAbout, CardID: id}
}

// Key returns the language-independent page key used in endpoint names.
func (p Page) Key() string {
	switch p.Kind {
	case KindRedirect:
		return "redirect_home_page"
	case KindHealth:
		return "health"
	case KindCardsJSON:
		return "api_v1_cards"
	case KindHome:
		return "index"
	case KindAboutIndex:
		return "about_index"
	case KindRandomCard:
		return "random_card"
	case KindCard:
		return p.CardID
	case KindCardAbout:
		return "about_" + p.CardID
	default:
		return p.Kind.String()
	}
}

// TemplateName returns the name of the template rendering the page body.
// Card IDs use hyphens; template names use underscores.
func (p Page) TemplateName() string {
	switch p.Kind {
	case KindRedirect:
		return "redirect"
	case KindCard:
		return cardTemplate(p.CardID)
	case KindCardAbout:
		return "about_" + cardTemplate(p.CardID)
	default:
		return p.Key()
	}
}

func cardTemplate(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

// Endpoint returns the endpoint name for a page in a language. Pages that are
// not localized use the bare page key.
func Endpoint(page Page, lang string) string {
	if lang == "" {
		return page.Key()
	}
	return page.Key() + "_" + lang
}

// Route is one entry of the route table.
type Route struct {
	Path     string
	Page     Page
	Lang     string
	Endpoint string
}
