package web

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/whogoesfirst/internal/catalog"
	apperrors "github.com/louisbranch/whogoesfirst/internal/services/web/platform/errors"
	"github.com/louisbranch/whogoesfirst/internal/services/web/platform/httpx"
	"github.com/louisbranch/whogoesfirst/internal/services/web/platform/locale"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routepath"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routes"
	"github.com/louisbranch/whogoesfirst/internal/services/web/templates"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// deckCard is one entry of the random card page.
type deckCard struct {
	ID       string
	Name     string
	URL      string
	Lang     string
	LangName string
	// Fallback is set when the card is only served in another language.
	Fallback bool
}

// requestLanguage returns the language chosen by the locale middleware.
func (h *handler) requestLanguage(r *http.Request) catalog.Language {
	if lang, ok := locale.FromContext(httpx.RequestContext(r)); ok {
		return lang
	}
	return locale.FromPath(r.URL.Path, h.catalog)
}

func (h *handler) localizer(lang catalog.Language) templates.Localizer {
	return h.messages.Printer(lang.Tag())
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request, route routes.Route) {
	lang := h.requestLanguage(r)
	loc := h.localizer(lang)
	data := h.pageData(route, lang, loc)

	body, err := h.renderer.Page(route.Page.TemplateName(), data)
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindTemplate, "resolve page template", err))
		return
	}
	page := h.pageContext(lang, loc, h.table.LanguageLinks(route))
	page.Title = pageTitle(route, data, loc)
	h.writeLayout(w, r, http.StatusOK, page, body)
}

func (h *handler) pageContext(lang catalog.Language, loc templates.Localizer, links []routes.LanguageLink) templates.PageContext {
	home, _ := h.table.URLFor(routes.Home, lang.ID)
	about, _ := h.table.URLFor(routes.AboutIndex, lang.ID)
	random, _ := h.table.URLFor(routes.RandomCard, lang.ID)
	return templates.PageContext{
		Lang:        lang.ID,
		Loc:         loc,
		AnalyticsID: h.config.AnalyticsID,
		Nav:         templates.NavLinks{Home: home, About: about, RandomCard: random},
		Languages:   links,
	}
}

// pageData builds the values page templates read.
func (h *handler) pageData(route routes.Route, lang catalog.Language, loc templates.Localizer) map[string]any {
	home, _ := h.table.URLFor(routes.Home, lang.ID)
	about, _ := h.table.URLFor(routes.AboutIndex, lang.ID)
	random, _ := h.table.URLFor(routes.RandomCard, lang.ID)
	data := map[string]any{
		"Lang": lang.ID,
		"T": func(key string, args ...any) string {
			return templates.T(loc, key, args...)
		},
		"HomeURL":      home,
		"AboutURL":     about,
		"RandomURL":    random,
		"CardsJSONURL": routepath.CardsJSON,
	}

	switch route.Page.Kind {
	case routes.KindCard, routes.KindCardAbout:
		card, _ := h.catalog.Card(route.Page.CardID)
		name, _ := card.Name(lang.ID)
		cardURL, _ := h.table.URLFor(routes.Card(card.ID), lang.ID)
		cardAboutURL, _ := h.table.URLFor(routes.CardAbout(card.ID), lang.ID)
		data["CardID"] = card.ID
		data["CardName"] = name
		data["CardURL"] = cardURL
		data["AboutURL"] = cardAboutURL
		data["Translations"] = h.table.Translations(route)
		if next, ok := h.nextCard(card.ID, lang); ok {
			data["NextURL"] = next.URL
		}
	case routes.KindAboutIndex:
		data["GlobalTranslations"] = h.homeLinks(lang)
	case routes.KindRandomCard:
		deck := h.deck(lang)
		data["Cards"] = deck
		if len(deck) > 0 {
			data["Pick"] = deck[h.pick(len(deck))]
		}
	}
	return data
}

// deck lists every card, linking to its page in lang or, when the card is not
// translated, in the default language.
func (h *handler) deck(lang catalog.Language) []deckCard {
	fallback := h.catalog.DefaultLanguage()
	cards := h.catalog.Cards()
	out := make([]deckCard, 0, len(cards))
	for _, card := range cards {
		target := lang
		name, ok := card.Name(lang.ID)
		if !ok {
			target = fallback
			name, _ = card.Name(fallback.ID)
		}
		url, ok := h.table.URLFor(routes.Card(card.ID), target.ID)
		if !ok {
			continue
		}
		out = append(out, deckCard{
			ID:       card.ID,
			Name:     name,
			URL:      url,
			Lang:     target.ID,
			LangName: target.Name,
			Fallback: target.ID != lang.ID,
		})
	}
	return out
}

// nextCard picks a card other than current to draw next.
func (h *handler) nextCard(current string, lang catalog.Language) (deckCard, bool) {
	deck := h.deck(lang)
	others := make([]deckCard, 0, len(deck))
	for _, card := range deck {
		if card.ID != current {
			others = append(others, card)
		}
	}
	if len(others) == 0 {
		return deckCard{}, false
	}
	return others[h.pick(len(others))], true
}

// homeLinks lists the home page of every language, marking lang active.
func (h *handler) homeLinks(lang catalog.Language) []routes.LanguageLink {
	languages := h.catalog.Languages()
	links := make([]routes.LanguageLink, 0, len(languages))
	for _, candidate := range languages {
		url, ok := h.table.URLFor(routes.Home, candidate.ID)
		if !ok {
			continue
		}
		links = append(links, routes.LanguageLink{
			Lang:   candidate.ID,
			URL:    url,
			Name:   candidate.Name,
			Active: candidate.ID == lang.ID,
		})
	}
	return links
}

func pageTitle(route routes.Route, data map[string]any, loc templates.Localizer) string {
	switch route.Page.Kind {
	case routes.KindHome:
		return templates.T(loc, "page.index.title")
	case routes.KindAboutIndex:
		return templates.T(loc, "page.about_index.title")
	case routes.KindRandomCard:
		return templates.T(loc, "page.random_card.title")
	case routes.KindCard:
		return templates.T(loc, "page.card.title", data["CardName"])
	case routes.KindCardAbout:
		return templates.T(loc, "page.card_about.title", data["CardName"])
	default:
		return ""
	}
}

// handleRedirect serves the root page, which forwards to the home page of
// the language preferred by the browser.
func (h *handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	tags, _, _ := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	lang := h.catalog.Match(tags...)
	loc := h.localizer(lang)
	target, _ := h.table.URLFor(routes.Home, lang.ID)

	links := h.homeLinks(lang)

	body, err := h.renderer.Page(routes.Redirect.TemplateName(), map[string]any{
		"Lang": lang.ID,
		"T": func(key string, args ...any) string {
			return templates.T(loc, key, args...)
		},
		"Target":    target,
		"Languages": links,
	})
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindTemplate, "resolve redirect template", err))
		return
	}
	w.Header().Set("Vary", "Accept-Language")
	h.writeComponent(httpx.RequestContext(r), w, r, http.StatusOK, body)
}

func (h *handler) writeNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"))
}

// writeError renders the localized error page for err. Server errors are
// logged with their cause.
func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("render page",
			zap.String("path", r.URL.Path),
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Error(err),
		)
	}
	lang := h.requestLanguage(r)
	loc := h.localizer(lang)
	page := h.pageContext(lang, loc, nil)
	page.Title = templates.ErrorPageTitle(status, loc)
	h.writeLayout(w, r, status, page, templates.ErrorState(status, loc))
}

func (h *handler) writeLayout(w http.ResponseWriter, r *http.Request, status int, page templates.PageContext, body templ.Component) {
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	h.writeComponent(ctx, w, r, status, templates.Layout(page))
}

// writeComponent renders into a buffer first so a failing template yields a
// clean 500 instead of a truncated page.
func (h *handler) writeComponent(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		h.logger.Error("render page",
			zap.String("path", r.URL.Path),
			zap.String("kind", string(apperrors.KindTemplate)),
			zap.Error(err),
		)
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindTemplate, "render page", err))
		return
	}
	if err := httpx.WriteHTML(w, status, buf.Bytes()); err != nil {
		h.logger.Debug("write page", zap.Error(err))
	}
}
