package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routepath"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routes"
)

// NavLinks holds the localized site sections for the active language.
type NavLinks struct {
	Home       string
	About      string
	RandomCard string
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	Title       string
	AnalyticsID string
	Nav         NavLinks
	Languages   []routes.LanguageLink
}

// Layout wraps the children components in the site shell: head, section
// navigation and the language switcher.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		title := T(page.Loc, "layout.app_name")
		if page.Title != "" && page.Title != title {
			title = page.Title + " | " + title
		}

		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", page.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><meta name="description"`)
		h.attr("content", T(page.Loc, "layout.meta_description"))
		h.raw(`><link rel="stylesheet"`)
		h.attr("href", routepath.StaticPrefix+"wgf.css")
		h.raw(">")
		for _, link := range page.Languages {
			if link.Active {
				continue
			}
			h.raw(`<link rel="alternate"`)
			h.attr("hreflang", link.Lang)
			h.attr("href", link.URL)
			h.raw(">")
		}
		writeAnalytics(h, page.AnalyticsID)
		h.raw(`</head><body><header class="wgf-header"><nav class="wgf-nav">`)
		navLink(h, page.Nav.Home, T(page.Loc, "nav.home"))
		navLink(h, page.Nav.About, T(page.Loc, "nav.about"))
		navLink(h, page.Nav.RandomCard, T(page.Loc, "nav.random_card"))
		h.raw("</nav>")
		writeLanguageSwitcher(h, page)
		h.raw(`</header><main class="wgf-main">`)
		if h.err != nil {
			return h.err
		}
		children := templ.GetChildren(ctx)
		if err := children.Render(templ.ClearChildren(ctx), w); err != nil {
			return err
		}
		h.raw("</main></body></html>\n")
		return h.err
	})
}

func navLink(h *htmlWriter, href string, label string) {
	if href == "" {
		return
	}
	h.raw("<a")
	h.attr("href", href)
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

func writeLanguageSwitcher(h *htmlWriter, page PageContext) {
	if len(page.Languages) == 0 {
		return
	}
	h.raw(`<ul class="wgf-languages"`)
	h.attr("aria-label", T(page.Loc, "layout.languages"))
	h.raw(">")
	for _, link := range page.Languages {
		h.raw("<li><a")
		h.attr("href", link.URL)
		h.attr("hreflang", link.Lang)
		h.attr("lang", link.Lang)
		if link.Active {
			h.attr("aria-current", "page")
		}
		h.raw(">")
		h.text(link.Name)
		h.raw("</a></li>")
	}
	h.raw("</ul>")
}

func writeAnalytics(h *htmlWriter, id string) {
	if id == "" {
		return
	}
	h.raw(`<script async`)
	h.attr("src", "https://www.googletagmanager.com/gtag/js?id="+id)
	h.raw(`></script><script`)
	h.attr("data-analytics-id", id)
	h.raw(`>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',document.currentScript.dataset.analyticsId);</script>`)
}
