// Package render turns dimension rows into complete page documents. Every
// function here is pure: the output depends only on the row, its planned
// location and the site settings (product name, run date).
package render

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/seogen/internal/dimensions"
	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/htmldoc"
	"git.home.luguber.info/inful/seogen/internal/page"
	"git.home.luguber.info/inful/seogen/internal/slug"
	"git.home.luguber.info/inful/seogen/internal/urlplan"
)

// referenceCompetitor is the market leader every alternative page is positioned against.
const referenceCompetitor = "remove.bg"

// Site holds the settings shared by every page of a run.
type Site struct {
	Product string
	RunDate time.Time
}

// Renderer renders pages for one site.
type Renderer struct {
	site Site
}

// New returns a renderer for site.
func New(site Site) *Renderer {
	return &Renderer{site: site}
}

// content is the kind-specific copy before the profile table decides which
// metadata blocks survive.
type content struct {
	title         string
	description   string
	ogTitle       string
	ogDescription string
	ldName        string
	ldDescription string
	body          []htmldoc.Block
	redirect      []string // values for the kind's redirect params, in order
	primary       slug.Slug
	secondary     slug.Slug
}

// Comparison renders a "<Product> vs <Competitor>" page.
func (r *Renderer) Comparison(c dimensions.Competitor, loc urlplan.Location) (page.Spec, error) {
	p, year := r.site.Product, r.site.RunDate.Year()
	body := []htmldoc.Block{
		htmldoc.Heading{Level: 1, Text: fmt.Sprintf("%s vs %s: Complete Comparison %d", p, c.Name, year)},
		htmldoc.Paragraph{Text: "Redirecting to comparison..."},
	}
	if len(c.Pros) > 0 {
		body = append(body,
			htmldoc.Heading{Level: 2, Text: c.Name + " strengths"},
			htmldoc.List{Items: c.Pros})
	}
	if len(c.Cons) > 0 {
		body = append(body,
			htmldoc.Heading{Level: 2, Text: c.Name + " limitations"},
			htmldoc.List{Items: c.Cons})
	}
	body = append(body, htmldoc.Link{Href: "/", Text: "Go to " + p})

	return r.finish(page.KindComparison, loc, content{
		title:         fmt.Sprintf("%s vs %s - Which Background Remover is Better? (%d)", p, c.Name, year),
		description:   fmt.Sprintf("Compare %s vs %s. See features, pricing, and quality side by side. Find the best background remover for your needs in %d.", p, c.Name, year),
		ogTitle:       fmt.Sprintf("%s vs %s - Complete Comparison %d", p, c.Name, year),
		ogDescription: fmt.Sprintf("Which background remover is better? Compare %s and %s features, pricing, and quality.", p, c.Name),
		ldName:        fmt.Sprintf("%s vs %s", p, c.Name),
		ldDescription: fmt.Sprintf("Comparison of %s and %s background removal tools", p, c.Name),
		body:          body,
		redirect:      []string{c.Slug},
		primary:       slug.Slug(c.Slug),
	})
}

// Alternative renders a "Best remove.bg Alternative for <audience>" page.
func (r *Renderer) Alternative(u dimensions.UseCase, loc urlplan.Location) (page.Spec, error) {
	p := r.site.Product
	heading := fmt.Sprintf("Best %s Alternative for %s", referenceCompetitor, u.Title)
	return r.finish(page.KindAlternative, loc, content{
		title:         heading + " - " + p,
		description:   fmt.Sprintf("%s. %s offers free HD background removal with no signup required. The best %s alternative for %s.", u.Description, p, referenceCompetitor, lower(u.Title)),
		ogTitle:       heading,
		ogDescription: u.Description + ". Free HD output, no signup required.",
		ldName:        u.Title,
		ldDescription: u.Description,
		body: []htmldoc.Block{
			htmldoc.Heading{Level: 1, Text: heading},
			htmldoc.Paragraph{Text: u.Description},
			htmldoc.Link{Href: "/", Text: "Try " + p + " Free"},
		},
		redirect: []string{u.Slug},
		primary:  slug.Slug(u.Slug),
	})
}

// Feature renders a "remove.bg Alternative with <feature>" page.
func (r *Renderer) Feature(f dimensions.Feature, loc urlplan.Location) (page.Spec, error) {
	p := r.site.Product
	heading := fmt.Sprintf("%s Alternative with %s", referenceCompetitor, f.Title)
	return r.finish(page.KindFeature, loc, content{
		title:         heading + " - " + p,
		description:   fmt.Sprintf("Looking for a %s alternative with %s? %s offers %s. Try free now!", referenceCompetitor, lower(f.Title), p, lower(f.Description)),
		ogTitle:       heading,
		ogDescription: f.Description + ". Free HD background removal.",
		body: []htmldoc.Block{
			htmldoc.Heading{Level: 1, Text: heading},
			htmldoc.Paragraph{Text: f.Description},
			htmldoc.Link{Href: "/", Text: "Try " + p + " Free"},
		},
		redirect: []string{f.Slug},
		primary:  slug.Slug(f.Slug),
	})
}

// Industry renders the long-tail industry x use-case page.
func (r *Renderer) Industry(ind dimensions.Industry, use dimensions.SimplifiedUseCase, loc urlplan.Location) (page.Spec, error) {
	p := r.site.Product
	display := IndustryDisplayTitle(ind, use)
	spaced := strings.ReplaceAll(string(use), "-", " ")
	return r.finish(page.KindIndustry, loc, content{
		title:       fmt.Sprintf("Background Remover for %s - %s", display, p),
		description: fmt.Sprintf("Remove backgrounds from %s images. Perfect for %s. Free HD output, no signup required.", ind, spaced),
		body: []htmldoc.Block{
			htmldoc.Heading{Level: 1, Text: "Background Remover for " + display},
			htmldoc.Link{Href: "/", Text: "Try " + p + " Free"},
		},
		redirect:  []string{string(ind), string(use)},
		primary:   slug.Slug(ind),
		secondary: slug.Slug(use),
	})
}

// IndustryDisplayTitle upper-cases the first character of the industry and
// spells the use-case token with spaces: ("fashion", "product-photos") ->
// "Fashion product photos".
func IndustryDisplayTitle(ind dimensions.Industry, use dimensions.SimplifiedUseCase) string {
	return upperFirst(string(ind)) + " " + strings.ReplaceAll(string(use), "-", " ")
}

func (r *Renderer) finish(kind page.Kind, loc urlplan.Location, c content) (page.Spec, error) {
	if loc.Kind != kind {
		return page.Spec{}, ferrors.RenderError("location planned for a different page kind").
			WithContext("kind", string(kind)).
			WithContext("location_kind", string(loc.Kind)).
			Build()
	}
	profile := kind.Profile()

	doc := &htmldoc.Document{
		Lang:        "en",
		Title:       c.title,
		Description: c.description,
		Canonical:   loc.CanonicalURL,
		Redirect:    redirectTarget(profile.RedirectParams, c.redirect),
		Body:        c.body,
	}
	if profile.OpenGraph {
		doc.OpenGraph = &htmldoc.OpenGraph{
			Title:       fallback(c.ogTitle, c.title),
			Description: fallback(c.ogDescription, c.description),
			URL:         loc.CanonicalURL,
		}
	}
	var ld *page.WebPage
	if profile.StructuredData {
		ld = page.NewWebPage(fallback(c.ldName, c.title), fallback(c.ldDescription, c.description), loc.CanonicalURL)
		doc.StructuredData = ld
	}

	out, err := htmldoc.Bytes(doc)
	if err != nil {
		return page.Spec{}, ferrors.WrapError(err, ferrors.CategoryRender, "serialize page").
			Fatal().
			WithContext("kind", string(kind)).
			WithContext("slug", string(loc.Key)).
			Build()
	}

	return page.Spec{
		Kind:            kind,
		PrimarySlug:     c.primary,
		SecondarySlug:   c.secondary,
		Title:           c.title,
		MetaDescription: c.description,
		CanonicalURL:    loc.CanonicalURL,
		OutputPath:      loc.OutputPath,
		StructuredData:  ld,
		Content:         out,
	}, nil
}

// redirectTarget builds "/?k1=v1&k2=v2" in parameter order.
func redirectTarget(params, values []string) string {
	pairs := make([]string, 0, len(params))
	for i, k := range params {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(v))
	}
	return "/?" + strings.Join(pairs, "&")
}

func lower(s string) string {
	return cases.Lower(language.English).String(s)
}

func upperFirst(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.English).String(s[:size]) + s[size:]
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
