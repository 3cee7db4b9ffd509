package render

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/seogen/internal/dimensions"
	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/page"
	"git.home.luguber.info/inful/seogen/internal/slug"
	"git.home.luguber.info/inful/seogen/internal/urlplan"
)

const baseURL = "https://bggone.demo.densematrix.ai"

func fixture(t *testing.T) (*Renderer, *urlplan.Planner) {
	t.Helper()
	p, err := urlplan.New(baseURL)
	require.NoError(t, err)
	return New(Site{Product: "BgGone", RunDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)}), p
}

func plan(t *testing.T, p *urlplan.Planner, k page.Kind, key string) urlplan.Location {
	t.Helper()
	loc, err := p.Plan(k, slug.Slug(key))
	require.NoError(t, err)
	return loc
}

var ldBlock = regexp.MustCompile(`(?s)<script type="application/ld\+json">(.*?)</script>`)

func TestComparison_ScenarioA(t *testing.T) {
	r, p := fixture(t)
	c := dimensions.Competitor{Slug: "erase-bg", Name: "Erase.bg", Pros: []string{"Free tier"}, Cons: []string{"Signup required"}}
	spec, err := r.Comparison(c, plan(t, p, page.KindComparison, c.Slug))
	require.NoError(t, err)

	require.Equal(t, "vs/erase-bg/index.html", spec.OutputPath)
	require.Equal(t, "https://bggone.demo.densematrix.ai/vs/erase-bg/", spec.CanonicalURL)
	require.Equal(t, "BgGone vs Erase.bg - Which Background Remover is Better? (2026)", spec.Title)
	require.Contains(t, spec.MetaDescription, "Erase.bg")

	html := string(spec.Content)
	require.Contains(t, html, "<title>BgGone vs Erase.bg - Which Background Remover is Better? (2026)</title>")
	require.Contains(t, html, `<link rel="canonical" href="https://bggone.demo.densematrix.ai/vs/erase-bg/"/>`)
	require.Contains(t, html, `<meta property="og:title" content="BgGone vs Erase.bg - Complete Comparison 2026"/>`)
	require.Contains(t, html, `<meta property="og:url" content="https://bggone.demo.densematrix.ai/vs/erase-bg/"/>`)
	require.Contains(t, html, "<h1>BgGone vs Erase.bg: Complete Comparison 2026</h1>")
	require.Contains(t, html, "<li>Free tier</li>")
	require.Contains(t, html, "<li>Signup required</li>")
	require.Contains(t, html, "window.location.href = '/?vs=erase-bg';")
	require.Contains(t, html, `<a href="/">Go to BgGone</a>`)

	m := ldBlock.FindStringSubmatch(html)
	require.Len(t, m, 2)
	var ld page.WebPage
	require.NoError(t, json.Unmarshal([]byte(m[1]), &ld))
	require.Equal(t, "https://schema.org", ld.Context)
	require.Equal(t, "WebPage", ld.Type)
	require.Equal(t, "BgGone vs Erase.bg", ld.Name)
	require.Equal(t, spec.CanonicalURL, ld.URL)
	require.Equal(t, &ld, spec.StructuredData)
}

func TestAlternative_MirrorsRowInStructuredData(t *testing.T) {
	r, p := fixture(t)
	u := dimensions.UseCase{Slug: "etsy-sellers", Title: "Etsy Sellers", Description: "Create professional product photos for your Etsy shop"}
	spec, err := r.Alternative(u, plan(t, p, page.KindAlternative, u.Slug))
	require.NoError(t, err)

	require.Equal(t, "Best remove.bg Alternative for Etsy Sellers - BgGone", spec.Title)
	require.Equal(t, "Create professional product photos for your Etsy shop. BgGone offers free HD background removal with no signup required. The best remove.bg alternative for etsy sellers.", spec.MetaDescription)
	require.NotNil(t, spec.StructuredData)
	require.Equal(t, u.Title, spec.StructuredData.Name)
	require.Equal(t, u.Description, spec.StructuredData.Description)

	html := string(spec.Content)
	require.Contains(t, html, `href="https://bggone.demo.densematrix.ai/alternative/etsy-sellers/"`)
	require.Contains(t, html, `property="og:description"`)
	require.Contains(t, html, "window.location.href = '/?alt=etsy-sellers';")
	require.Contains(t, html, "<p>Create professional product photos for your Etsy shop</p>")
}

func TestFeature_ScenarioD(t *testing.T) {
	r, p := fixture(t)
	f := dimensions.Feature{Slug: "no-watermark", Title: "No Watermark", Description: "Download clean images without watermarks"}
	spec, err := r.Feature(f, plan(t, p, page.KindFeature, f.Slug))
	require.NoError(t, err)

	require.Equal(t, "for/no-watermark/index.html", spec.OutputPath)
	require.Equal(t, "remove.bg Alternative with No Watermark - BgGone", spec.Title)
	require.Equal(t, "Looking for a remove.bg alternative with no watermark? BgGone offers download clean images without watermarks. Try free now!", spec.MetaDescription)
	require.Nil(t, spec.StructuredData)

	html := string(spec.Content)
	require.NotContains(t, html, "og:")
	require.NotContains(t, html, "application/ld+json")
	require.Contains(t, html, `<link rel="canonical" href="https://bggone.demo.densematrix.ai/for/no-watermark/"/>`)
	require.Contains(t, html, "window.location.href = '/?feature=no-watermark';")
}

func TestIndustry_ScenarioB(t *testing.T) {
	r, p := fixture(t)
	key := slug.Compose("fashion", "product-photos")
	spec, err := r.Industry("fashion", "product-photos", plan(t, p, page.KindIndustry, string(key)))
	require.NoError(t, err)

	require.Equal(t, "p/fashion-product-photos/index.html", spec.OutputPath)
	require.Equal(t, slug.Slug("fashion"), spec.PrimarySlug)
	require.Equal(t, slug.Slug("product-photos"), spec.SecondarySlug)
	require.Equal(t, "Background Remover for Fashion product photos - BgGone", spec.Title)
	require.Equal(t, "Remove backgrounds from fashion images. Perfect for product photos. Free HD output, no signup required.", spec.MetaDescription)

	html := string(spec.Content)
	require.Contains(t, html, "<h1>Background Remover for Fashion product photos</h1>")
	require.Contains(t, html, "window.location.href = '/?industry=fashion&use=product-photos';")
	require.NotContains(t, html, "og:")
	require.NotContains(t, html, "application/ld+json")
}

func TestIndustryDisplayTitle(t *testing.T) {
	require.Equal(t, "Home-decor social media", IndustryDisplayTitle("home-decor", "social-media"))
	require.Equal(t, "Art design", IndustryDisplayTitle("art", "design"))
}

func TestEveryDocumentHasSkeleton(t *testing.T) {
	r, p := fixture(t)
	specs := []func() (page.Spec, error){
		func() (page.Spec, error) {
			return r.Comparison(dimensions.Competitor{Slug: "a", Name: "A"}, plan(t, p, page.KindComparison, "a"))
		},
		func() (page.Spec, error) {
			return r.Alternative(dimensions.UseCase{Slug: "b", Title: "B", Description: "d"}, plan(t, p, page.KindAlternative, "b"))
		},
		func() (page.Spec, error) {
			return r.Feature(dimensions.Feature{Slug: "c", Title: "C", Description: "d"}, plan(t, p, page.KindFeature, "c"))
		},
		func() (page.Spec, error) { return r.Industry("toys", "design", plan(t, p, page.KindIndustry, "toys-design")) },
	}
	for _, fn := range specs {
		spec, err := fn()
		require.NoError(t, err)
		html := string(spec.Content)
		require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
		for _, want := range []string{`charset="UTF-8"`, `name="viewport"`, "<title>", `name="description"`, `rel="canonical"`, "<h1>", `<a href="/">`, "window.location.href"} {
			require.Contains(t, html, want, spec.Kind)
		}
	}
}

func TestComparison_EscapesAuthoredText(t *testing.T) {
	r, p := fixture(t)
	c := dimensions.Competitor{Slug: "evil", Name: `<img src=x onerror="alert(1)">`}
	spec, err := r.Comparison(c, plan(t, p, page.KindComparison, c.Slug))
	require.NoError(t, err)
	require.NotContains(t, string(spec.Content), "<img")
	require.Contains(t, string(spec.Content), "&lt;img src=x")
}

func TestRender_RejectsMismatchedLocation(t *testing.T) {
	r, p := fixture(t)
	_, err := r.Feature(dimensions.Feature{Slug: "x", Title: "X", Description: "d"}, plan(t, p, page.KindComparison, "x"))
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryRender))
}
