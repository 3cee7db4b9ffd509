// Package urlplan maps a page kind and routing key to its canonical URL and its
// output path under the public root. Each kind owns a distinct first path
// segment, so two kinds can never produce the same URL.
package urlplan

import (
	"net/url"
	"path"
	"strings"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/page"
	"git.home.luguber.info/inful/seogen/internal/slug"
)

// IndexFile is the leaf written into every page directory so the trailing-slash
// URL resolves under directory-style hosting.
const IndexFile = "index.html"

// Location is where one page lives.
type Location struct {
	Kind         page.Kind
	Key          slug.Slug
	Route        string // "/<prefix>/<key>/"
	CanonicalURL string // base URL + Route
	OutputPath   string // "<prefix>/<key>/index.html", slash-separated
}

// Planner computes locations against one base URL.
type Planner struct {
	base string
}

// New validates baseURL (absolute http(s), no query or fragment) and returns a planner.
func New(baseURL string) (*Planner, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid base URL").
			Fatal().
			WithContext("base_url", baseURL).
			Build()
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.RawQuery != "" || u.Fragment != "" {
		return nil, ferrors.ConfigError("base URL must be an absolute http(s) URL without query or fragment").
			WithContext("base_url", baseURL).
			Build()
	}
	return &Planner{base: strings.TrimRight(baseURL, "/")}, nil
}

// BaseURL returns the normalized base URL (no trailing slash).
func (p *Planner) BaseURL() string { return p.base }

// Plan returns the location for kind and key. The key must already be a valid
// slug; for cross-product pages it is the composed "<industry>-<useCase>" key.
func (p *Planner) Plan(kind page.Kind, key slug.Slug) (Location, error) {
	if !kind.Valid() {
		return Location{}, ferrors.PlanError("unknown page kind").WithContext("kind", string(kind)).Build()
	}
	if _, err := slug.Validate(string(kind), string(key)); err != nil {
		return Location{}, err
	}
	prefix := kind.Profile().Prefix
	route := "/" + prefix + "/" + string(key) + "/"
	return Location{
		Kind:         kind,
		Key:          key,
		Route:        route,
		CanonicalURL: p.base + route,
		OutputPath:   path.Join(prefix, string(key), IndexFile),
	}, nil
}

// RouteForOutputPath derives the URL route a materialized output path serves.
// It is the inverse of Plan's path mapping.
func RouteForOutputPath(outputPath string) string {
	dir := path.Dir(outputPath)
	if path.Base(outputPath) != IndexFile || dir == "." {
		return "/" + outputPath
	}
	return "/" + dir + "/"
}
