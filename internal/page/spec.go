package page

import "git.home.luguber.info/inful/seogen/internal/slug"

// WebPage is the schema.org WebPage block embedded as JSON-LD.
type WebPage struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// NewWebPage fills the fixed schema.org fields.
func NewWebPage(name, description, url string) *WebPage {
	return &WebPage{
		Context:     "https://schema.org",
		Type:        "WebPage",
		Name:        name,
		Description: description,
		URL:         url,
	}
}

// Spec is one planned and rendered page. It lives for a single generation pass.
type Spec struct {
	Kind            Kind
	PrimarySlug     slug.Slug
	SecondarySlug   slug.Slug // set only for cross-product pages
	Title           string
	MetaDescription string
	CanonicalURL    string
	OutputPath      string // slash-separated, relative to the output root
	StructuredData  *WebPage
	Content         []byte
}
