// Package htmldoc models a generated page as structured data and serializes it
// through a single HTML writer. All interpolated text passes through the
// golang.org/x/net/html renderer, which escapes text and attribute values;
// script bodies are produced here from JSON or validated tokens and checked so
// they can never close their element early.
package htmldoc

import (
	"golang.org/x/net/html"
)

// Block is one body element.
type Block interface {
	node() *html.Node
}

// Heading renders <h1>..<h6>.
type Heading struct {
	Level int
	Text  string
}

// Paragraph renders <p>.
type Paragraph struct {
	Text string
}

// List renders <ul> with one <li> per item.
type List struct {
	Items []string
}

// Link renders <a href>.
type Link struct {
	Href string
	Text string
}

// OpenGraph holds the og:title/og:description/og:url triple.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
}

// Document is a complete, self-contained HTML5 page.
type Document struct {
	Lang           string
	Title          string
	Description    string
	Canonical      string
	OpenGraph      *OpenGraph // nil omits the og:* tags
	StructuredData any        // JSON-LD value; nil omits the block
	Redirect       string     // client-side redirect target; empty omits the script
	Body           []Block
}

func (h Heading) node() *html.Node {
	level := h.Level
	if level < 1 || level > 6 {
		level = 1
	}
	return withText(element(headingTags[level-1]), h.Text)
}

var headingTags = [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}

func (p Paragraph) node() *html.Node { return withText(element("p"), p.Text) }

func (l List) node() *html.Node {
	ul := element("ul")
	for _, item := range l.Items {
		ul.AppendChild(text("\n    "))
		ul.AppendChild(withText(element("li"), item))
	}
	ul.AppendChild(text("\n  "))
	return ul
}

func (l Link) node() *html.Node {
	return withText(element("a", attr("href", l.Href)), l.Text)
}
