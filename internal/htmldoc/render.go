package htmldoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes d as an HTML5 document.
func Render(w io.Writer, d *Document) error {
	root, err := build(d)
	if err != nil {
		return err
	}
	return html.Render(w, root)
}

// Bytes serializes d into a byte slice.
func Bytes(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func build(d *Document) (*html.Node, error) {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}

	head := element("head")
	addHead := func(n *html.Node) {
		head.AppendChild(text("\n  "))
		head.AppendChild(n)
	}
	addHead(element("meta", attr("charset", "UTF-8")))
	addHead(element("meta", attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1.0")))
	addHead(withText(element("title"), d.Title))
	addHead(element("meta", attr("name", "description"), attr("content", d.Description)))
	addHead(element("link", attr("rel", "canonical"), attr("href", d.Canonical)))
	if og := d.OpenGraph; og != nil {
		addHead(element("meta", attr("property", "og:title"), attr("content", og.Title)))
		addHead(element("meta", attr("property", "og:description"), attr("content", og.Description)))
		addHead(element("meta", attr("property", "og:url"), attr("content", og.URL)))
	}
	if d.StructuredData != nil {
		payload, err := json.MarshalIndent(d.StructuredData, "  ", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal structured data: %w", err)
		}
		s, err := scriptNode("\n  "+string(payload)+"\n  ", attr("type", "application/ld+json"))
		if err != nil {
			return nil, err
		}
		addHead(s)
	}
	if d.Redirect != "" {
		s, err := scriptNode("window.location.href = '" + jsString(d.Redirect) + "';")
		if err != nil {
			return nil, err
		}
		addHead(s)
	}
	head.AppendChild(text("\n"))

	body := element("body")
	for _, b := range d.Body {
		body.AppendChild(text("\n  "))
		body.AppendChild(b.node())
	}
	body.AppendChild(text("\n"))

	root := element("html", attr("lang", lang))
	root.AppendChild(text("\n"))
	root.AppendChild(head)
	root.AppendChild(text("\n"))
	root.AppendChild(body)
	root.AppendChild(text("\n"))

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(text("\n"))
	doc.AppendChild(root)
	doc.AppendChild(text("\n"))
	return doc, nil
}

// scriptNode builds a <script> whose raw body is written verbatim by the renderer,
// so the body must not be able to terminate the element or open a comment.
func scriptNode(body string, attrs ...html.Attribute) (*html.Node, error) {
	lower := strings.ToLower(body)
	if strings.Contains(lower, "</script") || strings.Contains(lower, "<!--") {
		return nil, fmt.Errorf("script body contains a forbidden sequence")
	}
	return withText(element("script", attrs...), body), nil
}

// jsString escapes s for a single-quoted JavaScript string literal embedded in HTML.
func jsString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '\'', '<', '>', '\n', '\r', '\u2028', '\u2029':
			fmt.Fprintf(&b, "\\u%04X", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute { return html.Attribute{Key: key, Val: val} }

func text(s string) *html.Node { return &html.Node{Type: html.TextNode, Data: s} }

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(text(s))
	return n
}
