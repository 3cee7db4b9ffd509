// Package sitemap accumulates generated URLs and serializes them in the
// sitemaps.org 0.9 XML format.
package sitemap

import (
	"encoding/xml"
	"slices"
	"sync"
	"time"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

const (
	// Namespace is the sitemap protocol XML namespace.
	Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	// ChangeFrequency is fixed for every generated page.
	ChangeFrequency = "monthly"
	// Priority is fixed for every generated page.
	Priority = "0.6"
	// DateLayout is the lastmod format.
	DateLayout = "2006-01-02"
)

// Entry is one <url> element.
type Entry struct {
	XMLName         xml.Name `xml:"url"`
	URL             string   `xml:"loc"`
	LastModified    string   `xml:"lastmod"`
	ChangeFrequency string   `xml:"changefreq"`
	Priority        string   `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// Builder collects entries in accumulation order. Safe for concurrent use.
type Builder struct {
	mu      sync.Mutex
	lastmod string
	entries []Entry
}

// NewBuilder returns a builder whose entries all carry runDate as lastmod.
func NewBuilder(runDate time.Time) *Builder {
	return &Builder{lastmod: runDate.Format(DateLayout)}
}

// NewEntry builds an entry with the run's fixed metadata.
func (b *Builder) NewEntry(loc string) Entry {
	return Entry{
		URL:             loc,
		LastModified:    b.lastmod,
		ChangeFrequency: ChangeFrequency,
		Priority:        Priority,
	}
}

// Accumulate appends an entry.
func (b *Builder) Accumulate(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
}

// Add appends an entry for loc with the run's fixed metadata.
func (b *Builder) Add(loc string) { b.Accumulate(b.NewEntry(loc)) }

// Len returns the number of accumulated entries.
func (b *Builder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// URLs returns the accumulated locations in order.
func (b *Builder) URLs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.URL
	}
	return out
}

// Serialize renders the urlset document: XML header, two-space indentation and a
// trailing newline.
func (b *Builder) Serialize() ([]byte, error) {
	b.mu.Lock()
	set := urlSet{XMLNS: Namespace, URLs: slices.Clone(b.entries)}
	b.mu.Unlock()

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategorySitemap, "marshal sitemap").Fatal().Build()
	}
	doc := make([]byte, 0, len(xml.Header)+len(out)+1)
	doc = append(doc, xml.Header...)
	doc = append(doc, out...)
	doc = append(doc, '\n')
	return doc, nil
}
