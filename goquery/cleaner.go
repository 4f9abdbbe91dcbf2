// Package goquery implements sitescrape.Cleaner on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitescrape"
	"golang.org/x/net/html"
)

// Step is one typed transformation applied to a parsed document.
type Step interface {
	Apply(doc *goquery.Document)
}

// Remove deletes every element matching the selector, content included.
type Remove string

// Apply implements Step.
func (r Remove) Apply(doc *goquery.Document) {
	doc.Find(string(r)).Remove()
}

// Unwrap replaces every element matching the selector with its children,
// so the text stays in place and the element itself disappears.
type Unwrap string

// Apply implements Step.
func (u Unwrap) Apply(doc *goquery.Document) {
	doc.Find(string(u)).Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithSelection(sel.Contents())
	})
}

// Selectors used by the default pipeline.
const (
	NoiseSelector  = "header, footer, nav"
	LinkSelector   = "a[href]"
	ScriptSelector = "script, style"
)

// DefaultSteps returns the cleaning pipeline: drop page chrome, flatten
// hyperlinks to text, then drop scripts and styles.
func DefaultSteps() []Step {
	return []Step{
		Remove(NoiseSelector),
		Unwrap(LinkSelector),
		Remove(ScriptSelector),
	}
}

// Ensure Cleaner implements sitescrape.Cleaner at compile time.
var _ sitescrape.Cleaner = (*Cleaner)(nil)

// Cleaner reduces HTML to its title and visible text.
// Cleaner is stateless and safe for concurrent use.
type Cleaner struct {
	steps []Step
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithSteps replaces the default pipeline.
func WithSteps(steps ...Step) Option {
	return func(c *Cleaner) {
		c.steps = steps
	}
}

// NewCleaner creates a new Cleaner using DefaultSteps unless overridden.
func NewCleaner(opts ...Option) *Cleaner {
	c := &Cleaner{steps: DefaultSteps()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prune parses rawHTML and applies the cleaner's steps in order.
// Scripting is disabled while parsing so <noscript> content is parsed as
// markup rather than kept as one raw text node.
func (c *Cleaner) Prune(rawHTML string) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, sitescrape.Wrapf(err, sitescrape.EPARSE, "failed to parse HTML")
	}
	doc := goquery.NewDocumentFromNode(root)
	for _, step := range c.steps {
		step.Apply(doc)
	}
	return doc, nil
}

// Clean returns the page title and whitespace-normalized visible text.
func (c *Cleaner) Clean(rawHTML string) (*sitescrape.Page, error) {
	doc, err := c.Prune(rawHTML)
	if err != nil {
		return nil, err
	}
	return &sitescrape.Page{
		Title: Title(doc),
		Text:  Text(doc),
	}, nil
}

// Title returns the text of the first <title> element, or
// sitescrape.DefaultTitle when there is none or it is empty.
func Title(doc *goquery.Document) string {
	title := sitescrape.NormalizeSpace(doc.Find("title").First().Text())
	if title == "" {
		return sitescrape.DefaultTitle
	}
	return title
}

// Text joins every non-blank text node of the document with a single
// space and normalizes the whitespace. Comments are not text.
func Text(doc *goquery.Document) string {
	var parts []string
	for _, root := range doc.Nodes {
		for n := range root.Descendants() {
			if n.Type != html.TextNode {
				continue
			}
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return sitescrape.NormalizeSpace(strings.Join(parts, " "))
}
