package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doctidy"
	"golang.org/x/net/html"
)

// scopedAttrPrefix marks attributes injected by the site generator for
// scoped styling (e.g. data-v-7f3a2b). Matched by prefix,
// case-sensitively.
const scopedAttrPrefix = "data-v-"

// ContentSelector defines a CSS selector for a content container with
// its source label.
type ContentSelector struct {
	Selector string
	Source   string
}

// contentSelectors is the fixed fallback chain of content containers,
// tried in order against the parsed document. First match wins. The
// chain covers slightly different generator output layouts.
var contentSelectors = []ContentSelector{
	{Selector: "main.main", Source: "main"},
	{Selector: "div.vp-doc", Source: "vp-doc"},
	{Selector: "div.content-container", Source: "content-container"},
}

// styleAllowlist lists elements that keep their inline style
// attribute. Tables and images often rely on inline sizing and
// alignment emitted by the generator.
var styleAllowlist = map[string]bool{
	"img":   true,
	"table": true,
	"td":    true,
	"th":    true,
}

// shellTemplate is the minimal document the content node is
// transplanted into: UTF-8 charset, empty title, and a fixed style
// block for readable offline rendering.
const shellTemplate = `<!DOCTYPE html><html><head><meta charset="utf-8"><title></title><style>body{font-family:sans-serif;line-height:1.6;padding:20px;max-width:1000px;margin:0 auto;color:#333;}table{border-collapse:collapse;width:100%;margin:20px 0;}th,td{border:1px solid #ddd;padding:8px;text-align:left;}th{background-color:#f4f4f4;}a{color:#007bff;text-decoration:none;}a:hover{text-decoration:underline;}pre,code{background:#f8f8f8;padding:2px 5px;border-radius:3px;font-family:monospace;}pre{padding:10px;overflow:auto;border-left:4px solid #007bff;}blockquote{margin:10px 0;padding-left:15px;border-left:4px solid #eee;color:#666;}img{max-width:100%;height:auto;}</style></head><body></body></html>`

// Ensure Sanitizer implements doctidy.Sanitizer at compile time.
var _ doctidy.Sanitizer = (*Sanitizer)(nil)

// Sanitizer extracts the primary content region from documentation
// pages and rebuilds each page as a minimal standalone document.
type Sanitizer struct {
	formatter doctidy.Formatter
}

// NewSanitizer creates a new Sanitizer. The formatter is applied to
// the serialized output; a nil formatter leaves the output unindented.
func NewSanitizer(formatter doctidy.Formatter) *Sanitizer {
	return &Sanitizer{formatter: formatter}
}

// Sanitize processes raw HTML and returns the sanitized document.
func (s *Sanitizer) Sanitize(rawHTML string, fallbackTitle string) (string, error) {
	if rawHTML == "" {
		return "", doctidy.Errorf(doctidy.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", doctidy.Errorf(doctidy.EINVALID, "failed to parse HTML: %v", err)
	}

	content := findContent(doc)
	if content == nil {
		return "", doctidy.Errorf(doctidy.ENOTFOUND,
			"no content container matched (tried %s)", strings.Join(selectorSources(), ", "))
	}

	shell, err := goquery.NewDocumentFromReader(strings.NewReader(shellTemplate))
	if err != nil {
		return "", doctidy.Errorf(doctidy.EINTERNAL, "failed to parse document shell: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = fallbackTitle
	}
	shell.Find("title").SetText(title)

	// AppendSelection moves the node out of the original tree, landmark
	// class included, so re-running on the output matches the same node
	// again.
	shell.Find("body").AppendSelection(content)

	// Auto-generated deep-link icons carry no semantic value once the
	// navigation chrome is gone.
	shell.Find("a.header-anchor").Remove()

	shell.Find("*").Each(func(_ int, sel *goquery.Selection) {
		stripAttributes(sel)
	})

	shell.Find("script").Remove()

	var buf bytes.Buffer
	if err := html.Render(&buf, shell.Get(0)); err != nil {
		return "", doctidy.Errorf(doctidy.EINTERNAL, "failed to render document: %v", err)
	}

	if s.formatter == nil {
		return buf.String(), nil
	}
	return s.formatter.Format(buf.String()), nil
}

// findContent returns the first match of the first matching selector
// in the fallback chain, or nil if no selector matched.
func findContent(doc *goquery.Document) *goquery.Selection {
	for _, cs := range contentSelectors {
		if match := doc.Find(cs.Selector).First(); match.Length() > 0 {
			return match
		}
	}
	return nil
}

// selectorSources returns the source labels of the fallback chain for
// diagnostics.
func selectorSources() []string {
	sources := make([]string, 0, len(contentSelectors))
	for _, cs := range contentSelectors {
		sources = append(sources, cs.Source)
	}
	return sources
}

// stripAttributes removes framework-scoped attributes and, outside the
// allowlist, inline styles. Attribute names are snapshotted first:
// removing while iterating the live attribute slice skips entries.
func stripAttributes(sel *goquery.Selection) {
	node := sel.Get(0)
	names := make([]string, 0, len(node.Attr))
	for _, attr := range node.Attr {
		names = append(names, attr.Key)
	}
	for _, name := range names {
		if strings.HasPrefix(name, scopedAttrPrefix) {
			sel.RemoveAttr(name)
		}
	}
	if !styleAllowlist[goquery.NodeName(sel)] {
		sel.RemoveAttr("style")
	}
}
