package rdfa

import (
	"strings"

	"github.com/antchfx/xmlquery"
	domutil "github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Attribute is a single unprefixed-or-prefixed attribute as it appeared on
// an element, independent of the underlying tree library's representation.
type Attribute struct {
	Prefix string // e.g. "xmlns", "xml", "" for unprefixed
	Local  string // local attribute name
	Value  string
}

// Name returns the attribute's qualified name as written in the source
// document (prefix:local, or just local when unprefixed).
func (a Attribute) Name() string {
	if a.Prefix == "" {
		return a.Local
	}
	return a.Prefix + ":" + a.Local
}

// Node is the traversal engine's view of a document element, independent of
// whether the underlying parse tree came from golang.org/x/net/html (HTML
// hosts) or github.com/antchfx/xmlquery (XML/SVG hosts). Only the
// operations the processing model in §4.5 actually needs are exposed.
type Node interface {
	IsElement() bool
	TagName() string // local name, lower-cased for HTML hosts
	Attrs() []Attribute
	Attr(name string) (string, bool)
	Children() []Node // element children, document order
	TextContent() string
	InnerMarkup() string // serialized inner markup, for XML-literal construction (§4.6)
}

// --- HTML adapter (golang.org/x/net/html, via github.com/go-shiori/dom) ---

type htmlNode struct{ n *html.Node }

func wrapHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return htmlNode{n: n}
}

func (h htmlNode) IsElement() bool { return h.n.Type == html.ElementNode }

func (h htmlNode) TagName() string { return h.n.Data }

func (h htmlNode) Attrs() []Attribute {
	out := make([]Attribute, 0, len(h.n.Attr))
	for _, a := range h.n.Attr {
		prefix, local := splitQualifiedAttr(a.Key)
		out = append(out, Attribute{Prefix: prefix, Local: local, Value: a.Val})
	}
	return out
}

func (h htmlNode) Attr(name string) (string, bool) {
	if domutil.HasAttribute(h.n, name) {
		return domutil.GetAttribute(h.n, name), true
	}
	return "", false
}

func (h htmlNode) Children() []Node {
	var out []Node
	for _, c := range domutil.Children(h.n) {
		out = append(out, wrapHTML(c))
	}
	return out
}

func (h htmlNode) TextContent() string { return domutil.TextContent(h.n) }

func (h htmlNode) InnerMarkup() string { return domutil.InnerHTML(h.n) }

// splitQualifiedAttr splits an attribute key of the form "prefix:local" into
// its parts; golang.org/x/net/html keeps xmlns/xml-prefixed attribute names
// in the raw attribute key rather than exposing separate namespace nodes,
// which is exactly the HTML-host fallback §4.3 calls for.
func splitQualifiedAttr(key string) (prefix, local string) {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}

// --- XML/SVG adapter (github.com/antchfx/xmlquery) ---

type xmlNode struct{ n *xmlquery.Node }

func wrapXML(n *xmlquery.Node) Node {
	if n == nil {
		return nil
	}
	return xmlNode{n: n}
}

func (x xmlNode) IsElement() bool { return x.n.Type == xmlquery.ElementNode }

func (x xmlNode) TagName() string { return x.n.Data }

func (x xmlNode) Attrs() []Attribute {
	out := make([]Attribute, 0, len(x.n.Attr))
	for _, a := range x.n.Attr {
		out = append(out, Attribute{Prefix: a.Name.Space, Local: a.Name.Local, Value: a.Value})
	}
	return out
}

func (x xmlNode) Attr(name string) (string, bool) {
	prefix, local := splitQualifiedAttr(name)
	for _, a := range x.n.Attr {
		if a.Name.Space == prefix && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (x xmlNode) Children() []Node {
	var out []Node
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, wrapXML(c))
		}
	}
	return out
}

func (x xmlNode) TextContent() string { return x.n.InnerText() }

func (x xmlNode) InnerMarkup() string {
	var b strings.Builder
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(c.OutputXML(true))
	}
	return b.String()
}
