package rdfa

import (
	"strings"

	"github.com/elf-pavlik/rdf-rdfa/rdf"
)

// buildLiteral constructs the literal value for an element's @property
// according to §4.6:
//
//   - an explicit @content attribute always wins and yields a plain or
//     typed literal whose value never comes from child markup;
//   - @datatype="" (empty, but present) forces a plain literal out of the
//     element's text content, skipping XML-literal construction even when
//     the element has child markup;
//   - @datatype=rdf:XMLLiteral always yields an XML literal serialized
//     from the element's child markup;
//   - with @datatype absent, RDFa 1.0 infers an XML literal whenever the
//     element has child markup (RDFa 1.0 never had a plain-literal-with-
//     markup reading); RDFa 1.1 never infers one, and always falls
//     through to a plain/datatype-typed literal built from text content;
//   - otherwise the element's text content becomes a plain or
//     datatype-typed literal.
//
// The second return value reports whether the caller should continue
// descending into node's children: producing an XML literal consumes that
// markup as the literal's value, so a property element holding one is not
// walked as ordinary RDFa content (§4.5 Step 12 "recurse").
func buildLiteral(ctx *evalContext, node Node, version Version, content string, hasContent bool, datatype string, hasDatatype bool) (rdf.Literal, bool) {
	lang := ctx.language

	if hasContent {
		if hasDatatype && datatype != "" {
			return rdf.Literal{Lexical: content, Datatype: rdf.IRI{Value: datatype}}, true
		}
		return rdf.Literal{Lexical: content, Lang: lang}, true
	}

	if hasDatatype && datatype == "" {
		return rdf.Literal{Lexical: node.TextContent(), Lang: lang}, true
	}

	wantsXMLLiteral := datatype == xmlLiteralDatatype.Value
	hasChildren := len(node.Children()) > 0

	if wantsXMLLiteral || (!hasDatatype && hasChildren && version == Version10) {
		return rdf.Literal{
			Lexical:  serializeXMLLiteral(node),
			Datatype: xmlLiteralDatatype,
		}, false
	}

	if hasDatatype {
		return rdf.Literal{Lexical: node.TextContent(), Datatype: rdf.IRI{Value: datatype}}, true
	}

	return rdf.Literal{Lexical: node.TextContent(), Lang: lang}, true
}

// serializeXMLLiteral returns node's inner markup as the Node adapter's
// InnerMarkup serializes it, with surrounding whitespace trimmed. It adds no
// xmlns declarations of its own: ancestor declarations appear in the result
// only where the adapter's serialization already includes them, and for
// HTML hosts github.com/go-shiori/dom's InnerHTML does not repeat them.
func serializeXMLLiteral(node Node) string {
	return strings.TrimSpace(node.InnerMarkup())
}
