package rdfa

import "github.com/elf-pavlik/rdf-rdfa/rdf"

// Well-known namespaces used by the processing model itself.
const (
	xhvNS    = "http://www.w3.org/1999/xhtml/vocab#"
	rdfNS    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfaNS   = "http://www.w3.org/ns/rdfa#"
	dcNS     = "http://purl.org/dc/terms/"
	ptrNS    = "http://www.w3.org/2009/pointers#"
	xmlNS    = "http://www.w3.org/XML/1998/namespace"
	xmlnsURI = "http://www.w3.org/2000/xmlns/"
)

// rdfType is rdf:type, the predicate emitted for every resolved @typeof token.
var rdfType = rdf.IRI{Value: rdfNS + "type"}

// xmlLiteralDatatype is rdf:XMLLiteral.
var xmlLiteralDatatype = rdf.IRI{Value: rdfNS + "XMLLiteral"}

// hasVocabulary is rdfa:hasVocabulary, emitted whenever @vocab sets a new
// default vocabulary (§4.5 Step 2).
var hasVocabulary = rdf.IRI{Value: rdfaNS + "hasVocabulary"}

// defaultXHTMLTerms seeds the RDFa 1.0 term map for XHTML/HTML hosts (§4.5
// Preamble). Each bare term below, when used without a default vocabulary
// or explicit prefix, expands into the XHTML vocabulary.
var defaultXHTMLTerms = []string{
	"alternate", "appendix", "bookmark", "cite", "chapter", "contents",
	"copyright", "first", "glossary", "help", "icon", "index", "last",
	"license", "meta", "next", "p3pv1", "prev", "role", "section",
	"stylesheet", "subsection", "start", "top", "up",
}

// xmlProfileIRI and xhtmlProfileIRI are the initial-context documents merged
// into the evaluation context before traversal begins, for RDFa 1.1
// documents (§4.5 Preamble). The xhtml profile is only merged for HTML hosts.
const (
	xmlProfileIRI   = "http://www.w3.org/2011/rdfa-context/rdfa-1.1"
	xhtmlProfileIRI = "http://www.w3.org/2011/rdfa-context/xhtml-rdfa-1.1"
)
