package rdfa

import (
	"fmt"

	"github.com/elf-pavlik/rdf-rdfa/rdf"
)

// Statement is a single emitted RDF triple, surfaced to callers via
// Reader.Next. Path is the path of the document element the traversal
// started from (e.g. "/html"); it is the same for every statement and does
// not identify the element that produced the triple.
type Statement struct {
	rdf.Triple
	Path string
}

// collector buffers statements and diagnostics produced during one
// document's traversal, and optionally materializes the diagnostics into
// processor-graph triples (§4.7).
type collector struct {
	stmts []Statement
	diag  *diagSink
	graph bool
}

func newCollector(validate, processorGraph bool) *collector {
	return &collector{diag: newDiagSink(validate), graph: processorGraph}
}

// processorGraphTriples converts every recorded diagnostic into the
// triples of an RDFa processor graph: each message becomes a fresh blank
// node typed by its class, carrying rdfa:context and a plain-literal
// description (§4.7). Only called when Options.ProcessorGraph is set.
func (c *collector) processorGraphTriples() []rdf.Triple {
	var out []rdf.Triple
	var gen bnodeGen
	for _, d := range c.diag.items {
		node := gen.next()
		out = append(out,
			rdf.Triple{S: node, P: rdfType, O: rdf.IRI{Value: rdfaNS + diagnosticTypeLocalName(d.Class)}},
			rdf.Triple{S: node, P: rdf.IRI{Value: rdfaNS + "context"}, O: rdf.IRI{Value: d.Context}},
			rdf.Triple{S: node, P: rdf.IRI{Value: dcNS + "description"}, O: rdf.Literal{Lexical: d.Message}},
		)
	}
	return out
}

func diagnosticTypeLocalName(c DiagnosticClass) string {
	switch c {
	case ClassDocumentError:
		return "DocumentError"
	case ClassProfileReferenceError:
		return "ProfileReferenceError"
	case ClassUnresolvedCURIE:
		return "UnresolvedCURIE"
	case ClassUnresolvedTerm:
		return "UnresolvedTerm"
	case ClassLiteralError:
		return "LiteralError"
	case ClassPrefixError:
		return "PrefixError"
	case ClassWarning:
		return "Warning"
	default:
		return "Info"
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Class, d.Message)
}
