package rdfa

import (
	"io"
	"strings"

	"github.com/elf-pavlik/rdf-rdfa/rdf"
)

// Options configures a Reader (§6.1).
type Options struct {
	BaseIRI string

	// HostLanguage and Version force the corresponding detection step
	// (§4.1) instead of inferring it from Doctype/MimeType/the root
	// element. Leave zero to auto-detect.
	HostLanguage HostLanguage
	Version      Version
	Doctype      string
	MimeType     string

	// Prefixes seeds additional prefix -> IRI mappings before traversal
	// begins, as if declared by an @prefix attribute on a virtual ancestor
	// of the document element.
	Prefixes map[string]string

	// ProfileFetcher resolves, for RDFa 1.1 documents only, the default
	// context documents (the XML one, plus the XHTML one for HTML hosts)
	// and any @profile references on the document element. Nil disables
	// profile merging entirely; any reference is recorded as a diagnostic
	// and skipped rather than failing the document.
	ProfileFetcher ProfileFetcher

	// Validate makes a DocumentError diagnostic abort traversal instead of
	// being recorded and continuing past it.
	Validate bool

	// ProcessorGraph makes Reader.ProcessorGraph return the recorded
	// diagnostics materialized as processor-graph triples (§4.7).
	ProcessorGraph bool
}

// Reader extracts the sequence of Statement values encoded in a document's
// RDFa attributes. Construct one with NewReader and consume it with Next
// until io.EOF.
type Reader struct {
	stmts []Statement
	pos   int
	coll  *collector
}

// NewReader runs the document preamble (host/version detection, default
// and @profile merging) and the full traversal over doc, buffering every
// statement it finds (§4.5 Preamble, §6.1).
func NewReader(doc Node, opts Options) (*Reader, error) {
	rootVersionAttr, _ := doc.Attr("version")
	host, version := detectHostLanguage(opts.HostLanguage, opts.Version, opts.Doctype, rootVersionAttr, opts.MimeType, doc.TagName())

	root := newRootContext(opts.BaseIRI, version, host)
	root.parentSubject = rdf.IRI{Value: opts.BaseIRI}
	for k, v := range opts.Prefixes {
		root.uriMappings[strings.ToLower(k)] = v
	}

	coll := newCollector(opts.Validate, opts.ProcessorGraph)
	loader := newProfileLoader(opts.ProfileFetcher, opts.BaseIRI)

	if version == Version11 {
		loader.load(xmlProfileIRI, root, coll.diag)
		if host.IsHTML() {
			loader.load(xhtmlProfileIRI, root, coll.diag)
		}
		if profileAttr, ok := doc.Attr("profile"); ok {
			for _, iri := range strings.Fields(profileAttr) {
				loader.load(rdf.ResolveIRI(opts.BaseIRI, iri), root, coll.diag)
			}
		}
	}

	e := &engine{host: host, version: version, diag: coll.diag}
	e.emit = func(t rdf.Triple) {
		coll.stmts = append(coll.stmts, Statement{Triple: t, Path: "/" + doc.TagName()})
	}
	e.process(root, doc, "/"+doc.TagName(), true)

	return &Reader{stmts: coll.stmts, coll: coll}, coll.diag.err()
}

// Next returns the next statement, or io.EOF once every statement found
// during NewReader's traversal has been returned.
func (r *Reader) Next() (Statement, error) {
	if r.pos >= len(r.stmts) {
		return Statement{}, io.EOF
	}
	s := r.stmts[r.pos]
	r.pos++
	return s, nil
}

// Diagnostics returns every message recorded while processing the
// document, in the order encountered (§7).
func (r *Reader) Diagnostics() []Diagnostic {
	return r.coll.diag.items
}

// ProcessorGraph returns the recorded diagnostics materialized as triples,
// or nil if Options.ProcessorGraph was not set (§4.7).
func (r *Reader) ProcessorGraph() []rdf.Triple {
	if !r.coll.graph {
		return nil
	}
	return r.coll.processorGraphTriples()
}
