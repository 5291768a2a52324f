package rdf

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// jsonldTripleDecoder converts a JSON-LD document into triples by running it
// through json-gold's ToRDF algorithm, then draining the resulting dataset's
// default-graph quads. Named graphs are dropped: profile documents have no
// business declaring them, and the RDFa core only ever asks for triples.
type jsonldTripleDecoder struct {
	triples []Triple
	pos     int
	err     error
}

func newJSONLDTripleDecoder(r io.Reader, opts DecodeOptions) (TripleDecoder, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapParseError("jsonld", 0, err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, wrapParseError("jsonld", 0, err)
	}

	proc := ld.NewJsonLdProcessor()
	options := ld.NewJsonLdOptions("")
	options.ProcessingMode = ld.JsonLd_1_1

	dataset, err := proc.ToRDF(doc, options)
	if err != nil {
		return nil, wrapParseError("jsonld", 0, err)
	}
	rdfDataset, ok := dataset.(*ld.RDFDataset)
	if !ok {
		return nil, wrapParseError("jsonld", 0, fmt.Errorf("unexpected ToRDF result type %T", dataset))
	}

	var triples []Triple
	for graphName, quads := range rdfDataset.Graphs {
		if graphName != "@default" {
			continue
		}
		for _, q := range quads {
			t, err := ldQuadToTriple(q)
			if err != nil {
				return nil, wrapParseError("jsonld", 0, err)
			}
			triples = append(triples, t)
		}
	}
	return &jsonldTripleDecoder{triples: triples}, nil
}

func (d *jsonldTripleDecoder) Next() (Triple, error) {
	if d.err != nil {
		return Triple{}, d.err
	}
	if d.pos >= len(d.triples) {
		d.err = io.EOF
		return Triple{}, io.EOF
	}
	t := d.triples[d.pos]
	d.pos++
	return t, nil
}

func (d *jsonldTripleDecoder) Close() error { return nil }

func ldQuadToTriple(q *ld.Quad) (Triple, error) {
	s, err := ldNodeToTerm(q.Subject)
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	p, err := ldNodeToTerm(q.Predicate)
	if err != nil {
		return Triple{}, fmt.Errorf("predicate: %w", err)
	}
	pIRI, ok := p.(IRI)
	if !ok {
		return Triple{}, fmt.Errorf("predicate must be an IRI")
	}
	o, err := ldNodeToTerm(q.Object)
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}
	return Triple{S: s, P: pIRI, O: o}, nil
}

func ldNodeToTerm(node ld.Node) (Term, error) {
	switch n := node.(type) {
	case *ld.IRI:
		return IRI{Value: n.Value}, nil
	case *ld.BlankNode:
		return BlankNode{ID: strings.TrimPrefix(n.Attribute, "_:")}, nil
	case *ld.Literal:
		lit := Literal{Lexical: n.GetValue()}
		switch {
		case n.Language != "":
			lit.Lang = n.Language
		case n.Datatype != "" && n.Datatype != "http://www.w3.org/2001/XMLSchema#string":
			lit.Datatype = IRI{Value: n.Datatype}
		}
		return lit, nil
	default:
		return nil, fmt.Errorf("unsupported json-ld node type %T", node)
	}
}
