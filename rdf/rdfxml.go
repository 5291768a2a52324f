package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const rdfXMLNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// rdfxmlDecoder walks the striped RDF/XML syntax: an rdf:RDF root containing
// node elements, each containing property elements. It covers the shape
// profile documents and vocabulary listings are actually published in;
// full RDF/XML (parseType="Collection", reification shorthand, typed node
// elements nested arbitrarily deep) is out of scope for a profile fetcher.
type rdfxmlDecoder struct {
	dec    *xml.Decoder
	queue  []Triple
	blanks blankNodeGenerator
	err    error
}

func newRDFXMLDecoder(r io.Reader, opts DecodeOptions) TripleDecoder {
	return &rdfxmlDecoder{dec: xml.NewDecoder(r)}
}

func (d *rdfxmlDecoder) Next() (Triple, error) {
	if d.err != nil {
		return Triple{}, d.err
	}
	for {
		if len(d.queue) > 0 {
			next := d.queue[0]
			d.queue = d.queue[1:]
			return next, nil
		}
		tok, err := d.dec.Token()
		if err != nil {
			if err == io.EOF {
				d.err = io.EOF
				return Triple{}, io.EOF
			}
			d.err = wrapParseError("rdfxml", 0, err)
			return Triple{}, d.err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Space == rdfXMLNS && start.Name.Local == "RDF" {
			continue
		}
		subject := d.subjectFromNode(start)
		if start.Name.Space != rdfXMLNS || start.Name.Local != "Description" {
			d.queue = append(d.queue, Triple{
				S: subject,
				P: IRI{Value: rdfXMLNS + "type"},
				O: IRI{Value: start.Name.Space + start.Name.Local},
			})
		}
		if err := d.readPropertyElements(subject); err != nil {
			d.err = wrapParseError("rdfxml", 0, err)
			return Triple{}, d.err
		}
	}
}

func (d *rdfxmlDecoder) Close() error { return nil }

func (d *rdfxmlDecoder) readPropertyElements(subject Term) error {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			pred := IRI{Value: t.Name.Space + t.Name.Local}
			obj, err := objectFromPropertyElement(d.dec, t)
			if err != nil {
				return err
			}
			d.queue = append(d.queue, Triple{S: subject, P: pred, O: obj})
		case xml.EndElement:
			return nil
		}
	}
}

func objectFromPropertyElement(dec *xml.Decoder, start xml.StartElement) (Term, error) {
	if iri := attrValue(start.Attr, rdfXMLNS, "resource"); iri != "" {
		return IRI{Value: iri}, consumeElement(dec)
	}
	if nodeID := attrValue(start.Attr, rdfXMLNS, "nodeID"); nodeID != "" {
		return BlankNode{ID: nodeID}, consumeElement(dec)
	}
	datatype := attrValue(start.Attr, rdfXMLNS, "datatype")
	lang := attrValue(start.Attr, "http://www.w3.org/XML/1998/namespace", "lang")
	var content strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			content.Write(t)
		case xml.EndElement:
			lit := Literal{Lexical: content.String()}
			if datatype != "" {
				lit.Datatype = IRI{Value: datatype}
			} else if lang != "" {
				lit.Lang = lang
			}
			return lit, nil
		case xml.StartElement:
			return nil, fmt.Errorf("rdfxml: nested resource descriptions are not supported")
		}
	}
}

func consumeElement(dec *xml.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

func (d *rdfxmlDecoder) subjectFromNode(el xml.StartElement) Term {
	if about := attrValue(el.Attr, rdfXMLNS, "about"); about != "" {
		return IRI{Value: about}
	}
	if id := attrValue(el.Attr, rdfXMLNS, "ID"); id != "" {
		return IRI{Value: "#" + id}
	}
	if nodeID := attrValue(el.Attr, rdfXMLNS, "nodeID"); nodeID != "" {
		return BlankNode{ID: nodeID}
	}
	return d.blanks.next()
}

func attrValue(attrs []xml.Attr, space, local string) string {
	for _, attr := range attrs {
		if attr.Name.Space == space && attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
