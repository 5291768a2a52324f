// Package rdf provides the RDF value-type model (IRIs, blank nodes, literals,
// triples and quads) together with streaming decoders for a handful of RDF
// serializations: N-Triples, Turtle, RDF/XML and JSON-LD.
//
// Within this module the package exists to read RDFa distiller/vocabulary
// profile documents (see package rdfa) rather than to be a general-purpose
// RDF toolkit, which keeps its surface intentionally small: decoding only,
// no encoders, no quad/named-graph formats.
//
// Example:
//
//	dec, err := rdf.NewTripleDecoder(r, rdf.FormatTurtle)
//	if err != nil {
//	    return err
//	}
//	defer dec.Close()
//	for {
//	    t, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use t.S, t.P, t.O
//	}
package rdf
