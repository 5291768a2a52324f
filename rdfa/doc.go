// Package rdfa implements an RDFa 1.0/1.1 Core processor: it walks a parsed
// (X)HTML/XML document and emits the RDF statements encoded in its RDFa
// attributes (about, rel, rev, property, typeof, resource, href, vocab,
// prefix, content, datatype).
//
// The processor treats two things as external collaborators, matching the
// spirit of the RDFa specification's own layering:
//
//   - the parsed document tree, abstracted behind the Node interface in
//     node.go and backed by golang.org/x/net/html (via github.com/go-shiori/dom)
//     for HTML hosts and github.com/antchfx/xmlquery for XML/SVG hosts;
//   - the RDF term/statement value types, provided by the sibling
//     github.com/elf-pavlik/rdf-rdfa/rdf package.
//
// Typical use:
//
//	r, err := rdfa.NewReader(doc, rdfa.Options{BaseIRI: "http://example.org/"})
//	if err != nil {
//	    return err
//	}
//	for {
//	    stmt, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use stmt.S, stmt.P, stmt.O
//	}
package rdfa
