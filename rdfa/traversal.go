package rdfa

import (
	"fmt"
	"strings"

	"github.com/elf-pavlik/rdf-rdfa/rdf"
)

// bnodeGen hands out fresh, document-scoped blank node identifiers for
// subjects that RDFa establishes implicitly (an element with @typeof but no
// identifying attribute) and for the object of a @rel/@rev that names no
// resource.
type bnodeGen struct{ n int }

func (g *bnodeGen) next() rdf.BlankNode {
	g.n++
	return rdf.BlankNode{ID: fmt.Sprintf("n%d", g.n)}
}

// engine walks a document tree and emits the RDF statements encoded in its
// RDFa attributes (§4.5). It is the traversal half of Reader; Reader itself
// owns the document preamble (host/version detection, profile merging).
type engine struct {
	host   HostLanguage
	version Version
	diag   *diagSink
	bnodes bnodeGen
	emit   func(rdf.Triple)
}

// objectOrSubject is the fallback used whenever an element establishes no
// subject of its own: the nearest ancestor's current object resource, or
// failing that its subject (§4.5 Step 4/7).
func objectOrSubject(ctx *evalContext) rdf.Term {
	if ctx.parentObject != nil {
		return ctx.parentObject
	}
	return ctx.parentSubject
}

func langAttr(node Node, host HostLanguage) (string, bool) {
	if v, ok := node.Attr("xml:lang"); ok {
		return v, true
	}
	if host.IsHTML() {
		if v, ok := node.Attr("lang"); ok {
			return v, true
		}
	}
	return "", false
}

// process runs the per-element procedure of §4.5 Steps 1-12 for node under
// the context established by its parent (parent.parentSubject is the
// parent element's own subject; parent.incompleteTriples are the pending
// triples it deferred, to be completed now that node's subject is known),
// then recurses into node's element children. isRoot is true only for the
// document element, where Step 5/6 defaults the subject to the document
// base in the absence of an identifying attribute.
func (e *engine) process(parent *evalContext, node Node, path string, isRoot bool) {
	local := parent.clone()

	if base, ok := node.Attr("xml:base"); ok && !e.host.IsHTML() {
		local.base = rdf.ResolveIRI(local.base, base)
	}

	if vocab, ok := node.Attr("vocab"); ok {
		vocab = strings.TrimSpace(vocab)
		local.defaultVocabulary = vocab
		if vocab != "" {
			e.emit(rdf.Triple{S: rdf.IRI{Value: local.base}, P: hasVocabulary, O: rdf.IRI{Value: vocab}})
		}
	}

	for _, perr := range extractMappings(local, node, e.host, e.version) {
		e.diag.add(ClassPrefixError, path, "%v", perr)
	}

	if lang, ok := langAttr(node, e.host); ok {
		local.language = lang
	}

	aboutVal, aboutPresent := node.Attr("about")
	typeofVal, typeofPresent := node.Attr("typeof")
	relVal, relPresent := node.Attr("rel")
	revVal, revPresent := node.Attr("rev")
	resourceVal, resourcePresent := node.Attr("resource")
	hrefVal, hrefPresent := node.Attr("href")
	srcVal, srcPresent := node.Attr("src")
	propertyVal, propertyPresent := node.Attr("property")

	explicitResource := resourcePresent || hrefPresent || srcPresent

	resolvedResourceAttr := func() rdf.Term {
		switch {
		case resourcePresent:
			if t, ok := resolveSafeCurieOrCurieOrIRI(local, e.version, resourceVal, local.base); ok {
				return t
			}
			return nil
		case hrefPresent:
			return rdf.IRI{Value: rdf.ResolveIRI(local.base, hrefVal)}
		case srcPresent:
			return rdf.IRI{Value: rdf.ResolveIRI(local.base, srcVal)}
		default:
			return nil
		}
	}

	tagName := node.TagName()
	defaultSubject := func() rdf.Term {
		if isRoot || (e.host.IsHTML() && (tagName == "head" || tagName == "body")) {
			return rdf.IRI{Value: local.base}
		}
		return objectOrSubject(parent)
	}

	// Step 5: an element that establishes no subject of its own and carries
	// none of @property/@rel/@rev either contributes nothing and must not
	// consume or drop the parent's pending incomplete triples (§4.5 Step
	// 5/11/12).
	skip := !aboutPresent && !explicitResource && !typeofPresent && !relPresent && !revPresent && !propertyPresent

	resolvedObj := resolvedResourceAttr()

	var newSubject rdf.Term
	var currentObjectResource rdf.Term

	if relPresent || revPresent {
		switch {
		case aboutPresent:
			newSubject, _ = resolveSafeCurieOrCurieOrIRI(local, e.version, aboutVal, local.base)
		case typeofPresent:
			newSubject = e.bnodes.next()
		default:
			newSubject = defaultSubject()
		}
		// Step 9: no resolved resource means the rel/rev triples are
		// incomplete and chain through a freshly minted blank node, not
		// through a nil object.
		currentObjectResource = resolvedObj
		if currentObjectResource == nil {
			currentObjectResource = e.bnodes.next()
		}
	} else {
		switch {
		case aboutPresent:
			newSubject, _ = resolveSafeCurieOrCurieOrIRI(local, e.version, aboutVal, local.base)
		case explicitResource:
			newSubject = resolvedObj
		case typeofPresent:
			newSubject = e.bnodes.next()
		default:
			newSubject = defaultSubject()
		}
		currentObjectResource = newSubject
	}

	if newSubject == nil {
		newSubject = e.bnodes.next()
	}

	if !skip {
		for _, it := range parent.incompleteTriples {
			if it.dir == directionForward {
				e.emit(rdf.Triple{S: parent.parentSubject, P: it.predicate, O: newSubject})
			} else {
				e.emit(rdf.Triple{S: newSubject, P: it.predicate, O: parent.parentSubject})
			}
		}
	}

	if typeofPresent {
		for _, iri := range resolveTermOrCurieOrAbsIRIList(local, e.version, e.diag, path, typeofVal) {
			e.emit(rdf.Triple{S: newSubject, P: rdfType, O: iri})
		}
	}

	var newIncomplete []incompleteTriple
	if relPresent {
		for _, iri := range resolveTermOrCurieOrAbsIRIList(local, e.version, e.diag, path, relVal) {
			if resolvedObj != nil {
				e.emit(rdf.Triple{S: newSubject, P: iri, O: resolvedObj})
			} else {
				newIncomplete = append(newIncomplete, incompleteTriple{predicate: iri, dir: directionForward})
			}
		}
	}
	if revPresent {
		for _, iri := range resolveTermOrCurieOrAbsIRIList(local, e.version, e.diag, path, revVal) {
			if resolvedObj != nil {
				e.emit(rdf.Triple{S: resolvedObj, P: iri, O: newSubject})
			} else {
				newIncomplete = append(newIncomplete, incompleteTriple{predicate: iri, dir: directionReverse})
			}
		}
	}

	recurse := true
	if propertyPresent {
		contentVal, hasContent := node.Attr("content")
		datatypeVal, hasDatatype := node.Attr("datatype")
		if dt := strings.TrimSpace(datatypeVal); hasDatatype && dt != "" {
			if iri, ok := resolveTermOrCurieOrAbsIRI(local, e.version, e.diag, path, dt); ok {
				datatypeVal = iri.Value
			} else {
				hasDatatype = false
			}
		}

		var obj rdf.Term
		if !hasContent && !hasDatatype && !relPresent && !revPresent && explicitResource {
			obj = currentObjectResource
		} else {
			lit, r := buildLiteral(local, node, e.version, contentVal, hasContent, datatypeVal, hasDatatype)
			obj = lit
			recurse = r
		}

		for _, iri := range resolveTermOrCurieOrAbsIRIList(local, e.version, e.diag, path, propertyVal) {
			e.emit(rdf.Triple{S: newSubject, P: iri, O: obj})
		}
	}

	if skip {
		local.parentSubject = parent.parentSubject
		local.parentObject = parent.parentObject
		local.incompleteTriples = parent.incompleteTriples
	} else {
		local.parentSubject = newSubject
		local.parentObject = currentObjectResource
		local.incompleteTriples = newIncomplete
	}

	if !recurse {
		return
	}

	for _, child := range node.Children() {
		if !child.IsElement() {
			continue
		}
		e.process(local, child, path+"/"+child.TagName(), false)
		if e.diag.err() != nil {
			return
		}
	}
}
