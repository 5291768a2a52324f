package rdfa

import "github.com/elf-pavlik/rdf-rdfa/rdf"

// direction distinguishes a pending rel from a pending rev triple.
type direction uint8

const (
	directionForward direction = iota
	directionReverse
)

// incompleteTriple is a pending (predicate, direction) entry awaiting a
// subject from a descendant element (§3, §4.5 Step 9/11).
type incompleteTriple struct {
	predicate rdf.IRI
	dir       direction
}

// evalContext is the per-element evaluation context threaded through the
// traversal (§3). Values are logically immutable from a child's
// perspective: clone() always hands back independent copies of the map
// fields, so mutating a child's context can never be observed by its
// parent or siblings (§9).
type evalContext struct {
	base              string
	parentSubject     rdf.Term
	parentObject      rdf.Term
	uriMappings       map[string]string // prefix -> IRI, case handling per version
	namespaces        map[string]string // prefix -> namespace IRI, xmlns-sourced subset
	incompleteTriples []incompleteTriple
	language          string
	termMappings      map[string]string // NCName -> IRI
	defaultVocabulary string
}

// newRootContext builds the initial evaluation context for a document,
// seeded with host-language defaults (§4.5 Preamble).
func newRootContext(base string, version Version, host HostLanguage) *evalContext {
	terms := map[string]string{}
	if version == Version10 && host.IsHTML() {
		for _, t := range defaultXHTMLTerms {
			terms[t] = xhvNS + t
		}
	}
	return &evalContext{
		base:        base,
		uriMappings: map[string]string{},
		namespaces:  map[string]string{},
		termMappings: terms,
	}
}

// clone returns a copy of c, safe for a caller to mutate freely (including
// its map fields) without affecting c or any other context derived from it.
func (c *evalContext) clone() *evalContext {
	cp := *c
	cp.incompleteTriples = nil
	cp.uriMappings = copyStringMap(c.uriMappings)
	cp.namespaces = copyStringMap(c.namespaces)
	cp.termMappings = copyStringMap(c.termMappings)
	return &cp
}

func copyStringMap(m map[string]string) map[string]string {
	fresh := make(map[string]string, len(m)+2)
	for k, v := range m {
		fresh[k] = v
	}
	return fresh
}
