package rdfa

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/elf-pavlik/rdf-rdfa/rdf"
)

// ProfileFetcher retrieves the document identified by iri, along with the
// triple format it should be decoded with. Reader.Options.ProfileFetcher
// supplies this; without one, @profile and the RDFa 1.1 default profiles
// are simply skipped with a recorded diagnostic rather than failing the
// whole document.
type ProfileFetcher func(iri string) (io.Reader, rdf.Format, error)

// profileLoader merges rdfa:prefix/rdfa:term/rdfa:vocabulary triples from
// profile documents into an evaluation context (§4.2, §4.5 Preamble).
type profileLoader struct {
	fetch       ProfileFetcher
	documentIRI string
	loaded      map[string]bool
}

func newProfileLoader(fetch ProfileFetcher, documentIRI string) *profileLoader {
	return &profileLoader{fetch: fetch, documentIRI: documentIRI, loaded: map[string]bool{}}
}

// load fetches iri, unless it is the document currently being processed
// (self-recursion guard, §4.2) or was already merged, and applies every
// prefix/term/vocabulary declaration it contains to ctx.
func (p *profileLoader) load(iri string, ctx *evalContext, diag *diagSink) {
	if iri == "" || iri == p.documentIRI || p.loaded[iri] {
		return
	}
	p.loaded[iri] = true

	if p.fetch == nil {
		diag.add(ClassProfileReferenceError, iri, "no profile fetcher configured, skipping")
		return
	}

	r, format, err := p.fetch(iri)
	if err != nil {
		diag.add(ClassProfileReferenceError, iri, "could not fetch profile: %v", err)
		return
	}

	var triples []rdf.Triple
	err = rdf.ParseTriples(context.Background(), r, format, func(t rdf.Triple) error {
		triples = append(triples, t)
		return nil
	})
	if err != nil {
		diag.add(ClassProfileReferenceError, iri, "could not parse profile: %v", err)
		return
	}

	applyProfileTriples(ctx, triples)
}

func applyProfileTriples(ctx *evalContext, triples []rdf.Triple) {
	groups := map[string][]rdf.Triple{}
	for _, t := range triples {
		groups[termSubjectKey(t.S)] = append(groups[termSubjectKey(t.S)], t)
	}

	for _, group := range groups {
		var prefix, term, uri string
		var hasPrefix, hasTerm, hasURI bool

		for _, t := range group {
			switch t.P.Value {
			case rdfaNS + "prefix":
				prefix, hasPrefix = literalText(t.O), true
			case rdfaNS + "term":
				term, hasTerm = literalText(t.O), true
			case rdfaNS + "uri":
				uri, hasURI = termText(t.O), true
			case rdfaNS + "vocabulary":
				ctx.defaultVocabulary = termText(t.O)
			}
		}

		if hasPrefix && hasURI {
			ctx.uriMappings[strings.ToLower(prefix)] = uri
		}
		if hasTerm && hasURI {
			ctx.termMappings[term] = uri
		}
	}
}

func termSubjectKey(t rdf.Term) string {
	return fmt.Sprintf("%d:%s", t.Kind(), t.String())
}

func literalText(t rdf.Term) string {
	if lit, ok := t.(rdf.Literal); ok {
		return lit.Lexical
	}
	return ""
}

func termText(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return v.Value
	case rdf.Literal:
		return v.Lexical
	default:
		return ""
	}
}
