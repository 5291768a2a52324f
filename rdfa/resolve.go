package rdfa

import (
	"strings"

	"github.com/elf-pavlik/rdf-rdfa/rdf"
)

// resolveSafeCurieOrCurieOrIRI resolves an @about/@resource/@href/@src
// style attribute value under the restriction set {safe_curie, curie, uri}
// (§4.4). A bracketed value is always treated as a safe CURIE, even an
// empty one ("[]"), which resolves to nothing (ok == false) rather than
// falling back to IRI resolution.
func resolveSafeCurieOrCurieOrIRI(ctx *evalContext, version Version, raw, base string) (rdf.Term, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		inner := raw[1 : len(raw)-1]
		return resolveCURIE(ctx, version, inner)
	}

	if t, ok := resolveCURIE(ctx, version, raw); ok {
		return t, true
	}

	return rdf.IRI{Value: rdf.ResolveIRI(base, raw)}, true
}

// resolveCURIE resolves raw under the CURIE grammar alone: prefix:local,
// bare _:id for a blank node, or a bare colon-prefixed empty-prefix form
// defaulting to the XHTML vocabulary (§4.4.2).
func resolveCURIE(ctx *evalContext, version Version, raw string) (rdf.Term, bool) {
	if raw == "" {
		return nil, false
	}

	if strings.HasPrefix(raw, "_:") {
		return rdf.BlankNode{ID: bnodeLocalID(raw[2:])}, true
	}

	idx := strings.IndexByte(raw, ':')
	if idx < 0 {
		return nil, false
	}
	prefix, local := raw[:idx], raw[idx+1:]

	if prefix == "" {
		// xmlns="" (explicit-declaration-wins, see DESIGN.md) overrides the
		// XHTML default when the document declared one.
		if ns, ok := ctx.namespaces[""]; ok {
			return rdf.IRI{Value: ns + local}, true
		}
		return rdf.IRI{Value: xhvNS + local}, true
	}

	lookupPrefix := prefix
	if version == Version11 {
		lookupPrefix = strings.ToLower(prefix)
	}
	ns, ok := ctx.uriMappings[lookupPrefix]
	if !ok {
		return nil, false
	}
	return rdf.IRI{Value: ns + local}, true
}

// bnodeLocalID normalizes the reference following "_:" so that the same
// source label always maps to the same blank node within one document,
// and an empty reference ("_:" with nothing after it) gets a single
// stable identity distinct from any named one.
func bnodeLocalID(ref string) string {
	if ref == "" {
		return "rdfa-empty-bnode-ref"
	}
	return "src-" + ref
}

// resolveTermOrCurieOrAbsIRI resolves a single whitespace-delimited token
// from @rel, @rev, @property, @typeof or @datatype under the restriction
// set {term, curie, abs_uri} (§4.4, §4.4.1). Terms are matched against
// ctx.termMappings first exactly, then case-insensitively, then (for non-
// empty defaultVocabulary) by concatenation; anything left unresolved is
// reported through diag and dropped.
func resolveTermOrCurieOrAbsIRI(ctx *evalContext, version Version, diag *diagSink, elementPath, token string) (rdf.IRI, bool) {
	if token == "" {
		return rdf.IRI{}, false
	}

	if iri, ok := resolveTerm(ctx, version, token); ok {
		return iri, true
	}

	if t, ok := resolveCURIE(ctx, version, token); ok {
		if iri, isIRI := t.(rdf.IRI); isIRI {
			return iri, true
		}
	}

	if rdf.IsAbsoluteIRI(token) {
		return rdf.IRI{Value: token}, true
	}

	if diag != nil {
		diag.add(ClassUnresolvedTerm, elementPath, "could not resolve %q as a term, CURIE or absolute IRI", token)
	}
	return rdf.IRI{}, false
}

// resolveTerm implements §4.4.1 in isolation, without falling back to the
// CURIE or absolute-IRI branches of the caller's restriction set.
func resolveTerm(ctx *evalContext, version Version, token string) (rdf.IRI, bool) {
	if strings.ContainsAny(token, ":/") {
		return rdf.IRI{}, false
	}

	if ns, ok := ctx.termMappings[token]; ok {
		return rdf.IRI{Value: ns}, true
	}

	lower := strings.ToLower(token)
	for k, v := range ctx.termMappings {
		if strings.ToLower(k) == lower {
			return rdf.IRI{Value: v}, true
		}
	}

	if ctx.defaultVocabulary != "" {
		return rdf.IRI{Value: ctx.defaultVocabulary + token}, true
	}

	return rdf.IRI{}, false
}

// resolveTermOrCurieOrAbsIRIList resolves a whitespace-separated attribute
// value (as used by @rel, @rev, @property, @typeof) into the IRIs that
// resolved successfully, recording a diagnostic for each token that did
// not.
func resolveTermOrCurieOrAbsIRIList(ctx *evalContext, version Version, diag *diagSink, elementPath, raw string) []rdf.IRI {
	var out []rdf.IRI
	for _, tok := range strings.Fields(raw) {
		if iri, ok := resolveTermOrCurieOrAbsIRI(ctx, version, diag, elementPath, tok); ok {
			out = append(out, iri)
		}
	}
	return out
}
