package rdfa

import (
	"testing"
)

func TestResolveCURIEBlankNode(t *testing.T) {
	ctx := newTestContext()
	term, ok := resolveCURIE(ctx, Version11, "_:x")
	if !ok || term.String() != "_:src-x" {
		t.Errorf("resolveCURIE(_:x) = %v, %v; want _:src-x, true", term, ok)
	}
}

func TestResolveCURIEEmptyPrefixDefaultsToXHV(t *testing.T) {
	ctx := newTestContext()
	term, ok := resolveCURIE(ctx, Version11, ":next")
	if !ok || term.String() != xhvNS+"next" {
		t.Errorf("resolveCURIE(:next) = %v, %v; want %s, true", term, ok, xhvNS+"next")
	}
}

func TestResolveCURIEEmptyPrefixExplicitOverride(t *testing.T) {
	ctx := newTestContext()
	ctx.namespaces[""] = "http://explicit.example/"
	term, ok := resolveCURIE(ctx, Version11, ":next")
	if !ok || term.String() != "http://explicit.example/next" {
		t.Errorf("resolveCURIE(:next) with explicit xmlns=\"\" = %v, %v", term, ok)
	}
}

func TestResolveCURIEUnmappedPrefix(t *testing.T) {
	ctx := newTestContext()
	if _, ok := resolveCURIE(ctx, Version11, "foo:bar"); ok {
		t.Errorf("expected resolveCURIE to fail for an unmapped prefix")
	}
}

func TestResolveCURIEPrefixCaseFoldingOnlyIn11(t *testing.T) {
	ctx := newTestContext()
	ctx.uriMappings["foo"] = "http://foo.example/"
	if _, ok := resolveCURIE(ctx, Version10, "FOO:bar"); ok {
		t.Errorf("RDFa 1.0 must not case-fold prefixes")
	}
	if term, ok := resolveCURIE(ctx, Version11, "FOO:bar"); !ok || term.String() != "http://foo.example/bar" {
		t.Errorf("RDFa 1.1 must case-fold prefixes, got %v, %v", term, ok)
	}
}

func TestResolveSafeCurieOrCurieOrIRIFallsBackToPlainIRI(t *testing.T) {
	ctx := newTestContext()
	term, ok := resolveSafeCurieOrCurieOrIRI(ctx, Version11, "page.html", "http://example.org/dir/")
	if !ok || term.String() != "http://example.org/dir/page.html" {
		t.Errorf("got %v, %v", term, ok)
	}
}

func TestResolveSafeCurieBrackets(t *testing.T) {
	ctx := newTestContext()
	term, ok := resolveSafeCurieOrCurieOrIRI(ctx, Version11, "[_:b1]", "http://example.org/")
	if !ok || term.String() != "_:src-b1" {
		t.Errorf("got %v, %v", term, ok)
	}
}

func TestResolveTermExactThenVocabFallback(t *testing.T) {
	ctx := newTestContext()
	ctx.termMappings["Next"] = xhvNS + "next"
	ctx.defaultVocabulary = "http://example.org/"

	if iri, ok := resolveTerm(ctx, Version11, "Next"); !ok || iri.Value != xhvNS+"next" {
		t.Errorf("expected exact term match, got %v, %v", iri, ok)
	}
	if iri, ok := resolveTerm(ctx, Version11, "unknown"); !ok || iri.Value != "http://example.org/unknown" {
		t.Errorf("expected default-vocabulary fallback, got %v, %v", iri, ok)
	}
	if iri, ok := resolveTerm(ctx, Version11, "has/slash"); ok {
		t.Errorf("terms may not contain a slash, got %v", iri)
	}
}
