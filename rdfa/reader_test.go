package rdfa

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseHTMLDoc(t *testing.T, src string) Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	var root *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if root != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "html" {
			root = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if root == nil {
		t.Fatalf("no <html> element found")
	}
	return wrapHTML(root)
}

func readAll(t *testing.T, r *Reader) []Statement {
	t.Helper()
	var out []Statement
	for {
		s, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, s)
	}
	return out
}

func hasTriple(stmts []Statement, s, p, o string) bool {
	for _, st := range stmts {
		if st.S.String() == s && st.P.Value == p && st.O.String() == o {
			return true
		}
	}
	return false
}

func TestReaderVocabAndProperty(t *testing.T) {
	doc := parseHTMLDoc(t, `<html vocab="http://example.org/"><body><p property="title">Hello</p></body></html>`)
	r, err := NewReader(doc, Options{BaseIRI: "http://base.example/doc"})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	stmts := readAll(t, r)

	if !hasTriple(stmts, "http://base.example/doc", rdfaNS+"hasVocabulary", "http://example.org/") {
		t.Errorf("missing hasVocabulary triple, got %+v", stmts)
	}
	if !hasTriple(stmts, "http://base.example/doc", "http://example.org/title", `"Hello"`) {
		t.Errorf("missing title triple, got %+v", stmts)
	}
}

func TestReaderPrefixAndAboutAndDatatype(t *testing.T) {
	doc := parseHTMLDoc(t, `<html><body>
		<div prefix="foo: http://foo.example/">
			<span about="_:x" property="foo:bar" content="42" datatype="http://www.w3.org/2001/XMLSchema#integer"></span>
		</div>
	</body></html>`)
	r, err := NewReader(doc, Options{BaseIRI: "http://base.example/doc"})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	stmts := readAll(t, r)

	if !hasTriple(stmts, "_:src-x", "http://foo.example/bar", `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`) {
		t.Errorf("missing typed literal triple, got %+v", stmts)
	}
}

func TestReaderRelWithResourceAndChainedIncompleteTriple(t *testing.T) {
	doc := parseHTMLDoc(t, `<html><body>
		<div about="http://base.example/alice" rel="http://example.org/knows">
			<span resource="http://base.example/bob" property="http://example.org/name" content="Bob"></span>
		</div>
	</body></html>`)
	r, err := NewReader(doc, Options{BaseIRI: "http://base.example/doc"})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	stmts := readAll(t, r)

	if !hasTriple(stmts, "http://base.example/alice", "http://example.org/knows", "http://base.example/bob") {
		t.Errorf("missing chained rel triple, got %+v", stmts)
	}
	if !hasTriple(stmts, "http://base.example/bob", "http://example.org/name", `"Bob"`) {
		t.Errorf("missing property triple on chained resource, got %+v", stmts)
	}
}

func TestReaderTypeofEstablishesBlankSubject(t *testing.T) {
	doc := parseHTMLDoc(t, `<html vocab="http://example.org/"><body>
		<div typeof="Person">
			<span property="name" content="Carol"></span>
		</div>
	</body></html>`)
	r, err := NewReader(doc, Options{BaseIRI: "http://base.example/doc"})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	stmts := readAll(t, r)

	var subject string
	for _, st := range stmts {
		if st.P.Value == rdfNS+"type" && st.O.String() == "http://example.org/Person" {
			subject = st.S.String()
		}
	}
	if subject == "" {
		t.Fatalf("no rdf:type triple for Person found in %+v", stmts)
	}
	if !hasTriple(stmts, subject, "http://example.org/name", `"Carol"`) {
		t.Errorf("expected name triple on the typeof-established subject %s, got %+v", subject, stmts)
	}
}

func TestReaderDiagnosticOnUnresolvedTerm(t *testing.T) {
	doc := parseHTMLDoc(t, `<html><body><p property="nosuchterm">x</p></body></html>`)
	r, err := NewReader(doc, Options{BaseIRI: "http://base.example/doc"})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	_ = readAll(t, r)

	var found bool
	for _, d := range r.Diagnostics() {
		if d.Class == ClassUnresolvedTerm {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an UnresolvedTerm diagnostic, got %+v", r.Diagnostics())
	}
}

func TestReaderReservedPrefixIsRejectedNotFatal(t *testing.T) {
	doc := parseHTMLDoc(t, `<html prefix="_: http://bad.example/"><body></body></html>`)
	r, err := NewReader(doc, Options{BaseIRI: "http://base.example/doc", Validate: true})
	if err != nil {
		t.Fatalf("unexpected fatal error for a non-document-error diagnostic: %v", err)
	}

	var found bool
	for _, d := range r.Diagnostics() {
		if d.Class == ClassPrefixError {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a PrefixError diagnostic for reserved prefix _, got %+v", r.Diagnostics())
	}
}
