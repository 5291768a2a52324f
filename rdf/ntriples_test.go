package rdf

import (
	"io"
	"strings"
	"testing"
)

func TestNTriplesDecoderBasic(t *testing.T) {
	input := `<http://a.example/s> <http://a.example/p> "hello"@en .
<http://a.example/s> <http://a.example/p2> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .
_:b1 <http://a.example/p> <http://a.example/o> .
`
	dec := newNTriplesDecoder(strings.NewReader(input), DefaultDecodeOptions())
	var got []Triple
	for {
		tr, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, tr)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 triples, got %d", len(got))
	}
	lit, ok := got[0].O.(Literal)
	if !ok || lit.Lang != "en" || lit.Lexical != "hello" {
		t.Errorf("unexpected object for statement 0: %#v", got[0].O)
	}
	lit2, ok := got[1].O.(Literal)
	if !ok || lit2.Datatype.Value != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Errorf("unexpected object for statement 1: %#v", got[1].O)
	}
	bn, ok := got[2].S.(BlankNode)
	if !ok || bn.ID != "b1" {
		t.Errorf("unexpected subject for statement 2: %#v", got[2].S)
	}
}

func TestNTriplesDecoderSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# a comment\n\n<http://a.example/s> <http://a.example/p> <http://a.example/o> .\n"
	dec := newNTriplesDecoder(strings.NewReader(input), DefaultDecodeOptions())
	tr, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.S.String() != "http://a.example/s" {
		t.Errorf("unexpected subject: %v", tr.S)
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}
