package rdfa

import "testing"

func TestBuildLiteralExplicitContent(t *testing.T) {
	ctx := newTestContext()
	lit, recurse := buildLiteral(ctx, fakeNode{text: "ignored"}, Version11, "Hello", true, "", false)
	if lit.Lexical != "Hello" || lit.Datatype.Value != "" {
		t.Errorf("got %+v", lit)
	}
	if !recurse {
		t.Errorf("explicit @content must not suppress recursion")
	}
}

func TestBuildLiteralExplicitContentWithDatatype(t *testing.T) {
	ctx := newTestContext()
	lit, _ := buildLiteral(ctx, fakeNode{}, Version11, "42", true, "http://www.w3.org/2001/XMLSchema#integer", true)
	if lit.Lexical != "42" || lit.Datatype.Value != "http://www.w3.org/2001/XMLSchema#integer" {
		t.Errorf("got %+v", lit)
	}
}

func TestBuildLiteralEmptyDatatypeForcesPlainFromText(t *testing.T) {
	ctx := newTestContext()
	ctx.language = "en"
	node := fakeNode{text: "plain text", children: []Node{fakeNode{tag: "b"}}}
	lit, recurse := buildLiteral(ctx, node, Version11, "", false, "", true)
	if lit.Lexical != "plain text" || lit.Datatype.Value != "" || lit.Lang != "en" {
		t.Errorf("got %+v", lit)
	}
	if !recurse {
		t.Errorf("a plain literal does not consume the element's markup")
	}
}

func TestBuildLiteralVersion10InfersXMLLiteralFromChildMarkup(t *testing.T) {
	ctx := newTestContext()
	node := fakeNode{markup: "<b>Hi</b>", children: []Node{fakeNode{tag: "b"}}}
	lit, recurse := buildLiteral(ctx, node, Version10, "", false, "", false)
	if lit.Datatype.Value != xmlLiteralDatatype.Value || lit.Lexical != "<b>Hi</b>" {
		t.Errorf("got %+v", lit)
	}
	if recurse {
		t.Errorf("an XML literal producer must suppress further recursion")
	}
}

func TestBuildLiteralVersion11NeverInfersXMLLiteral(t *testing.T) {
	ctx := newTestContext()
	node := fakeNode{text: "Hi", markup: "<b>Hi</b>", children: []Node{fakeNode{tag: "b"}}}
	lit, recurse := buildLiteral(ctx, node, Version11, "", false, "", false)
	if lit.Datatype.Value == xmlLiteralDatatype.Value {
		t.Errorf("RDFa 1.1 must not infer an XML literal from child markup, got %+v", lit)
	}
	if lit.Lexical != "Hi" {
		t.Errorf("expected plain text fallback, got %+v", lit)
	}
	if !recurse {
		t.Errorf("a plain literal does not consume the element's markup")
	}
}

func TestBuildLiteralExplicitXMLLiteralDatatype(t *testing.T) {
	ctx := newTestContext()
	node := fakeNode{markup: "<b>Hi</b>", children: []Node{fakeNode{tag: "b"}}}
	lit, recurse := buildLiteral(ctx, node, Version11, "", false, xmlLiteralDatatype.Value, true)
	if lit.Datatype.Value != xmlLiteralDatatype.Value || lit.Lexical != "<b>Hi</b>" {
		t.Errorf("got %+v", lit)
	}
	if recurse {
		t.Errorf("an XML literal producer must suppress further recursion")
	}
}

func TestBuildLiteralPlainFromTextWhenNoChildren(t *testing.T) {
	ctx := newTestContext()
	node := fakeNode{text: "no markup here"}
	lit, recurse := buildLiteral(ctx, node, Version11, "", false, "", false)
	if lit.Lexical != "no markup here" || lit.Datatype.Value != "" {
		t.Errorf("got %+v", lit)
	}
	if !recurse {
		t.Errorf("no child markup means nothing to suppress recursion into")
	}
}
