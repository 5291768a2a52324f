package rdfa

import "fmt"

// DiagnosticClass classifies a message produced while processing a
// document (§7). Only DocumentError is fatal when Options.Validate is set;
// the others are always recorded but never abort processing.
type DiagnosticClass string

const (
	ClassInfo                  DiagnosticClass = "info"
	ClassWarning                DiagnosticClass = "warning"
	ClassDocumentError          DiagnosticClass = "document-error"
	ClassProfileReferenceError  DiagnosticClass = "profile-reference-error"
	ClassUnresolvedCURIE        DiagnosticClass = "unresolved-curie"
	ClassUnresolvedTerm         DiagnosticClass = "unresolved-term"
	ClassLiteralError           DiagnosticClass = "literal-error"
	ClassPrefixError            DiagnosticClass = "prefix-error"
)

// Diagnostic is a single message recorded during processing, suitable for
// surfacing to a caller directly or, when Options.ProcessorGraph is set,
// for materializing into processor-graph triples (§4.7).
type Diagnostic struct {
	Class   DiagnosticClass
	Message string
	Context string // e.g. the element path or attribute the message concerns
}

func (d Diagnostic) Error() string {
	if d.Context == "" {
		return fmt.Sprintf("rdfa: %s: %s", d.Class, d.Message)
	}
	return fmt.Sprintf("rdfa: %s: %s (%s)", d.Class, d.Message, d.Context)
}

// diagSink collects diagnostics during a single document's processing.
// err returns the first ClassDocumentError recorded while Options.Validate
// is in effect, or nil; the traversal engine checks it after every element
// to decide whether to abort early.
type diagSink struct {
	validate bool
	items    []Diagnostic
	fatal    error
}

func newDiagSink(validate bool) *diagSink {
	return &diagSink{validate: validate}
}

func (s *diagSink) add(class DiagnosticClass, context, format string, args ...interface{}) {
	d := Diagnostic{Class: class, Message: fmt.Sprintf(format, args...), Context: context}
	s.items = append(s.items, d)
	if s.validate && class == ClassDocumentError && s.fatal == nil {
		s.fatal = d
	}
}

func (s *diagSink) err() error { return s.fatal }
