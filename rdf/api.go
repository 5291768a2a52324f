package rdf

import (
	"context"
	"io"
)

// NewTripleDecoder creates a decoder for the given format using default
// options.
func NewTripleDecoder(r io.Reader, format Format) (TripleDecoder, error) {
	return NewTripleDecoderWithOptions(r, format, DefaultDecodeOptions())
}

// NewTripleDecoderWithOptions creates a decoder for the given format.
func NewTripleDecoderWithOptions(r io.Reader, format Format, opts DecodeOptions) (TripleDecoder, error) {
	opts = normalizeDecodeOptions(opts)
	switch format {
	case FormatTurtle:
		return newTurtleDecoder(r, opts), nil
	case FormatNTriples:
		return newNTriplesDecoder(r, opts), nil
	case FormatRDFXML:
		return newRDFXMLDecoder(r, opts), nil
	case FormatJSONLD:
		return newJSONLDTripleDecoder(r, opts)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ParseTriples decodes every triple in r and invokes handler for each, in
// document order. Parsing stops at the first handler or decode error.
func ParseTriples(ctx context.Context, r io.Reader, format Format, handler TripleHandler) error {
	opts := DefaultDecodeOptions()
	opts.Context = ctx
	dec, err := NewTripleDecoderWithOptions(r, format, opts)
	if err != nil {
		return err
	}
	defer dec.Close()
	for {
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		t, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := handler(t); err != nil {
			return err
		}
	}
}
