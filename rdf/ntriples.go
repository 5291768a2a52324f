package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type ntDecoder struct {
	scanner *bufio.Scanner
	line    int
	opts    DecodeOptions
	err     error
}

func newNTriplesDecoder(r io.Reader, opts DecodeOptions) TripleDecoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), opts.MaxLineBytes)
	return &ntDecoder{scanner: scanner, opts: opts}
}

func (d *ntDecoder) Next() (Triple, error) {
	if d.err != nil {
		return Triple{}, d.err
	}
	for d.scanner.Scan() {
		d.line++
		line := strings.TrimSpace(d.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseNTriplesLine(line)
		if err != nil {
			return Triple{}, wrapParseError("ntriples", d.line, err)
		}
		return t, nil
	}
	if err := d.scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			err = ErrLineTooLong
		}
		d.err = wrapParseError("ntriples", d.line, err)
		return Triple{}, d.err
	}
	d.err = io.EOF
	return Triple{}, io.EOF
}

func (d *ntDecoder) Close() error { return nil }

// parseNTriplesLine parses a single "<s> <p> <o> ." statement. N-Triples
// terms never contain unescaped whitespace, so a token scan is sufficient;
// only the literal's quoted lexical form may itself contain spaces, so it is
// consumed specially.
func parseNTriplesLine(line string) (Triple, error) {
	rest := line
	s, rest, err := parseNTTerm(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	p, rest, err := parseNTTerm(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("predicate: %w", err)
	}
	pIRI, ok := p.(IRI)
	if !ok {
		return Triple{}, fmt.Errorf("predicate must be an IRI")
	}
	o, rest, err := parseNTTerm(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ".") {
		return Triple{}, fmt.Errorf("statement not terminated with '.'")
	}
	return Triple{S: s, P: pIRI, O: o}, nil
}

func parseNTTerm(s string) (Term, string, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return nil, s, fmt.Errorf("unexpected end of statement")
	}
	switch s[0] {
	case '<':
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return nil, s, fmt.Errorf("unterminated IRI")
		}
		return IRI{Value: unescapeNTString(s[1:end])}, s[end+1:], nil
	case '_':
		if !strings.HasPrefix(s, "_:") {
			return nil, s, fmt.Errorf("malformed blank node")
		}
		i := 2
		for i < len(s) && !isNTSpace(s[i]) {
			i++
		}
		return BlankNode{ID: s[2:i]}, s[i:], nil
	case '"':
		lex, rest, err := scanNTQuoted(s)
		if err != nil {
			return nil, s, err
		}
		lit := Literal{Lexical: unescapeNTString(lex)}
		rest = strings.TrimLeft(rest, " \t")
		switch {
		case strings.HasPrefix(rest, "^^"):
			rest = rest[2:]
			dt, remainder, err := parseNTTerm(rest)
			if err != nil {
				return nil, s, fmt.Errorf("datatype: %w", err)
			}
			dtIRI, ok := dt.(IRI)
			if !ok {
				return nil, s, fmt.Errorf("datatype must be an IRI")
			}
			lit.Datatype = dtIRI
			return lit, remainder, nil
		case strings.HasPrefix(rest, "@"):
			i := 1
			for i < len(rest) && !isNTSpace(rest[i]) {
				i++
			}
			lit.Lang = rest[1:i]
			return lit, rest[i:], nil
		default:
			return lit, rest, nil
		}
	default:
		return nil, s, fmt.Errorf("unexpected character %q", s[0])
	}
}

func isNTSpace(b byte) bool { return b == ' ' || b == '\t' || b == '.' }

func scanNTQuoted(s string) (lexical, rest string, err error) {
	i := 1
	for i < len(s) {
		if s[i] == '\\' {
			i += 2
			continue
		}
		if s[i] == '"' {
			return s[1:i], s[i+1:], nil
		}
		i++
	}
	return "", s, fmt.Errorf("unterminated string literal")
}

func unescapeNTString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'u':
			if i+4 < len(s) {
				if v, err := strconv.ParseInt(s[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 4
					continue
				}
			}
			b.WriteByte('\\')
			b.WriteByte('u')
		case 'U':
			if i+8 < len(s) {
				if v, err := strconv.ParseInt(s[i+1:i+9], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 8
					continue
				}
			}
			b.WriteByte('\\')
			b.WriteByte('U')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
