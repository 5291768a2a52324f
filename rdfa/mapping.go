package rdfa

import (
	"fmt"
	"strings"
)

// PrefixError reports a malformed prefix declaration encountered while
// extracting mappings from an element's attributes (§4.3).
type PrefixError struct {
	Prefix string
	Reason string
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("rdfa: invalid prefix %q: %s", e.Prefix, e.Reason)
}

// extractMappings scans node's attributes for namespace and prefix
// declarations and applies them to ctx in place. ctx must already be a
// context the caller owns exclusively (i.e. the result of clone()), since
// this mutates its uriMappings and namespaces maps directly.
//
// Two sources are consulted, in the order the host language makes them
// available (§4.3):
//
//   - xmlns:foo="..." declarations, always recognized on XML hosts via the
//     tree's native namespace nodes, and recovered from the raw attribute
//     list as a fallback on HTML hosts where the parser does not expose
//     them as namespace nodes;
//   - the RDFa 1.1 @prefix attribute, a whitespace-separated sequence of
//     NCName":" IRI pairs, which take precedence over any xmlns mapping for
//     the same prefix.
//
// A bare xmlns="..." (no prefix) attribute does not introduce a uriMapping;
// it only affects CURIE resolution for the reserved empty prefix, handled
// separately in resolve.go.
//
// Prefixes are lower-cased only for RDFa 1.1; 1.0 documents keep and match
// prefixes case-sensitively (§4.3).
func extractMappings(ctx *evalContext, node Node, host HostLanguage, version Version) []error {
	var errs []error

	foldCase := func(prefix string) string {
		if version == Version11 {
			return strings.ToLower(prefix)
		}
		return prefix
	}

	for _, a := range node.Attrs() {
		if a.Prefix == "" && a.Local == "xmlns" {
			ctx.namespaces[""] = a.Value
			continue
		}
		if a.Prefix != "xmlns" {
			continue
		}
		prefix := foldCase(a.Local)
		if prefix == "_" {
			errs = append(errs, &PrefixError{Prefix: prefix, Reason: "reserved prefix _ may not be declared"})
			continue
		}
		ctx.namespaces[prefix] = a.Value
		ctx.uriMappings[prefix] = a.Value
	}

	// HTML hosts commonly lose xmlns declarations as distinct namespace
	// nodes; golang.org/x/net/html instead keeps them as ordinary
	// "xmlns:foo" attribute keys, which Attrs() already reports with
	// Prefix == "xmlns" via splitQualifiedAttr, so no extra fallback scan
	// is needed here beyond the loop above.

	if raw, ok := node.Attr("prefix"); ok && version == Version11 {
		for _, pair := range parsePrefixPairs(raw) {
			if !isValidNCName(pair.prefix) {
				errs = append(errs, &PrefixError{Prefix: pair.prefix, Reason: "not a valid NCName"})
				continue
			}
			prefix := foldCase(pair.prefix)
			if prefix == "_" {
				errs = append(errs, &PrefixError{Prefix: prefix, Reason: "reserved prefix _ may not be declared"})
				continue
			}
			ctx.uriMappings[prefix] = pair.iri
		}
	}

	return errs
}

type prefixPair struct {
	prefix string
	iri    string
}

// parsePrefixPairs splits an @prefix attribute value into NCName/IRI pairs.
// The grammar is a whitespace-separated sequence of "NCName:" tokens each
// immediately followed by a whitespace-separated IRI token; a malformed
// trailing token (missing IRI, or a token without a colon) is dropped
// rather than aborting the whole attribute.
func parsePrefixPairs(raw string) []prefixPair {
	fields := strings.Fields(raw)
	var out []prefixPair
	for i := 0; i < len(fields); i++ {
		tok := fields[i]
		if !strings.HasSuffix(tok, ":") {
			continue
		}
		name := strings.TrimSuffix(tok, ":")
		if i+1 >= len(fields) {
			break
		}
		out = append(out, prefixPair{prefix: name, iri: fields[i+1]})
		i++
	}
	return out
}

// isValidNCName reports whether s is a syntactically valid XML NCName, the
// constraint @prefix tokens (minus their trailing colon) must satisfy.
func isValidNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStartRune(r) {
				return false
			}
			continue
		}
		if !isNameRune(r) {
			return false
		}
	}
	return true
}

func isNameStartRune(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r > 127
}

func isNameRune(r rune) bool {
	return isNameStartRune(r) || r == '-' || r == '.' || (r >= '0' && r <= '9')
}
