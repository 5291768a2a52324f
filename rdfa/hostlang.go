package rdfa

import "strings"

// HostLanguage identifies the markup language carrying the RDFa attributes
// (§4.1, GLOSSARY).
type HostLanguage string

const (
	HostXML1   HostLanguage = "xml1"
	HostXHTML1 HostLanguage = "xhtml1"
	HostXHTML5 HostLanguage = "xhtml5"
	HostHTML4  HostLanguage = "html4"
	HostHTML5  HostLanguage = "html5"
	HostSVG    HostLanguage = "svg"
)

// IsHTML reports whether host is one of the HTML family, as opposed to a
// generic XML host. Several processing rules are host-language-dependent
// in exactly this binary way (head/body subject defaulting, xml:lang vs
// lang precedence, xml:base handling).
func (h HostLanguage) IsHTML() bool {
	switch h {
	case HostXHTML1, HostXHTML5, HostHTML4, HostHTML5:
		return true
	default:
		return false
	}
}

// Version identifies the RDFa processing rules in effect (§3 "Version
// lock").
type Version string

const (
	Version10 Version = "1.0"
	Version11 Version = "1.1"
)

// detectHostLanguage infers the host language and RDFa version from
// explicit overrides, a doctype/root-version hint and a MIME type, in that
// order of precedence (§4.1).
func detectHostLanguage(override HostLanguage, versionOverride Version, doctype, rootVersionAttr, mimeType, rootElementName string) (HostLanguage, Version) {
	version := versionOverride
	if version == "" {
		version = detectVersion(rootVersionAttr)
	}

	if override != "" {
		return override, version
	}

	lowerDoctype := strings.ToLower(doctype)
	lowerMime := strings.ToLower(strings.TrimSpace(mimeType))
	lowerRoot := strings.ToLower(rootElementName)

	switch {
	case lowerMime == "image/svg+xml", lowerRoot == "svg":
		return HostSVG, version
	case lowerMime == "application/xml":
		return HostXML1, version
	case lowerMime == "text/html" || lowerMime == "":
		switch {
		case strings.Contains(lowerDoctype, "html 4"):
			return HostHTML4, version
		case strings.Contains(lowerDoctype, "xhtml"):
			return HostXHTML1, version
		case strings.Contains(lowerDoctype, "html") || lowerMime == "text/html":
			return HostHTML5, version
		}
	case lowerMime == "application/xhtml+xml":
		switch {
		case strings.Contains(lowerDoctype, "html 4"):
			return HostHTML4, version
		case strings.Contains(lowerDoctype, "xhtml"):
			return HostXHTML1, version
		default:
			return HostXHTML5, version
		}
	}
	return HostXML1, version
}

func detectVersion(rootVersionAttr string) Version {
	v := strings.ToLower(strings.TrimSpace(rootVersionAttr))
	switch {
	case strings.Contains(v, "rdfa 1.0"):
		return Version10
	case strings.Contains(v, "rdfa 1.1"):
		return Version11
	default:
		return Version11
	}
}
