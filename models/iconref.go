package models

import "strings"

// BundledScheme prefixes icon references that name a resource shipped with
// the application rather than a file on disk.
const BundledScheme = "res://"

// legacy Qt-style resource prefix found in configs written by old releases
const legacyBundledPrefix = ":/assets/"

// IconRefKind classifies a logical icon reference.
type IconRefKind int

const (
	IconRefEmpty IconRefKind = iota
	IconRefBundled
	IconRefURL
	IconRefAbsolute
	IconRefNamed
)

// IconRef is an icon reference parsed into its variant once at the boundary,
// so resolution is a switch over kinds instead of repeated prefix checks.
type IconRef struct {
	Kind IconRefKind
	// Value is the raw reference for Bundled/URL/Absolute kinds, or the bare
	// filename for Named.
	Value string
}

// ParseIconRef classifies a stored icon reference
func ParseIconRef(ref string) IconRef {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return IconRef{Kind: IconRefEmpty}
	case strings.HasPrefix(ref, BundledScheme):
		return IconRef{Kind: IconRefBundled, Value: ref}
	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		return IconRef{Kind: IconRefURL, Value: ref}
	case isAbsolutePath(ref):
		return IconRef{Kind: IconRefAbsolute, Value: ref}
	default:
		return IconRef{Kind: IconRefNamed, Value: ref}
	}
}

// NormalizeIconRef strips bundled-resource prefixes so stored references are
// bare filenames and resolution stays prefix-agnostic.
func NormalizeIconRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, BundledScheme) {
		return strings.TrimPrefix(ref, BundledScheme)
	}
	if strings.HasPrefix(ref, legacyBundledPrefix) {
		return strings.TrimPrefix(ref, legacyBundledPrefix)
	}
	return ref
}

// isAbsolutePath recognizes rooted paths on any platform the config may have
// been written on, so a Windows-written config still parses on Linux.
func isAbsolutePath(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	// drive-letter form, e.g. C:/ or C:\
	if len(p) >= 3 && p[1] == ':' && (p[2] == '/' || p[2] == '\\') {
		return true
	}
	return strings.HasPrefix(p, `\\`)
}
