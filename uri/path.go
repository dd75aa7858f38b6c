package uri

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// PathForm is the path production selected by the surrounding context.
type PathForm uint8

const (
	// PathEmpty is a zero-length path of a reference without authority.
	PathEmpty PathForm = iota
	// PathAbEmpty is an empty or "/"-rooted path following an authority.
	PathAbEmpty
	// PathAbsolute is a "/"-rooted path without authority, it never starts with "//".
	PathAbsolute
	// PathNoScheme is a rootless path of a relative reference, its first segment has no ":".
	PathNoScheme
	// PathRootless is a rootless path of an absolute reference, its first segment may contain ":".
	PathRootless
)

func (f PathForm) String() string {
	switch f {
	case PathEmpty:
		return "path-empty"
	case PathAbEmpty:
		return "path-abempty"
	case PathAbsolute:
		return "path-absolute"
	case PathNoScheme:
		return "path-noscheme"
	case PathRootless:
		return "path-rootless"
	default:
		return "PathForm(" + strconv.Itoa(int(f)) + ")"
	}
}

// Path is the path component tagged with its form.
type Path struct {
	form PathForm
	raw  string
}

// Form returns the path form.
func (p Path) Form() PathForm { return p.form }

// String returns the path as it appeared in the source.
func (p Path) String() string { return p.raw }

// IsEmpty reports whether the path has zero length. An empty path-abempty is empty too.
func (p Path) IsEmpty() bool { return p.raw == "" }

// IsRooted reports whether the path starts with "/".
func (p Path) IsRooted() bool { return strings.HasPrefix(p.raw, "/") }

// Segments returns the "/"-separated segments of the path, without the leading root.
// An empty path has no segments, the root path "/" has a single empty segment.
func (p Path) Segments() []string {
	if p.raw == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p.raw, "/"), "/")
}

// parsePath selects the path form from the reference context and validates s against it.
func parsePath(s string, hasScheme, hasAuth bool) (Path, error) {
	var (
		form PathForm
		ok   bool
	)
	switch {
	case hasAuth:
		form, ok = PathAbEmpty, grammar.IsPathAbEmpty(s)
	case s == "":
		form, ok = PathEmpty, true
	case s[0] == '/':
		form, ok = PathAbsolute, grammar.IsPathAbsolute(s)
	case hasScheme:
		form, ok = PathRootless, grammar.IsPathRootless(s)
	default:
		form, ok = PathNoScheme, grammar.IsPathNoScheme(s)
	}
	if !ok {
		return Path{}, errtrace.Wrap(newParseError(KindPath, s))
	}
	return Path{form: form, raw: s}, nil
}
