package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// Parse parses a URI reference (absolute URI or relative reference) from the given input s (string or []byte).
//
// Components are peeled off in a fixed order: scheme, fragment, query, authority with its
// userinfo, port and host, and finally the path, whose form depends on what was found before.
// The first grammar violation aborts parsing with a [*ParseError].
//
// The empty input is a valid relative reference with an empty path.
func Parse[T constraints.Byteseq](s T) (*Reference, error) {
	return errtrace.Wrap2(parse(string(s)))
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) *Reference { return util.Must2(Parse(s)) }

func parse(src string) (*Reference, error) {
	var (
		ref Reference
		err error
	)

	rest := src
	if ref.scheme, rest, err = stripScheme(rest); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if rest, ref.frag, ref.hasFrag, err = stripFragment(rest); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if rest, ref.query, ref.hasQuery, err = stripQuery(rest); err != nil {
		return nil, errtrace.Wrap(err)
	}

	if auth, path, ok := stripAuthority(rest); ok {
		if ref.auth, err = parseAuthority(auth); err != nil {
			return nil, errtrace.Wrap(err)
		}
		ref.hasAuth = true
		rest = path
	}

	// "?a" alone is a query without anything to query.
	if rest == "" && ref.scheme == "" && !ref.hasAuth && ref.hasQuery {
		return nil, errtrace.Wrap(newParseError(KindPath, "?"+ref.query))
	}
	if ref.path, err = parsePath(rest, ref.scheme != "", ref.hasAuth); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ref, nil
}

// stripScheme splits s at the first ":" if it precedes any "/", "?" and "#".
// The scheme is lower-cased. A leading ":" is reported as the offending text.
func stripScheme(s string) (scheme, rest string, err error) {
	i := strings.IndexAny(s, ":/?#")
	if i < 0 || s[i] != ':' {
		return "", s, nil
	}
	if !grammar.IsScheme(s[:i]) {
		bad := s[:i]
		if bad == "" {
			bad = s[:i+1]
		}
		return "", "", errtrace.Wrap(newParseError(KindScheme, bad))
	}
	return util.LCase(s[:i]), s[i+1:], nil
}

// stripFragment splits s at the last "#".
func stripFragment(s string) (rest, frag string, ok bool, err error) {
	i := strings.LastIndexByte(s, '#')
	if i < 0 {
		return s, "", false, nil
	}
	if frag = s[i+1:]; !grammar.IsFragment(frag) {
		return "", "", false, errtrace.Wrap(newParseError(KindFragment, frag))
	}
	return s[:i], frag, true, nil
}

// stripQuery splits s at the first "?", the query itself may contain more of them.
func stripQuery(s string) (rest, query string, ok bool, err error) {
	i := strings.IndexByte(s, '?')
	if i < 0 {
		return s, "", false, nil
	}
	if query = s[i+1:]; !grammar.IsQuery(query) {
		return "", "", false, errtrace.Wrap(newParseError(KindQuery, query))
	}
	return s[:i], query, true, nil
}

// stripAuthority cuts the authority following a leading "//" up to the first "/",
// which is left on the path.
func stripAuthority(s string) (auth, path string, ok bool) {
	if !strings.HasPrefix(s, "//") {
		return "", s, false
	}
	s = s[2:]
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i:], true
	}
	return s, "", true
}
