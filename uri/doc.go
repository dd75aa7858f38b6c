// Package uri parses and renders URI references as defined by RFC 3986.
//
// # Parsing
//
// [Parse] decomposes a URI reference into its components and validates every one of them
// against its grammar production:
//
//	ref, err := uri.Parse("http://user@example.com:8080/a/b?q=1#top")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ref.Scheme()            // "http"
//	auth, _ := ref.Authority()
//	auth.Host().Name()      // "example.com"
//	auth.Port()             // 8080, true
//	ref.Path().Form()       // uri.PathAbEmpty
//	ref.Query()             // "q=1", true
//	ref.Fragment()          // "top", true
//
// Both absolute URIs and relative references are accepted. The path form is decided by the
// context it appears in:
//
//   - [PathAbEmpty] follows an authority ("//host/a/b");
//   - [PathAbsolute] starts with "/" when there is no authority ("/a/b", "file:/a");
//   - [PathRootless] is a rootless path after a scheme ("mailto:a@example.com");
//   - [PathNoScheme] is a rootless path of a relative reference, its first segment can't
//     contain ":" ("a/b:c");
//   - [PathEmpty] is the zero-length path without authority.
//
// The host is classified as an IPv6 literal ("[2001:db8::1]"), an IPv4 address or a registered name,
// see [HostKind].
//
// # Rendering
//
// No component is decoded or normalized except the scheme, which is lower-cased.
// Rendering a parsed [Reference] with [Reference.String] or [Reference.RenderTo] thus reproduces
// the input, and parsing the rendered text yields an equal reference.
//
// # Errors
//
// Parsing stops at the first violation and returns a [*ParseError] carrying the [ErrorKind] and
// the offending component text. Errors can be matched with [errors.Is] against the kind sentinels
// ([ErrInvalidScheme], [ErrInvalidPort], ...) and [ErrMalformedInput].
//
// # Connection targets
//
// [Reference.HostPort] and [Reference.RequestTarget] give what an HTTP client needs to dial
// and to build a request line, falling back to the [DefaultPort] of the scheme.
//
// # Thread Safety
//
// Parsing is a pure function and a [Reference] is immutable, both are safe for concurrent use.
package uri
