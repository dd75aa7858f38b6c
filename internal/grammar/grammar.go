// Package grammar implements the RFC 3986 character classes and component productions
// used by the URI-reference parser.
package grammar

//go:generate go tool errtrace -w .

// Error is a grammar error sentinel.
type Error string

func (e Error) Error() string { return string(e) }

// Grammar marks the error as a grammar violation, see [errorutil.IsGrammarErr].
func (Error) Grammar() bool { return true }

// ErrMalformedInput is matched by every grammar violation.
const ErrMalformedInput Error = "malformed input"
