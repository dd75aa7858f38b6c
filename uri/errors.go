package uri

import (
	"fmt"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// Error is a grammar error sentinel.
type Error = grammar.Error

const (
	// ErrMalformedInput is matched by every [ParseError].
	ErrMalformedInput = grammar.ErrMalformedInput

	// ErrInvalidScheme is matched by errors of [KindScheme].
	ErrInvalidScheme Error = "invalid scheme"
	// ErrInvalidUserInfo is matched by errors of [KindUserInfo].
	ErrInvalidUserInfo Error = "invalid userinfo"
	// ErrInvalidPort is matched by errors of [KindPort].
	ErrInvalidPort Error = "invalid port"
	// ErrInvalidAuthority is matched by errors of [KindAuthority].
	ErrInvalidAuthority Error = "invalid authority"
	// ErrInvalidQuery is matched by errors of [KindQuery].
	ErrInvalidQuery Error = "invalid query"
	// ErrInvalidFragment is matched by errors of [KindFragment].
	ErrInvalidFragment Error = "invalid fragment"
	// ErrInvalidPath is matched by errors of [KindPath].
	ErrInvalidPath Error = "invalid path"
)

const (
	// ErrNoHost is returned when a connection target is requested from a reference without host.
	ErrNoHost errorutil.Error = "no host"
	// ErrUnknownPort is returned when neither the reference nor its scheme defines a port.
	ErrUnknownPort errorutil.Error = "unknown port"
)

// ErrorKind identifies the grammar production violated by the input.
type ErrorKind uint8

const (
	// KindScheme is a scheme that is not ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
	KindScheme ErrorKind = iota + 1
	// KindUserInfo is a userinfo with characters outside of its class.
	KindUserInfo
	// KindPort is a port with non-digits or a value above 65535.
	KindPort
	// KindAuthority is a host that is neither an IP literal, an IPv4 address nor a reg-name.
	KindAuthority
	// KindQuery is a query with characters outside of its class.
	KindQuery
	// KindFragment is a fragment with characters outside of its class.
	KindFragment
	// KindPath is a path that does not match the form selected by its context.
	KindPath
)

var kindErrs = [...]Error{
	KindScheme:    ErrInvalidScheme,
	KindUserInfo:  ErrInvalidUserInfo,
	KindPort:      ErrInvalidPort,
	KindAuthority: ErrInvalidAuthority,
	KindQuery:     ErrInvalidQuery,
	KindFragment:  ErrInvalidFragment,
	KindPath:      ErrInvalidPath,
}

// Err returns the sentinel error matched by errors of this kind.
func (k ErrorKind) Err() error {
	if int(k) < len(kindErrs) && kindErrs[k] != "" {
		return kindErrs[k]
	}
	return ErrMalformedInput
}

func (k ErrorKind) String() string {
	switch k {
	case KindScheme:
		return "scheme"
	case KindUserInfo:
		return "userinfo"
	case KindPort:
		return "port"
	case KindAuthority:
		return "authority"
	case KindQuery:
		return "query"
	case KindFragment:
		return "fragment"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError describes the first grammar violation found by [Parse].
// It matches both the kind sentinel (e.g. [ErrInvalidPort]) and [ErrMalformedInput] with [errors.Is].
type ParseError struct {
	Kind ErrorKind
	// Input is the offending component text as it appears in the source.
	Input string
}

func newParseError(kind ErrorKind, input string) error {
	return &ParseError{Kind: kind, Input: input} //errtrace:skip
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q", e.Kind.Err(), e.Input)
}

func (e *ParseError) Unwrap() []error { return []error{e.Kind.Err(), ErrMalformedInput} }

// Grammar marks the error as a grammar violation.
func (*ParseError) Grammar() bool { return true }
