package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// Reference is a parsed URI reference. It is either an absolute URI (scheme present)
// or a relative reference (scheme absent).
//
// A Reference is built by [Parse] and never modified afterwards, so it may be shared between goroutines.
// The zero value is the empty relative reference.
type Reference struct {
	scheme   string
	auth     Authority
	hasAuth  bool
	path     Path
	query    string
	hasQuery bool
	frag     string
	hasFrag  bool
}

// Scheme returns the lower-cased scheme or an empty string for relative references.
func (r *Reference) Scheme() string {
	if r == nil {
		return ""
	}
	return r.scheme
}

// HasScheme reports whether the reference has a scheme.
func (r *Reference) HasScheme() bool { return r != nil && r.scheme != "" }

// IsAbsolute reports whether the reference is an absolute URI, i.e. it has a scheme.
func (r *Reference) IsAbsolute() bool { return r.HasScheme() }

// IsRelative reports whether the reference has no scheme.
func (r *Reference) IsRelative() bool { return !r.IsAbsolute() }

// Authority returns the authority, in case it is present.
func (r *Reference) Authority() (Authority, bool) {
	if r == nil {
		return Authority{}, false
	}
	return r.auth, r.hasAuth
}

// Path returns the path. Every reference has a path, possibly an empty one.
func (r *Reference) Path() Path {
	if r == nil {
		return Path{}
	}
	return r.path
}

// Query returns the query without the leading "?", in case it is present.
func (r *Reference) Query() (string, bool) {
	if r == nil {
		return "", false
	}
	return r.query, r.hasQuery
}

// Fragment returns the fragment without the leading "#", in case it is present.
func (r *Reference) Fragment() (string, bool) {
	if r == nil {
		return "", false
	}
	return r.frag, r.hasFrag
}

// IsZero reports whether the reference is empty.
func (r *Reference) IsZero() bool { return r == nil || *r == Reference{} }

// RenderTo writes the reference to w.
// The output equals the parsed input except for the scheme, which is lower-cased.
func (r *Reference) RenderTo(w io.Writer) (num int, err error) {
	if r == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if r.scheme != "" {
		cw.WriteString(r.scheme, ":") //nolint:errcheck
	}
	if r.hasAuth {
		cw.WriteString("//", r.auth.raw) //nolint:errcheck
	}
	cw.WriteString(r.path.raw) //nolint:errcheck
	if r.hasQuery {
		cw.WriteString("?", r.query) //nolint:errcheck
	}
	if r.hasFrag {
		cw.WriteString("#", r.frag) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the reference.
func (r *Reference) String() string {
	if r == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	r.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the reference.
func (r *Reference) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			r.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, r.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(r.String()))
		return
	default:
		type hideMethods Reference
		type Reference hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Reference)(r))
		return
	}
}

// Equal reports whether the reference equals the provided value, accepting Reference and *Reference.
// Components are compared as they appeared in the source, no normalization besides the
// lower-cased scheme is applied.
func (r *Reference) Equal(val any) bool {
	var other *Reference
	switch v := val.(type) {
	case Reference:
		other = &v
	case *Reference:
		other = v
	default:
		return false
	}

	if r == other {
		return true
	} else if r == nil || other == nil {
		return false
	}
	return *r == *other
}

// MarshalText implements [encoding.TextMarshaler].
func (r *Reference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Reference) UnmarshalText(text []byte) error {
	r1, err := Parse(text)
	if err != nil {
		*r = Reference{}
		return errtrace.Wrap(err)
	}
	*r = *r1
	return nil
}

// LogValue implements [slog.LogValuer].
func (r *Reference) LogValue() slog.Value {
	if r == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 5)
	if r.scheme != "" {
		attrs = append(attrs, slog.String("scheme", r.scheme))
	}
	if r.hasAuth {
		attrs = append(attrs, slog.Any("authority", r.auth))
	}
	attrs = append(attrs, slog.Group("path",
		slog.String("form", r.path.form.String()),
		slog.String("value", r.path.raw),
	))
	if r.hasQuery {
		attrs = append(attrs, slog.String("query", r.query))
	}
	if r.hasFrag {
		attrs = append(attrs, slog.String("fragment", r.frag))
	}
	return slog.GroupValue(attrs...)
}
