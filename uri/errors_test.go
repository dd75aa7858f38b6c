package uri_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/uri"
)

func TestParseError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    *uri.ParseError
		wantMsg string
	}{
		{"1a:///d/test.py?fasdfs", &uri.ParseError{Kind: uri.KindScheme, Input: "1a"}, `invalid scheme "1a"`},
		{":a", &uri.ParseError{Kind: uri.KindScheme, Input: ":"}, `invalid scheme ":"`},
		{"http://us er@a", &uri.ParseError{Kind: uri.KindUserInfo, Input: "us er"}, `invalid userinfo "us er"`},
		{"http://a:80x/", &uri.ParseError{Kind: uri.KindPort, Input: "80x"}, `invalid port "80x"`},
		{"http://a b/", &uri.ParseError{Kind: uri.KindAuthority, Input: "a b"}, `invalid authority "a b"`},
		{"http://a?q q", &uri.ParseError{Kind: uri.KindQuery, Input: "q q"}, `invalid query "q q"`},
		{"http://a#f f", &uri.ParseError{Kind: uri.KindFragment, Input: "f f"}, `invalid fragment "f f"`},
		{"http://a/b c", &uri.ParseError{Kind: uri.KindPath, Input: "/b c"}, `invalid path "/b c"`},
		{"?a", &uri.ParseError{Kind: uri.KindPath, Input: "?a"}, `invalid path "?a"`},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			_, err := uri.Parse(c.in)
			var got *uri.ParseError
			if !errors.As(err, &got) {
				t.Fatalf("uri.Parse(%q) error = %v, want *uri.ParseError", c.in, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.Parse(%q) error = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			if !errors.Is(err, c.want.Kind.Err()) {
				t.Errorf("errors.Is(err, %v) = false, want true", c.want.Kind.Err())
			}
			if !errors.Is(err, uri.ErrMalformedInput) {
				t.Errorf("errors.Is(err, uri.ErrMalformedInput) = false, want true")
			}
			if !errorutil.IsGrammarErr(err) {
				t.Errorf("errorutil.IsGrammarErr(err) = false, want true")
			}
		})
	}
}

func TestParseError_OnlyOwnKind(t *testing.T) {
	t.Parallel()

	_, err := uri.Parse("http://a:80x/")
	for _, sentinel := range []error{
		uri.ErrInvalidScheme,
		uri.ErrInvalidUserInfo,
		uri.ErrInvalidAuthority,
		uri.ErrInvalidQuery,
		uri.ErrInvalidFragment,
		uri.ErrInvalidPath,
	} {
		if errors.Is(err, sentinel) {
			t.Errorf("errors.Is(err, %q) = true, want false", sentinel)
		}
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind    uri.ErrorKind
		wantStr string
		wantErr error
	}{
		{uri.KindScheme, "scheme", uri.ErrInvalidScheme},
		{uri.KindUserInfo, "userinfo", uri.ErrInvalidUserInfo},
		{uri.KindPort, "port", uri.ErrInvalidPort},
		{uri.KindAuthority, "authority", uri.ErrInvalidAuthority},
		{uri.KindQuery, "query", uri.ErrInvalidQuery},
		{uri.KindFragment, "fragment", uri.ErrInvalidFragment},
		{uri.KindPath, "path", uri.ErrInvalidPath},
		{uri.ErrorKind(0), "ErrorKind(0)", uri.ErrMalformedInput},
		{uri.ErrorKind(99), "ErrorKind(99)", uri.ErrMalformedInput},
	}

	for _, c := range cases {
		if got := c.kind.String(); got != c.wantStr {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", uint8(c.kind), got, c.wantStr)
		}
		if got := c.kind.Err(); got != c.wantErr {
			t.Errorf("ErrorKind(%d).Err() = %v, want %v", uint8(c.kind), got, c.wantErr)
		}
	}
}
