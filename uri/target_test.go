package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/uri"
)

func TestDefaultPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scheme string
		want   uint16
		wantOk bool
	}{
		{"http", 80, true},
		{"HTTPS", 443, true},
		{"ws", 80, true},
		{"wss", 443, true},
		{"sip", 5060, true},
		{"sips", 5061, true},
		{"mailto", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := uri.DefaultPort(c.scheme)
		if got != c.want || ok != c.wantOk {
			t.Errorf("uri.DefaultPort(%q) = %v, %v, want %v, %v", c.scheme, got, ok, c.want, c.wantOk)
		}
	}
}

func TestReference_HostPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"http://example.com/a", "example.com:80", nil},
		{"https://example.com", "example.com:443", nil},
		{"http://example.com:8080/", "example.com:8080", nil},
		{"HTTP://example.com:/", "example.com:80", nil},
		{"https://[2001:db8::1]/", "[2001:db8::1]:443", nil},
		{"ws://u:p@10.0.0.1:9000", "10.0.0.1:9000", nil},
		{"custom://example.com:1", "example.com:1", nil},
		{"custom://example.com", "", uri.ErrUnknownPort},
		{"//example.com", "", uri.ErrUnknownPort},
		{"file:///etc/hosts", "", uri.ErrNoHost},
		{"mailto:a@example.com", "", uri.ErrNoHost},
		{"/a/b", "", uri.ErrNoHost},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := uri.MustParse(c.in).HostPort()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("ref.HostPort() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("ref.HostPort() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestReference_RequestTarget(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"http://example.com", "/"},
		{"http://example.com?", "/?"},
		{"http://example.com/a/b?x=1&y=2#frag", "/a/b?x=1&y=2"},
		{"http://example.com//a", "//a"},
		{"/a?b", "/a?b"},
		{"mailto:a@example.com", "a@example.com"},
	}

	for _, c := range cases {
		if got := uri.MustParse(c.in).RequestTarget(); got != c.want {
			t.Errorf("uri.MustParse(%q).RequestTarget() = %q, want %q", c.in, got, c.want)
		}
	}
}
