package uri_test

import (
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/ghettovoice/gouri/uri"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParse_Concurrent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"http://www.ietf.org/rfc/rfc2396.txt?a#b",
		"ldap://[2001:db8::7]/c=GB?objectClass?one",
		"mongo://a:b@c:1/d/e",
		"a/b/c/",
		"http://a:80x/",
	}
	shared := uri.MustParse("telnet://192.0.2.16:80/")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range inputs {
				ref, err := uri.Parse(in)
				if err != nil {
					continue
				}
				if got := ref.String(); got != in {
					t.Errorf("ref.String() = %q, want %q", got, in)
				}
			}
			if got, want := shared.String(), "telnet://192.0.2.16:80/"; got != want {
				t.Errorf("shared.String() = %q, want %q", got, want)
			}
			if _, err := shared.HostPort(); err != nil {
				t.Errorf("shared.HostPort() error = %v, want nil", err)
			}
		}()
	}
	wg.Wait()
}
