package uri

import (
	"net"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/util"
)

var defaultPorts = map[string]uint16{
	"ftp":     21,
	"ssh":     22,
	"telnet":  23,
	"http":    80,
	"ws":      80,
	"ldap":    389,
	"https":   443,
	"wss":     443,
	"ldaps":   636,
	"sip":     5060,
	"sips":    5061,
	"mongodb": 27017,
}

// DefaultPort returns the well-known port of the scheme.
func DefaultPort(scheme string) (uint16, bool) {
	port, ok := defaultPorts[util.LCase(scheme)]
	return port, ok
}

// HostPort returns the "host:port" connection target of the reference.
// An absent port is replaced with the [DefaultPort] of the scheme.
func (r *Reference) HostPort() (string, error) {
	auth, ok := r.Authority()
	if !ok || auth.host.name == "" {
		return "", errtrace.Wrap(ErrNoHost)
	}
	port, ok := auth.Port()
	if !ok {
		if port, ok = DefaultPort(r.Scheme()); !ok {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownPort, "scheme %q", r.Scheme()))
		}
	}
	return net.JoinHostPort(auth.host.name, strconv.Itoa(int(port))), nil
}

// RequestTarget returns the origin-form request target: the path followed by the query, if any.
// An empty path is replaced with "/". The fragment is never part of it.
func (r *Reference) RequestTarget() string {
	target := r.Path().String()
	if target == "" {
		target = "/"
	}
	if q, ok := r.Query(); ok {
		target += "?" + q
	}
	return target
}
