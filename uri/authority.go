package uri

import (
	"log/slog"
	"net/netip"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// HostKind tells which of the host productions matched.
type HostKind uint8

const (
	// HostRegName is a registered name, possibly empty.
	HostRegName HostKind = iota
	// HostIPv4 is a dotted-quad IPv4 address.
	HostIPv4
	// HostIPv6 is an IPv6 address in an IP literal ("[" IPv6address "]").
	HostIPv6
)

func (k HostKind) String() string {
	switch k {
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "IPv4address"
	case HostIPv6:
		return "IPv6address"
	default:
		return "HostKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Host is the host subcomponent of an authority.
// Exactly one of the reg-name, IPv4 and IPv6 forms is held.
type Host struct {
	kind HostKind
	name string
}

// Kind returns the host form.
func (h Host) Kind() HostKind { return h.kind }

// Name returns the host text without IP literal brackets.
func (h Host) Name() string { return h.name }

// RegName returns the registered name and whether the host is one.
func (h Host) RegName() (string, bool) { return h.name, h.kind == HostRegName }

// IPv4 returns the IPv4 address text and whether the host is one.
func (h Host) IPv4() (string, bool) {
	if h.kind != HostIPv4 {
		return "", false
	}
	return h.name, true
}

// IPv6 returns the IPv6 address text without brackets and whether the host is one.
func (h Host) IPv6() (string, bool) {
	if h.kind != HostIPv6 {
		return "", false
	}
	return h.name, true
}

// IP returns the parsed address of IPv4 and IPv6 hosts, and the zero [netip.Addr] otherwise.
// The source text is not canonicalized, use [Host.Name] to get it.
func (h Host) IP() netip.Addr {
	if h.kind == HostRegName {
		return netip.Addr{}
	}
	ip, _ := netip.ParseAddr(h.name)
	return ip
}

// String returns the host as it appears in an authority.
func (h Host) String() string {
	if h.kind == HostIPv6 {
		return "[" + h.name + "]"
	}
	return h.name
}

// LogValue implements [slog.LogValuer].
func (h Host) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", h.kind.String()),
		slog.String("name", h.name),
	)
}

// Authority is the authority component: [ userinfo "@" ] host [ ":" port ].
type Authority struct {
	raw     string
	user    string
	hasUser bool
	host    Host
	port    uint16
	hasPort bool
}

// UserInfo returns the userinfo subcomponent, in case it is present and not empty.
func (a Authority) UserInfo() (string, bool) { return a.user, a.hasUser }

// Host returns the host subcomponent.
func (a Authority) Host() Host { return a.host }

// Port returns the port, in case it is present and not empty.
func (a Authority) Port() (uint16, bool) { return a.port, a.hasPort }

// String returns the authority exactly as it appeared in the source.
func (a Authority) String() string { return a.raw }

// Equal reports whether the authority equals the provided value, accepting Authority and *Authority.
func (a Authority) Equal(val any) bool {
	var other Authority
	switch v := val.(type) {
	case Authority:
		other = v
	case *Authority:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return a == other
}

// LogValue implements [slog.LogValuer].
func (a Authority) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	if a.hasUser {
		attrs = append(attrs, slog.String("userinfo", a.user))
	}
	attrs = append(attrs, slog.Any("host", a.host))
	if a.hasPort {
		attrs = append(attrs, slog.Int("port", int(a.port)))
	}
	return slog.GroupValue(attrs...)
}

// parseAuthority splits raw into userinfo, host and port and validates each of them.
func parseAuthority(raw string) (Authority, error) {
	a := Authority{raw: raw}

	hostport := raw
	if i := strings.IndexByte(raw, '@'); i >= 0 {
		user := raw[:i]
		if !grammar.IsUserinfo(user) {
			return Authority{}, errtrace.Wrap(newParseError(KindUserInfo, user))
		}
		a.user, a.hasUser = user, user != ""
		hostport = raw[i+1:]
	}

	host, port, hasPort := splitHostPort(hostport)
	if hasPort && port != "" {
		if !grammar.IsPort(port) {
			return Authority{}, errtrace.Wrap(newParseError(KindPort, port))
		}
		n, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return Authority{}, errtrace.Wrap(newParseError(KindPort, port))
		}
		a.port, a.hasPort = uint16(n), true
	}

	var err error
	if a.host, err = parseHost(host); err != nil {
		return Authority{}, errtrace.Wrap(err)
	}
	return a, nil
}

// splitHostPort splits s at the last ":" that is not enclosed in an IP literal.
func splitHostPort(s string) (host, port string, hasPort bool) {
	if strings.HasPrefix(s, "[") {
		i := strings.IndexByte(s, ']')
		if i < 0 || i+1 == len(s) || s[i+1] != ':' {
			return s, "", false
		}
		return s[:i+1], s[i+2:], true
	}
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// parseHost classifies s as an IP literal, an IPv4 address or a registered name, in this order.
func parseHost(s string) (Host, error) {
	switch {
	case strings.HasPrefix(s, "["):
		if len(s) < 2 || s[len(s)-1] != ']' || !grammar.IsIPv6(s[1:len(s)-1]) {
			return Host{}, errtrace.Wrap(newParseError(KindAuthority, s))
		}
		return Host{kind: HostIPv6, name: s[1 : len(s)-1]}, nil
	case grammar.IsIPv4(s):
		return Host{kind: HostIPv4, name: s}, nil
	case grammar.IsRegName(s):
		return Host{kind: HostRegName, name: s}, nil
	default:
		return Host{}, errtrace.Wrap(newParseError(KindAuthority, s))
	}
}
