package grammar

import (
	"net/netip"

	"github.com/ghettovoice/gouri/internal/constraints"
)

// scan returns the index of the first byte in s that is neither in cs nor starts a valid
// pct-encoded triplet. It returns -1 if all of s matches.
func scan[T constraints.Byteseq](s T, cs *charset) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if i+2 >= len(s) || !hexdig.has(s[i+1]) || !hexdig.has(s[i+2]) {
				return i
			}
			i += 2
			continue
		}
		if !cs.has(s[i]) {
			return i
		}
	}
	return -1
}

// IsScheme reports whether s matches scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || !alpha.has(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !schemeTail.has(s[i]) {
			return false
		}
	}
	return true
}

// IsUserinfo reports whether s matches userinfo = *( unreserved / pct-encoded / sub-delims / ":" ).
func IsUserinfo[T constraints.Byteseq](s T) bool { return scan(s, &userinfo) < 0 }

// IsRegName reports whether s matches reg-name = *( unreserved / pct-encoded / sub-delims ).
func IsRegName[T constraints.Byteseq](s T) bool { return scan(s, &regName) < 0 }

// IsPort reports whether s matches port = *DIGIT.
func IsPort[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if !digit.has(s[i]) {
			return false
		}
	}
	return true
}

// IsQuery reports whether s matches query = *( pchar / "/" / "?" ).
func IsQuery[T constraints.Byteseq](s T) bool { return scan(s, &queryChars) < 0 }

// IsFragment reports whether s matches fragment = *( pchar / "/" / "?" ).
func IsFragment[T constraints.Byteseq](s T) bool { return scan(s, &fragChars) < 0 }

// IsSegment reports whether s matches segment = *pchar.
func IsSegment[T constraints.Byteseq](s T) bool { return scan(s, &pchar) < 0 }

// IsSegmentNZ reports whether s matches segment-nz = 1*pchar.
func IsSegmentNZ[T constraints.Byteseq](s T) bool { return len(s) > 0 && IsSegment(s) }

// IsSegmentNZNC reports whether s matches segment-nz-nc, a non-empty segment without ":".
func IsSegmentNZNC[T constraints.Byteseq](s T) bool { return len(s) > 0 && scan(s, &segmentNC) < 0 }

// IsIPv4 reports whether s matches IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet.
// A dec-octet is 0-255 written without leading zeros.
func IsIPv4[T constraints.Byteseq](s T) bool {
	var octets, start int
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '.' {
			continue
		}
		if !isDecOctet(s[start:i]) {
			return false
		}
		octets++
		start = i + 1
	}
	return octets == 4
}

func isDecOctet[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || len(s) > 3 || (len(s) > 1 && s[0] == '0') {
		return false
	}
	var n int
	for i := 0; i < len(s); i++ {
		if !digit.has(s[i]) {
			return false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n <= 255
}

// IsIPv6 reports whether s matches IPv6address. Zone identifiers are not part of the grammar
// and are rejected.
func IsIPv6[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !hexdig.has(s[i]) && s[i] != ':' && s[i] != '.' {
			return false
		}
	}
	addr, err := netip.ParseAddr(string(s))
	return err == nil && addr.Is6() && addr.Zone() == ""
}
