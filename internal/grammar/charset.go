package grammar

// charset is a set of ASCII bytes. Bytes >= 0x80 are never members.
type charset [2]uint64

func newCharset(chars string, ranges ...[2]byte) charset {
	var cs charset
	for i := 0; i < len(chars); i++ {
		cs.add(chars[i])
	}
	for _, r := range ranges {
		for c := int(r[0]); c <= int(r[1]); c++ {
			cs.add(byte(c))
		}
	}
	return cs
}

func (cs *charset) add(c byte) { cs[c>>6] |= 1 << (c & 63) }

func (cs *charset) has(c byte) bool { return c < 0x80 && cs[c>>6]&(1<<(c&63)) != 0 }

func union(sets ...charset) charset {
	var cs charset
	for _, s := range sets {
		cs[0] |= s[0]
		cs[1] |= s[1]
	}
	return cs
}

var (
	alpha  = newCharset("", [2]byte{'a', 'z'}, [2]byte{'A', 'Z'})
	digit  = newCharset("", [2]byte{'0', '9'})
	hexdig = union(digit, newCharset("", [2]byte{'a', 'f'}, [2]byte{'A', 'F'}))

	unreserved = union(alpha, digit, newCharset("-._~"))
	genDelims  = newCharset(":/?#[]@")
	subDelims  = newCharset("!$&'()*+,;=")
	reserved   = union(genDelims, subDelims)

	// pct-encoded triplets are checked by scan, the classes below hold single bytes only.
	pchar      = union(unreserved, subDelims, newCharset(":@"))
	schemeTail = union(alpha, digit, newCharset("+-."))
	userinfo   = union(unreserved, subDelims, newCharset(":"))
	regName    = union(unreserved, subDelims)
	segmentNC  = union(unreserved, subDelims, newCharset("@"))
	queryChars = union(pchar, newCharset("/?"))
	fragChars  = queryChars
)

// IsAlpha reports whether c is ALPHA.
func IsAlpha(c byte) bool { return alpha.has(c) }

// IsDigit reports whether c is DIGIT.
func IsDigit(c byte) bool { return digit.has(c) }

// IsHexDigit reports whether c is HEXDIG.
func IsHexDigit(c byte) bool { return hexdig.has(c) }

// IsUnreserved reports whether c is in the unreserved set (ALPHA / DIGIT / "-" / "." / "_" / "~").
func IsUnreserved(c byte) bool { return unreserved.has(c) }

// IsGenDelim reports whether c is one of gen-delims.
func IsGenDelim(c byte) bool { return genDelims.has(c) }

// IsSubDelim reports whether c is one of sub-delims.
func IsSubDelim(c byte) bool { return subDelims.has(c) }

// IsReserved reports whether c is gen-delims or sub-delims.
func IsReserved(c byte) bool { return reserved.has(c) }

// IsPchar reports whether a single byte c may appear in a path segment as is.
// The percent sign is not included, it only starts a pct-encoded triplet.
func IsPchar(c byte) bool { return pchar.has(c) }
