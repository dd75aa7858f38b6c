package grammar

import "github.com/ghettovoice/gouri/internal/constraints"

// everySegment calls fn for each "/"-separated segment of s and reports whether all calls returned true.
func everySegment[T constraints.Byteseq](s T, fn func(i int, seg T) bool) bool {
	var n, start int
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '/' {
			continue
		}
		if !fn(n, s[start:i]) {
			return false
		}
		n++
		start = i + 1
	}
	return true
}

// IsPathAbEmpty reports whether s matches path-abempty = *( "/" segment ).
func IsPathAbEmpty[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return true
	}
	if s[0] != '/' {
		return false
	}
	return everySegment(s[1:], func(_ int, seg T) bool { return IsSegment(seg) })
}

// IsPathAbsolute reports whether s matches path-absolute = "/" [ segment-nz *( "/" segment ) ].
func IsPathAbsolute[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || s[0] != '/' {
		return false
	}
	if len(s) == 1 {
		return true
	}
	return IsPathRootless(s[1:])
}

// IsPathRootless reports whether s matches path-rootless = segment-nz *( "/" segment ).
// The first segment may contain ":".
func IsPathRootless[T constraints.Byteseq](s T) bool {
	return everySegment(s, func(i int, seg T) bool {
		if i == 0 {
			return IsSegmentNZ(seg)
		}
		return IsSegment(seg)
	})
}

// IsPathNoScheme reports whether s matches path-noscheme = segment-nz-nc *( "/" segment ).
// The first segment must not contain ":", otherwise it would be read back as a scheme.
func IsPathNoScheme[T constraints.Byteseq](s T) bool {
	return everySegment(s, func(i int, seg T) bool {
		if i == 0 {
			return IsSegmentNZNC(seg)
		}
		return IsSegment(seg)
	})
}
