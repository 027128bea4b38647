package guid

import (
	"fmt"
	"strings"
)

// scanLimit bounds the lenient scan to the first 35 source positions of the
// input, one short of the 36 character canonical length.
const scanLimit = 35

// FromString parses s leniently and never fails: any malformed input yields
// Nil, which the caller can detect with Valid.
//
// Dashes are skipped wherever they appear. Every other position must start a
// pair of hex digits (either case). Only the first 35 characters are scanned
// and at least 16 bytes must be found there.
func FromString(s string) GUID {
	var g GUID
	n := 0
	for i := 0; i < len(s) && i < scanLimit; {
		if s[i] == '-' {
			i++
			continue
		}
		b, ok := decodePair(s, i)
		if !ok {
			return Nil
		}
		if n < len(g) {
			g[n] = b
		}
		n++
		i += 2
	}
	if n < len(g) {
		return Nil
	}
	return g
}

// Parse parses a GUID from its string representation and reports malformed
// input as ErrInvalidFormat. It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical, either case)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//
// Dash placement is as lenient as in FromString, but the whole input must be
// consumed and hold exactly 16 hex pairs.
func Parse(s string) (GUID, error) {
	var g GUID

	s = strings.TrimPrefix(s, "urn:uuid:")
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		s = s[1 : len(s)-1]
	}

	n := 0
	for i := 0; i < len(s); {
		if s[i] == '-' {
			i++
			continue
		}
		if n == len(g) {
			return Nil, ErrInvalidFormat
		}
		b, ok := decodePair(s, i)
		if !ok {
			return Nil, ErrInvalidFormat
		}
		g[n] = b
		n++
		i += 2
	}
	if n != len(g) {
		return Nil, ErrInvalidFormat
	}
	return g, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guid: Parse(%q): %v", s, err))
	}
	return g
}

// decodePair decodes the hex digits at s[i] and s[i+1]. A pair that runs past
// the end of s is malformed.
func decodePair(s string, i int) (byte, bool) {
	if i+1 >= len(s) {
		return 0, false
	}
	hi, ok := fromHexChar(s[i])
	if !ok {
		return 0, false
	}
	lo, ok := fromHexChar(s[i+1])
	if !ok {
		return 0, false
	}
	return hi<<4 | lo, true
}

// fromHexChar converts a hex character into its value
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
