package dtplus

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                  = errors.New
	itoa       func(int) string                    = strconv.Itoa
	lc         func(string) string                 = strings.ToLower
	uc         func(string) string                 = strings.ToUpper
	split      func(string, string) []string       = strings.Split
	join       func([]string, string) string       = strings.Join
	stridxb    func(string, byte) int              = strings.IndexByte
	strlidxb   func(string, byte) int              = strings.LastIndexByte
	stridxany  func(string, string) int            = strings.IndexAny
	hasPfx     func(string, string) bool           = strings.HasPrefix
	trimPfx    func(string, string) string         = strings.TrimPrefix
	trimS      func(string) string                 = strings.TrimSpace
	trim       func(string, string) string         = strings.Trim
	cntns      func(string, string) bool           = strings.Contains
	streqf     func(string, string) bool           = strings.EqualFold
	errorsIs   func(error, error) bool             = errors.Is
	errorsAs   func(error, any) bool               = errors.As
	replaceAll func(string, string, string) string = strings.ReplaceAll
)

func strInSlice(r string, slice []string) (match bool) {
	for i := 0; i < len(slice) && !match; i++ {
		match = streqf(r, slice[i])
	}

	return
}

func newStrBuilder() strings.Builder { return strings.Builder{} }

func isDigit(b byte) bool  { return '0' <= b && b <= '9' }
func isLetter(b byte) bool { return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') }

func allDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// digits converts an all-ASCII-digit string into an int. The
// second return value is false if any non-digit was seen.
func digits(s string) (n int, ok bool) {
	if ok = allDigits(s); ok {
		for i := 0; i < len(s); i++ {
			n = n*10 + int(s[i]-'0')
		}
	}
	return
}

// pad writes v zero-padded to width w. Negative values are
// prefixed with a minus sign which does not count towards w.
func pad(b *strings.Builder, v, w int) {
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	s := itoa(v)
	for i := len(s); i < w; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// floorDiv returns the quotient and non-negative remainder of a/b
// for b > 0.
func floorDiv(a, b int) (q, m int) {
	q, m = a/b, a%b
	if m < 0 {
		q--
		m += b
	}
	return
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
