package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var errEmptyRune = errors.New("rune cannot be empty")

// parseRune reads a single rune given on the command line in one of these
// forms:
//   - a literal character: "_", "~"
//   - an escape: "\uXXXX", "\UXXXXXXXX"
//   - Unicode notation: "U+XXXX"
//   - hexadecimal: "0x5F"
//   - decimal: "95"
//
// A single digit is read as the literal digit, not as a code point.
func parseRune(s string) (rune, error) {
	if s == "" {
		return 0, errEmptyRune
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return 0, fmt.Errorf("invalid rune format: %q", s)
		}
		return r, nil
	}

	for _, parse := range []func(string) (rune, bool){
		parseEscape,
		parseUnicodeNotation,
		parseHex,
		parseDecimal,
	} {
		if r, ok := parse(s); ok {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid rune format: %s", s)
}

// validRune rejects values beyond utf8.MaxRune and UTF-16 surrogates.
func validRune(code int64) (rune, bool) {
	r := rune(code)
	if code < 0 || code > utf8.MaxRune {
		return 0, false
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return 0, false
	}
	return r, true
}

func parseCode(digits string, base int) (rune, bool) {
	code, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return 0, false
	}
	return validRune(code)
}

func parseEscape(s string) (rune, bool) {
	switch {
	case strings.HasPrefix(s, `\u`) && len(s) == 6:
		return parseCode(s[2:], 16)
	case strings.HasPrefix(s, `\U`) && len(s) == 10:
		return parseCode(s[2:], 16)
	}
	return 0, false
}

func parseUnicodeNotation(s string) (rune, bool) {
	if strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+") {
		return parseCode(s[2:], 16)
	}
	return 0, false
}

func parseHex(s string) (rune, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return parseCode(s[2:], 16)
	}
	return 0, false
}

func parseDecimal(s string) (rune, bool) {
	return parseCode(s, 10)
}
