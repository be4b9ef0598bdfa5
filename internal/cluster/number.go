package cluster

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var axisValuePattern = regexp.MustCompile(`^(\d{1,3}[,.]?)+$`)

var (
	errNotNumeric        = errors.New("not an axis value")
	errTrailingSeparator = errors.New("separator without following digits")
	errAmbiguousDecimal  = errors.New("decimal mark used more than once")
)

// ParseAxisValue parses a non-negative coordinate such as "12", "12.5", "4,0",
// "1,234" or "1.234,5". A single comma followed by exactly three digits is a
// thousands separator, any other single comma is a decimal mark.
func ParseAxisValue(tok string) (float64, error) {
	if !axisValuePattern.MatchString(tok) {
		return 0, fmt.Errorf("%w: %q", errNotNumeric, tok)
	}
	if last := tok[len(tok)-1]; last == ',' || last == '.' {
		return 0, fmt.Errorf("%w: %q", errTrailingSeparator, tok)
	}
	norm, err := normalizeSeparators(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, tok)
	}
	v, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, fmt.Errorf("axis value %q: %w", tok, err)
	}
	return v, nil
}

// normalizeSeparators rewrites tok so that strconv can parse it: group
// separators are dropped and the decimal mark becomes '.'.
func normalizeSeparators(tok string) (string, error) {
	commas := strings.Count(tok, ",")
	dots := strings.Count(tok, ".")
	switch {
	case commas == 0 && dots == 0:
		return tok, nil
	case commas > 0 && dots > 0:
		dec := tok[strings.LastIndexAny(tok, ",.")]
		group := byte(',')
		if dec == ',' {
			group = '.'
		}
		if strings.Count(tok, string(dec)) > 1 {
			return "", errAmbiguousDecimal
		}
		s := strings.ReplaceAll(tok, string(group), "")
		return strings.Replace(s, string(dec), ".", 1), nil
	case dots == 1:
		return tok, nil
	case dots > 1:
		return strings.ReplaceAll(tok, ".", ""), nil
	case commas > 1:
		return strings.ReplaceAll(tok, ",", ""), nil
	}
	// exactly one comma
	i := strings.IndexByte(tok, ',')
	if len(tok)-i-1 == 3 {
		return tok[:i] + tok[i+1:], nil
	}
	return tok[:i] + "." + tok[i+1:], nil
}
