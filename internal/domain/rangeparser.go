// Package domain contains the wordlist expansion engine and the run workflow.
package domain

import (
	"errors"
	"fmt"
	"strconv"

	m "gooze.dev/pkg/pwmutate/internal/model"
)

// ErrFormat is returned when a numeric range is not of the form START-END.
var ErrFormat = errors.New("invalid range format")

const rangeDelimiter = '-'

// maxPrealloc bounds the up-front allocation for very wide ranges.
const maxPrealloc = 1 << 16

// ParseRange parses a range such as "0-99". Anything after the second run of
// digits is ignored, so "1-5abc" parses as 1-5.
func ParseRange(spec string) (m.RangeSpec, error) {
	startDigits := leadingDigits(spec)
	if startDigits == "" {
		return m.RangeSpec{}, fmt.Errorf("%w: %q", ErrFormat, spec)
	}

	rest := spec[len(startDigits):]
	if rest == "" || rest[0] != rangeDelimiter {
		return m.RangeSpec{}, fmt.Errorf("%w: %q", ErrFormat, spec)
	}

	endDigits := leadingDigits(rest[1:])
	if endDigits == "" {
		return m.RangeSpec{}, fmt.Errorf("%w: %q", ErrFormat, spec)
	}

	start, err := strconv.ParseUint(startDigits, 10, 64)
	if err != nil {
		return m.RangeSpec{}, fmt.Errorf("%w: %q: %w", ErrFormat, spec, err)
	}

	end, err := strconv.ParseUint(endDigits, 10, 64)
	if err != nil {
		return m.RangeSpec{}, fmt.Errorf("%w: %q: %w", ErrFormat, spec, err)
	}

	return m.RangeSpec{Start: start, End: end}, nil
}

// RangeTokens parses spec and materialises it into ascending decimal tokens.
// A reversed range yields an empty list.
func RangeTokens(spec string) (m.TokenList, error) {
	rng, err := ParseRange(spec)
	if err != nil {
		return nil, err
	}

	count := rng.Len()
	tokens := make(m.TokenList, 0, min(count, maxPrealloc))

	for i := range count {
		tokens = append(tokens, strconv.FormatUint(rng.Start+i, 10))
	}

	return tokens, nil
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return s[:i]
}
