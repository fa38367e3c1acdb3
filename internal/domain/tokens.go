package domain

import (
	"fmt"
	"log/slog"

	m "gooze.dev/pkg/pwmutate/internal/model"
)

// specialCharacters is the fixed special set, in output order.
var specialCharacters = [...]string{"!", "@", "#", "$", "%", "^", "&", "*"}

// SpecialTokens returns a copy of the special-character set.
func SpecialTokens() m.TokenList {
	tokens := make(m.TokenList, len(specialCharacters))
	copy(tokens, specialCharacters[:])

	return tokens
}

// ResolveTokens builds the token list for one side of the word.
//
// ModeNumber without a range falls back to the no-op list instead of failing.
func ResolveTokens(mode m.Mode, rangeSpec string) (m.TokenList, error) {
	switch mode {
	case m.ModeSpecial:
		return SpecialTokens(), nil
	case m.ModeNumber:
		if rangeSpec == "" {
			slog.Warn("number mode selected without a range, leaving side unchanged")
			return m.NoTokens(), nil
		}

		return RangeTokens(rangeSpec)
	case m.ModeNone:
		return m.NoTokens(), nil
	}

	return nil, fmt.Errorf("%w: %s", m.ErrUnknownMode, mode)
}
