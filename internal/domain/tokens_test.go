package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

func TestSpecialTokens(t *testing.T) {
	want := m.TokenList{"!", "@", "#", "$", "%", "^", "&", "*"}
	assert.Equal(t, want, SpecialTokens())

	tokens := SpecialTokens()
	tokens[0] = "x"
	assert.Equal(t, want, SpecialTokens(), "callers must not be able to change the set")
}

func TestResolveTokens(t *testing.T) {
	tests := []struct {
		name      string
		mode      m.Mode
		rangeSpec string
		want      m.TokenList
	}{
		{"none", m.ModeNone, "", m.TokenList{""}},
		{"none ignores range", m.ModeNone, "1-3", m.TokenList{""}},
		{"special", m.ModeSpecial, "", SpecialTokens()},
		{"special ignores range", m.ModeSpecial, "1-3", SpecialTokens()},
		{"number", m.ModeNumber, "1-3", m.TokenList{"1", "2", "3"}},
		{"number without range falls back", m.ModeNumber, "", m.TokenList{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTokens(tt.mode, tt.rangeSpec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTokens_Errors(t *testing.T) {
	_, err := ResolveTokens(m.ModeNumber, "abc")
	require.ErrorIs(t, err, ErrFormat)

	_, err = ResolveTokens(m.Mode(42), "")
	require.ErrorIs(t, err, m.ErrUnknownMode)
}
