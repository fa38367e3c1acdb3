package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)

	return cmd, out
}

var sampleEstimate = m.Estimate{
	Input:         "words.lst",
	Words:         2,
	PrependTokens: 8,
	AppendTokens:  10,
	Lines:         160,
}

func TestSimpleUI_DisplayMutated(t *testing.T) {
	cmd, out := newTestCommand()

	err := NewSimpleUI(cmd).DisplayMutated(context.Background(), "mutated.lst", m.Stats{Words: 1, Mutations: 8})
	require.NoError(t, err)
	assert.Equal(t, "Mutated passwords saved to mutated.lst\n", out.String())
}

func TestSimpleUI_DisplayMutated_CancelledContext(t *testing.T) {
	cmd, out := newTestCommand()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSimpleUI(cmd).DisplayMutated(ctx, "mutated.lst", m.Stats{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayEstimation_Table(t *testing.T) {
	cmd, out := newTestCommand()

	err := NewSimpleUI(cmd).DisplayEstimation(context.Background(), sampleEstimate, FormatTable)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "INPUT")
	assert.Contains(t, output, "words.lst")
	assert.Contains(t, output, "TOTAL LINES")
	assert.Contains(t, output, "160")
}

func TestSimpleUI_DisplayEstimation_YAML(t *testing.T) {
	cmd, out := newTestCommand()

	err := NewSimpleUI(cmd).DisplayEstimation(context.Background(), sampleEstimate, FormatYAML)
	require.NoError(t, err)

	var decoded m.Estimate
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, sampleEstimate, decoded)
}

func TestSimpleUI_DisplayEstimation_UnknownFormat(t *testing.T) {
	cmd, _ := newTestCommand()

	err := NewSimpleUI(cmd).DisplayEstimation(context.Background(), sampleEstimate, Format("xml"))
	require.Error(t, err)
}

func TestStyledUI(t *testing.T) {
	t.Run("mutated message includes counts", func(t *testing.T) {
		cmd, out := newTestCommand()

		err := NewStyledUI(cmd).DisplayMutated(context.Background(), "out.lst", m.Stats{Words: 2, Mutations: 16})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Mutated passwords saved to out.lst")
		assert.Contains(t, out.String(), "2 words -> 16 mutations")
	})

	t.Run("yaml stays parseable", func(t *testing.T) {
		cmd, out := newTestCommand()

		err := NewStyledUI(cmd).DisplayEstimation(context.Background(), sampleEstimate, FormatYAML)
		require.NoError(t, err)

		var decoded m.Estimate
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, sampleEstimate, decoded)
	})

	t.Run("table has a title", func(t *testing.T) {
		cmd, out := newTestCommand()

		err := NewStyledUI(cmd).DisplayEstimation(context.Background(), sampleEstimate, FormatTable)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Estimated output")
		assert.Contains(t, out.String(), "160")
	})
}
