package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"gooze.dev/pkg/pwmutate/internal/controller"
	"gooze.dev/pkg/pwmutate/internal/domain"
	domainmocks "gooze.dev/pkg/pwmutate/internal/domain/mocks"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

func TestEstimateCmd_YAML(t *testing.T) {
	cmd, out := newTestRootCmd(t)
	input := writeWordlist(t, "one\ntwo\nthree\n")

	cmd.SetArgs(withLogFile(t, "estimate", input, "-p", "special", "-a", "number", "--append_range", "0-9", "--format", "yaml"))
	require.NoError(t, cmd.Execute())

	var got m.Estimate
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, m.Estimate{
		Input:         m.Path(input),
		Words:         3,
		PrependTokens: 8,
		AppendTokens:  10,
		Lines:         240,
	}, got)
}

func TestEstimateCmd_Table(t *testing.T) {
	cmd, out := newTestRootCmd(t)
	input := writeWordlist(t, "one\n")

	cmd.SetArgs(withLogFile(t, "estimate", input, "-a", "special"))
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "TOTAL LINES")
	assert.Contains(t, out.String(), "8")
}

func TestEstimateCmd_UnknownFormat(t *testing.T) {
	cmd, _ := newTestRootCmd(t)
	input := writeWordlist(t, "one\n")

	cmd.SetArgs(withLogFile(t, "estimate", input, "--format", "xml"))
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestEstimateCmd_PassesArgsToWorkflow(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newEstimateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Estimate", mock.Anything, domain.EstimateArgs{
		TokenArgs: domain.TokenArgs{Prepend: m.ModeNumber, PrependRange: "1-3"},
		Input:     "words.lst",
		Format:    controller.FormatTable,
	}).Return(m.Estimate{}, nil)

	cmd.SetArgs(withLogFile(t, "estimate", "words.lst", "-p", "number", "--prepend_range", "1-3"))
	require.NoError(t, cmd.Execute())
}
