package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMutated confirms where the mutated wordlist was written.
func (s *SimpleUI) DisplayMutated(ctx context.Context, output m.Path, _ m.Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s\n", savedMessage(output))
}

// DisplayEstimation prints the estimation as a table or YAML document.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, estimate m.Estimate, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered, err := renderEstimation(estimate, format)
	if err != nil {
		return err
	}

	return s.printf("%s", rendered)
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

func savedMessage(output m.Path) string {
	return fmt.Sprintf("Mutated passwords saved to %s", output)
}

func renderEstimation(estimate m.Estimate, format Format) (string, error) {
	switch format {
	case FormatYAML:
		return renderEstimationYAML(estimate)
	case FormatTable, "":
		return renderEstimationTable(estimate), nil
	}

	return "", fmt.Errorf("unknown format %q", format)
}

func renderEstimationTable(estimate m.Estimate) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Input", "Words", "Prepend", "Append"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	table.Append([]string{
		string(estimate.Input),
		strconv.FormatUint(estimate.Words, 10),
		strconv.FormatUint(estimate.PrependTokens, 10),
		strconv.FormatUint(estimate.AppendTokens, 10),
	})

	table.SetFooter([]string{"", "", "Total Lines", strconv.FormatUint(estimate.Lines, 10)})

	table.Render()

	return tableBuffer.String()
}

func renderEstimationYAML(estimate m.Estimate) (string, error) {
	out, err := yaml.Marshal(estimate)
	if err != nil {
		return "", fmt.Errorf("marshal estimation: %w", err)
	}

	return string(out), nil
}
