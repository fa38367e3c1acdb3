package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

// StyledUI is the terminal rendition of SimpleUI.
type StyledUI struct {
	cmd *cobra.Command
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{cmd: cmd}
}

// DisplayMutated confirms where the mutated wordlist was written.
func (s *StyledUI) DisplayMutated(ctx context.Context, output m.Path, stats m.Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s\n  %d words -> %d mutations\n",
		successStyle.Render(savedMessage(output)), stats.Words, stats.Mutations)
}

// DisplayEstimation prints the estimation; YAML is left unstyled so it can be piped.
func (s *StyledUI) DisplayEstimation(ctx context.Context, estimate m.Estimate, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered, err := renderEstimation(estimate, format)
	if err != nil {
		return err
	}

	if format == FormatYAML {
		return s.printf("%s", rendered)
	}

	return s.printf("%s\n\n%s", titleStyle.Render("Estimated output"), rendered)
}

func (s *StyledUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
