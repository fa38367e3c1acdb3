// Package controller renders run results to the user.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

// Format selects how an estimation is rendered.
type Format string

// Available Format values.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatTable, FormatYAML:
		return Format(name), nil
	}

	return "", fmt.Errorf("unknown format %q (choose from %q, %q)", name, FormatTable, FormatYAML)
}

// UI defines the interface for reporting run results.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplayMutated(ctx context.Context, output m.Path, stats m.Stats) error
	DisplayEstimation(ctx context.Context, estimate m.Estimate, format Format) error
}

// NewUI picks the styled UI for terminals and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
