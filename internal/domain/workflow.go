package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/pwmutate/internal/adapter"
	"gooze.dev/pkg/pwmutate/internal/controller"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

// TokenArgs selects the prepend and append token sources.
type TokenArgs struct {
	Prepend      m.Mode
	PrependRange string
	Append       m.Mode
	AppendRange  string
}

// MutateArgs contains the arguments for a mutation run.
type MutateArgs struct {
	TokenArgs
	Input  m.Path
	Output m.Path
}

// EstimateArgs contains the arguments for estimating a mutation run.
type EstimateArgs struct {
	TokenArgs
	Input  m.Path
	Format controller.Format
}

// Workflow defines the interface for the wordlist mutation workflow.
type Workflow interface {
	Mutate(ctx context.Context, args MutateArgs) error
	Estimate(ctx context.Context, args EstimateArgs) (m.Estimate, error)
}

type workflow struct {
	adapter.WordlistAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(wordlists adapter.WordlistAdapter, ui controller.UI) Workflow {
	return &workflow{
		WordlistAdapter: wordlists,
		UI:              ui,
	}
}

// Mutate expands every word of args.Input into args.Output. Token lists are
// resolved before any file is touched, so a bad range leaves no output behind.
func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	prepends, appends, err := resolveTokenArgs(args.TokenArgs)
	if err != nil {
		return err
	}

	slog.Debug("Resolved tokens", "prepend", len(prepends), "append", len(appends))

	reader, err := w.Open(args.Input)
	if err != nil {
		slog.Error("Failed to open input", "path", args.Input, "error", err)
		return fmt.Errorf("open input: %w", err)
	}

	defer closeReader(reader, args.Input)

	writer, err := w.Create(args.Output)
	if err != nil {
		slog.Error("Failed to create output", "path", args.Output, "error", err)
		return fmt.Errorf("create output: %w", err)
	}

	stats, err := expand(ctx, reader, writer, prepends, appends)

	if closeErr := writer.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}

	if err != nil {
		slog.Error("Mutation run failed", "input", args.Input, "output", args.Output, "error", err)
		return err
	}

	slog.Info("Mutation run completed", "output", args.Output, "words", stats.Words, "mutations", stats.Mutations)

	return w.DisplayMutated(ctx, args.Output, stats)
}

// Estimate counts the input words and predicts how many lines Mutate would write.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) (m.Estimate, error) {
	prepends, appends, err := resolveTokenArgs(args.TokenArgs)
	if err != nil {
		return m.Estimate{}, err
	}

	reader, err := w.Open(args.Input)
	if err != nil {
		return m.Estimate{}, fmt.Errorf("open input: %w", err)
	}

	defer closeReader(reader, args.Input)

	var words uint64

	for reader.Next() {
		if err := ctx.Err(); err != nil {
			return m.Estimate{}, err
		}

		words++
	}

	if err := reader.Err(); err != nil {
		return m.Estimate{}, fmt.Errorf("read input: %w", err)
	}

	estimate := m.Estimate{
		Input:         args.Input,
		Words:         words,
		PrependTokens: uint64(len(prepends)),
		AppendTokens:  uint64(len(appends)),
		Lines:         words * uint64(len(prepends)) * uint64(len(appends)),
	}

	if err := w.DisplayEstimation(ctx, estimate, args.Format); err != nil {
		return estimate, fmt.Errorf("display: %w", err)
	}

	return estimate, nil
}

func resolveTokenArgs(args TokenArgs) (m.TokenList, m.TokenList, error) {
	prepends, err := ResolveTokens(args.Prepend, args.PrependRange)
	if err != nil {
		return nil, nil, fmt.Errorf("prepend: %w", err)
	}

	appends, err := ResolveTokens(args.Append, args.AppendRange)
	if err != nil {
		return nil, nil, fmt.Errorf("append: %w", err)
	}

	return prepends, appends, nil
}

// expand writes the mutations of one word completely before reading the next.
func expand(ctx context.Context, reader adapter.WordReader, writer adapter.WordWriter, prepends, appends m.TokenList) (m.Stats, error) {
	var stats m.Stats

	write := func(mutation string) error {
		if err := writer.WriteLine(mutation); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		stats.Mutations++

		return nil
	}

	for reader.Next() {
		if err := ctx.Err(); err != nil {
			slog.Debug("Mutation run cancelled", "words", stats.Words)
			return stats, err
		}

		stats.Words++

		if err := MutateEach(reader.Word(), prepends, appends, write); err != nil {
			return stats, err
		}
	}

	if err := reader.Err(); err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}

	return stats, nil
}

func closeReader(reader adapter.WordReader, path m.Path) {
	if err := reader.Close(); err != nil {
		slog.Error("Failed to close input", "path", path, "error", err)
	}
}
