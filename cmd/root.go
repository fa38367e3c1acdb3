// Package cmd provides the root command and CLI setup for pwmutate.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/pwmutate/internal/adapter"
	"gooze.dev/pkg/pwmutate/internal/controller"
	"gooze.dev/pkg/pwmutate/internal/domain"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

var wordlistAdapter adapter.WordlistAdapter
var workflow domain.Workflow
var ui controller.UI

// logFileFlag overrides the configured log file for a single invocation.
var logFileFlag string

// verboseFlag switches logging to Debug.
var verboseFlag bool

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	wordlistAdapter = adapter.NewLocalWordlistAdapter()
	workflow = domain.NewWorkflow(wordlistAdapter, ui)
}

const rootLongDescription = `Mutate a password wordlist by prepending and/or appending special
characters or numbers.

Every input line is combined with every prepend token and every append token:
  -p special      prepends each of ! @ # $ % ^ & *
  -a number       appends each number of --append_range (e.g., 0-99)`

// rootCmd represents the base command; it performs the mutation run.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwmutate <input_file>",
		Short: "Password wordlist mutation tool",
		Long:  rootLongDescription,
		Args:  cobra.ExactArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag and argument errors have been reported with usage by now.
			cmd.SilenceUsage = true

			tokens, err := tokenArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Mutate(context.Background(), domain.MutateArgs{
				TokenArgs: tokens,
				Input:     m.Path(args[0]),
				Output:    m.Path(viper.GetString(outputFileConfigKey)),
			})
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(outputFileFlagName, "o", defaultOutputFile, "output file for the mutated passwords")
	bindFlagToConfig(cmd.Flags().Lookup(outputFileFlagName), outputFileConfigKey)

	configureTokenFlags(cmd.PersistentFlags())

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from config, "+defaultLogFilename+")")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
