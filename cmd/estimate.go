package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/pwmutate/internal/controller"
	"gooze.dev/pkg/pwmutate/internal/domain"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

// estimateCmd represents the estimate command.
var estimateCmd = newEstimateCmd()

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <input_file>",
		Short: "Estimate the size of a mutation run",
		Long: `Count the words in the input file and report how many lines a mutation run
with the same prepend/append options would write. Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			tokens, err := tokenArgsFromConfig()
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			_, err = workflow.Estimate(context.Background(), domain.EstimateArgs{
				TokenArgs: tokens,
				Input:     m.Path(args[0]),
				Format:    format,
			})

			return err
		},
	}

	cmd.Flags().String(formatFlagName, defaultEstimateFormat, "output format: table or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}
