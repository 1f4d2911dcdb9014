package commands

// Root command for the Cobra CLI
// Running the bare command generates the report chart, same as "generate"

import (
	"sample-report/internal/infra/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sample-report",
		Short: "Render the sample trading performance chart",
		Long: `sample-report simulates a seeded equity curve, derives its drawdown and
renders both on a dual-axis PNG chart (images/sample-report-chart.png).`,
		Version:       "1.0.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newGenerateCmd())
	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}
