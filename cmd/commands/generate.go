package commands

// Command to render the sample report chart
// Loads configuration, initializes logging, writes the PNG and prints
// one confirmation line to stdout

import (
	"fmt"

	"sample-report/internal/features/report_chart"
	"sample-report/internal/infra/config"
	logging "sample-report/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate images/sample-report-chart.png",
		Long:  `Simulate the equity curve with a fixed seed and write the dual-axis equity/drawdown chart.`,
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level}); err != nil {
		return err
	}
	defer logging.Sync()

	res, err := report_chart.Generate(chartOptions(cfg))
	if err != nil {
		logging.LogError("Failed to generate chart", zap.Error(err))
		return err
	}

	logging.LogSuccess("Chart generated",
		zap.String("path", res.Path),
		zap.Float64("maxDrawdown", res.Summary.MaxDrawdown),
		zap.Int64("duration_ms", res.Duration.Milliseconds()))

	fmt.Fprintf(cmd.OutOrStdout(), "Chart saved as %s\n", res.Path)
	return nil
}

func chartOptions(cfg *config.Config) report_chart.Options {
	return report_chart.Options{
		OutputPath: cfg.Chart.OutputPath,
		Figure: report_chart.Figure{
			Title:    cfg.Chart.Title,
			DPI:      cfg.Chart.DPI,
			WidthIn:  cfg.Chart.WidthIn,
			HeightIn: cfg.Chart.HeightIn,
		},
		Series: cfg.Series,
	}
}
