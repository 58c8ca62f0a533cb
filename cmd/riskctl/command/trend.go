package command

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/riskanalytics/analytics"
	"github.com/tidepool-org/riskanalytics/export"
)

var (
	trendHorizon     int
	trendParquetPath string
)

var trendCmd = &cobra.Command{
	Use:   "trend <userId>",
	Short: "Print the risk trend of a patient",
	Long:  "The trend command fits the risk score history of a patient and prints the forecast",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var horizon *int
		if cmd.Flags().Changed("horizon") {
			horizon = &trendHorizon
		}

		return Run(func(service analytics.Service) error {
			return printTrend(cmd.Context(), cmd.OutOrStdout(), service, args[0], horizon)
		})
	},
}

func printTrend(ctx context.Context, w io.Writer, service analytics.Service, userId string, horizon *int) error {
	report, err := service.RiskTrend(ctx, userId, horizon)
	if err != nil {
		return err
	}

	if err := export.PrintRiskReport(w, report, useColors()); err != nil {
		return err
	}

	if trendParquetPath == "" {
		return nil
	}

	f, err := createFile(trendParquetPath)
	if err != nil {
		return err
	}

	rows := export.NewTrendRows(report)
	if err := writeAndClose(f, rows); err != nil {
		return fmt.Errorf("unable to export %s: %w", trendParquetPath, err)
	}

	_, err = fmt.Fprintf(w, "Exported %d rows to %s\n", len(rows), trendParquetPath)
	return err
}

// writeAndClose returns the close error of f
func writeAndClose(f io.WriteCloser, rows []export.TrendRow) error {
	if err := export.WriteTrendParquet(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func init() {
	trendCmd.Flags().IntVar(&trendHorizon, "horizon", 0, "Number of days to forecast (defaults to the service configuration)")
	trendCmd.Flags().StringVar(&trendParquetPath, "parquet", "", "Export the history and the forecast to a parquet file")
	rootCmd.AddCommand(trendCmd)
}
