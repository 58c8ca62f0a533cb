package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/riskanalytics/analytics"
	"github.com/tidepool-org/riskanalytics/export"
)

var distributionXlsxPath string

var distributionCmd = &cobra.Command{
	Use:   "distribution <clinicId>",
	Short: "Print the risk distribution of a clinic",
	Long:  "The distribution command counts the latest risk score of every patient of a clinic per risk band",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service analytics.Service) error {
			report, err := service.ClinicDistribution(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := export.PrintDistribution(w, report, useColors()); err != nil {
				return err
			}
			if distributionXlsxPath == "" {
				return nil
			}

			workbook, err := export.DistributionWorkbook(report, time.Now())
			if err != nil {
				return err
			}
			if err := workbook.Save(distributionXlsxPath); err != nil {
				return fmt.Errorf("unable to save workbook: %w", err)
			}

			_, err = fmt.Fprintf(w, "Saved report to %s\n", distributionXlsxPath)
			return err
		})
	},
}

func init() {
	distributionCmd.Flags().StringVar(&distributionXlsxPath, "xlsx", "", "Save the distribution as an xlsx workbook")
	rootCmd.AddCommand(distributionCmd)
}
