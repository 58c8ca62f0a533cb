package command

import (
	"github.com/spf13/cobra"

	"github.com/tidepool-org/riskanalytics/analytics"
	"github.com/tidepool-org/riskanalytics/export"
)

var glucoseCmd = &cobra.Command{
	Use:   "glucose <userId>",
	Short: "Print the glucose status of a patient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service analytics.Service) error {
			report, err := service.GlucoseStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return export.PrintGlucoseReport(cmd.OutOrStdout(), report, useColors())
		})
	},
}

func init() {
	rootCmd.AddCommand(glucoseCmd)
}
