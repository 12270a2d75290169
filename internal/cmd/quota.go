package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawlens/lawlens/internal/core/engine"
	"github.com/lawlens/lawlens/internal/output"
)

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Show the request pace state",
	Long: `Show the state of the shared request throttle.

The counter covers every request issued by this process since its first
request. It resets when the process exits; the upstream limit of 1000
requests per hour is enforced server-side regardless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveOutputFormat(cmd)
		if err != nil {
			return err
		}

		snap := engine.Shared().Snapshot()

		switch format {
		case output.FormatJSON:
			rendered, err := output.JSON(snap)
			if err != nil {
				return err
			}
			fmt.Println(rendered)
		default:
			fmt.Println(output.QuotaTable(snap))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quotaCmd)
	quotaCmd.Flags().String("output-format", "table", "output format: table, json")
}
