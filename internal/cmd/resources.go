package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawlens/lawlens/internal/core"
	"github.com/lawlens/lawlens/internal/output"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List the known Congress.gov resource families",
	Long:  "List the resource families that fetch and the pass-through service accept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveOutputFormat(cmd)
		if err != nil {
			return err
		}

		switch format {
		case output.FormatJSON:
			rendered, err := output.JSON(core.Resources())
			if err != nil {
				return err
			}
			fmt.Println(rendered)
		case output.FormatRaw:
			for _, r := range core.Resources() {
				fmt.Println(string(r))
			}
		default:
			fmt.Println(output.ResourceTable(core.Resources()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
	resourcesCmd.Flags().String("output-format", "table", "output format: table, json, raw")
}
