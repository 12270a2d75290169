package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lawlens/lawlens/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  "Show the effective configuration after defaults, config file, and environment overrides are applied.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Never echo credentials.
		redacted := *cfg
		if redacted.Congress.APIKey != "" {
			redacted.Congress.APIKey = "(redacted)"
		}

		data, err := yaml.Marshal(&redacted)
		if err != nil {
			return err
		}

		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Printf("# config file: %s\n", file)
		} else {
			fmt.Println("# config file: (none, defaults and environment only)")
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
