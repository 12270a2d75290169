package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fulmenhq/gofulmen/crucible"
	"github.com/lawlens/lawlens/internal/config"
	"github.com/lawlens/lawlens/internal/core/congress"
	"github.com/lawlens/lawlens/internal/observability"
)

var envInfoCmd = &cobra.Command{
	Use:   "envinfo",
	Short: "Display environment information",
	Long:  "Display comprehensive environment, configuration, and version information.",
	Run: func(cmd *cobra.Command, args []string) {
		version := crucible.GetVersion()

		identity := GetAppIdentity()
		observability.CLILogger.Info("=== LawLens Environment Information ===")
		observability.CLILogger.Info("")

		// Application Info
		observability.CLILogger.Info("Application:")
		observability.CLILogger.Info("  Name:       " + identity.BinaryName)
		observability.CLILogger.Info("  Version:    " + versionInfo.Version)
		observability.CLILogger.Info("  Commit:     " + versionInfo.Commit)
		observability.CLILogger.Info("  Built:      " + versionInfo.BuildDate)
		observability.CLILogger.Info("")

		// SSOT Info
		observability.CLILogger.Info("SSOT:")
		observability.CLILogger.Info("  Gofulmen:   "+version.Gofulmen, zap.String("gofulmen_version", version.Gofulmen))
		observability.CLILogger.Info("  Crucible:   "+version.Crucible, zap.String("crucible_version", version.Crucible))
		observability.CLILogger.Info("")

		// Runtime Info
		observability.CLILogger.Info("Runtime:")
		observability.CLILogger.Info("  Go Version: "+runtime.Version(), zap.String("go_version", runtime.Version()))
		observability.CLILogger.Info("  GOOS:       "+runtime.GOOS, zap.String("goos", runtime.GOOS))
		observability.CLILogger.Info("  GOARCH:     "+runtime.GOARCH, zap.String("goarch", runtime.GOARCH))
		observability.CLILogger.Info(fmt.Sprintf("  NumCPU:     %d", runtime.NumCPU()), zap.Int("num_cpu", runtime.NumCPU()))
		observability.CLILogger.Info("")

		cfg, err := config.Load()
		if err != nil {
			observability.CLILogger.Warn("Config load failed", zap.Error(err))
			return
		}

		// Configuration
		observability.CLILogger.Info("Configuration:")
		observability.CLILogger.Info("  API Base URL:   "+cfg.Congress.BaseURL, zap.String("base_url", cfg.Congress.BaseURL))
		observability.CLILogger.Info("  Timeout:        " + cfg.Congress.Timeout.String())
		observability.CLILogger.Info(fmt.Sprintf("  Quota:          %.4f req/s", cfg.Congress.Quota), zap.Float64("quota", cfg.Congress.Quota))
		observability.CLILogger.Info(fmt.Sprintf("  Retry Attempts: %d", cfg.Congress.RetryAttempts), zap.Int("retry_attempts", cfg.Congress.RetryAttempts))
		observability.CLILogger.Info("  Retry Backoff:  " + cfg.Congress.RetryBackoff.String())
		observability.CLILogger.Info("  Server Host:    "+cfg.Server.Host, zap.String("host", cfg.Server.Host))
		observability.CLILogger.Info(fmt.Sprintf("  Server Port:    %d", cfg.Server.Port), zap.Int("port", cfg.Server.Port))
		observability.CLILogger.Info("  Log Level:      "+cfg.Logging.Level, zap.String("log_level", cfg.Logging.Level))
		observability.CLILogger.Info("  Log Profile:    "+cfg.Logging.Profile, zap.String("log_profile", cfg.Logging.Profile))
		observability.CLILogger.Info(fmt.Sprintf("  Metrics Port:   %d", cfg.Metrics.Port), zap.Int("metrics_port", cfg.Metrics.Port))
		observability.CLILogger.Info("")

		// Credentials. Never print the key itself.
		observability.CLILogger.Info("Credentials:")
		if cfg.Congress.APIKey != "" {
			observability.CLILogger.Info("  API Key:        (set via config)")
		} else if os.Getenv(congress.APIKeyEnv) != "" {
			observability.CLILogger.Info("  API Key:        (set via " + congress.APIKeyEnv + ")")
		} else {
			observability.CLILogger.Info("  API Key:        (not set)")
		}
		observability.CLILogger.Info("")

		observability.CLILogger.Info("=== End Environment Information ===")
	},
}

func init() {
	rootCmd.AddCommand(envInfoCmd)
}
