// Package commands implements the pricing-dashboard command line.
package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pricing-dashboard/config"
	"pricing-dashboard/utils"
)

var (
	envFile  string
	logLevel string
	noColor  bool

	cfg    *config.Config
	logger *utils.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pricing-dashboard",
	Short: "Grocery price dashboard: product grouping, regional rollups and reports",
	Long: `pricing-dashboard loads a catalog of grocery price observations, groups
equivalent products across retailers and computes price statistics by
product, state and region. It serves the results over HTTP and prints or
exports reports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load(envFile)
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		logger = utils.NewLoggerWithOptions(utils.LogOptions{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		})
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "extra .env file to load before .env")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
