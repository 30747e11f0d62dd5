package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/kerbaras/appassets/pkg/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appassets",
	Short: "Render app icons and splash screens, preview notification badges",
	Long: `Render the app's vector artwork into the raster assets a mobile build needs.

Running appassets without arguments converts the default job set:
  assets/icon.svg          -> assets/icon.png           1024x1024
  assets/adaptive-icon.svg -> assets/adaptive-icon.png  1024x1024
  assets/splash.svg        -> assets/splash.png         1284x2778
  assets/favicon.svg       -> assets/favicon.png        48x48`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, convertOptions{})
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: console, json or auto")

	// Add all subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(badgeCmd)
}

// Execute runs the CLI and exits non-zero when a command fails, including
// batches where any single conversion failed.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	return logging.New(logging.Options{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
}
