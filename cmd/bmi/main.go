// Package main is the calorie-craft command line client. It classifies a
// BMI offline and queries the recipe catalog with the API's configuration.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageza/calorie-craft/backend/internal/api"
	"github.com/pageza/calorie-craft/backend/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "bmi",
	Short:         "Classify a BMI and find matching recipes",
	Version:       api.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logging.SetDefaultStructuredLogger("calorie-craft-cli", api.Version, level)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "error", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
