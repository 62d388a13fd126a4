package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pushback",
	Short: "Pushback runs the ball transport controllers without a robot attached.",
	Long: `Pushback drives the scoring and color sorting controllers on an ` +
		`in-memory bench rig. It can replay a scripted match, record telemetry ` +
		`to SQLite, and expose the control loop over HTTP for inspection.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional; bench runs work without an env file.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}

	atexit.Exit(0)
}
