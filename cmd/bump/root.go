package bump

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath       string
	apiURL       string
	forceOffline bool
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "bump",
	Short: "bump tracks pregnancy nutrition from your terminal",
	Long:  "bump is a local-first pregnancy nutrition companion: daily nutrition dashboards, food logging, a pregnancy journal, and week-by-week progress, with offline changes synced when you reconnect.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API base URL (overrides stored config)")
	rootCmd.PersistentFlags().BoolVar(&forceOffline, "offline", false, "Skip connectivity checks and work offline")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
