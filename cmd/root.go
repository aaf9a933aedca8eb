package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/nivaran/nivaran_backend/cmd/http"
	systemcmd "github.com/nivaran/nivaran_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "nivaran",
	Short: "Nivaran real-time outpatient queue engine for walk-in clinics.",
	Long: `Nivaran runs the live token queue for outpatient clinics: schedule
resolution, walk-in and advance booking, delay tracking, and the visit
status lifecycle, all behind one HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
