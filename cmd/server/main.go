package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	port     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Marketplace API - customers, vendors and the admin console",
	Long: `Marketplace API serves the catalog, the order ledger and vendor
administration over HTTP.

Running without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	rootCmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")

	rootCmd.AddCommand(serveCmd, migrateCmd, promoteAdminCmd)
}
