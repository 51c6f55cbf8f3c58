package main

import (
	"os"

	"github.com/spf13/cobra"

	"maintdesk/internal/interfaces/cli/migrate"
	"maintdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "maintdesk",
		Short: "Maintdesk - maintenance request service",
		Long:  `Maintdesk is a maintenance request tracking service with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
