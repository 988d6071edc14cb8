package main

import (
	"os"

	"github.com/spf13/cobra"

	"officetools/internal/interfaces/cli/migrate"
	"officetools/internal/interfaces/cli/server"
	"officetools/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "officetools",
		Short: "Office tools backend",
		Long:  `Backend for the office tools site: checkout, subscriptions, reviews and server-side tools, with migration and maintenance commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		worker.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
