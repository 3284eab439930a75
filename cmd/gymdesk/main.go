package main

import (
	"os"

	"github.com/spf13/cobra"

	"gymdesk/internal/interfaces/cli/migrate"
	"gymdesk/internal/interfaces/cli/report"
	"gymdesk/internal/interfaces/cli/seed"
	"gymdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gymdesk",
		Short: "GymDesk - gym membership management",
		Long:  `GymDesk tracks gym members, their plans and renewals, and flags memberships that are about to expire.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		report.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
