package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lrsproject/lrs/internal/interfaces/cli/admin"
	"github.com/lrsproject/lrs/internal/interfaces/cli/migrate"
	"github.com/lrsproject/lrs/internal/interfaces/cli/server"
	"github.com/lrsproject/lrs/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "lrs",
		Short:        "LRS - A multi-tenant learning record store",
		Long:         `LRS stores xAPI and Caliper learning activity statements and serves them under per-credential, per-tenant authorization.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		version.NewCommand(),
	)
	rootCmd.AddCommand(admin.NewCommands()...)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
