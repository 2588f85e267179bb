package main

import (
	"os"

	"github.com/spf13/cobra"

	"opsportal/internal/interfaces/cli/migrate"
	"opsportal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opsportal",
		Short: "IBBE ops portal backend",
		Long:  `Employee ops portal backend with task tracking, the compliance engine, and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
