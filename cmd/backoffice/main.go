package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenworks/backoffice/internal/interfaces/cli/export"
	"github.com/lumenworks/backoffice/internal/interfaces/cli/migrate"
	"github.com/lumenworks/backoffice/internal/interfaces/cli/seed"
	"github.com/lumenworks/backoffice/internal/interfaces/cli/server"
)

// @title Back Office API
// @version 1.0
// @description Multi-tenant entitlement and quotation engine.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "backoffice",
		Short: "Back office entitlement and workflow engine",
		Long:  `Back office service for product entitlements, quotations and tenant notifications, with migration, seed and export tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		export.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
