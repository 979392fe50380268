package export

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenworks/backoffice/internal/application/entitlement/usecases"
	"github.com/lumenworks/backoffice/internal/infrastructure/database"
	"github.com/lumenworks/backoffice/internal/infrastructure/repository"
	"github.com/lumenworks/backoffice/internal/interfaces/cli"
)

var (
	env        string
	configPath string
	tenantID   string
	outputPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export reports",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newUsageCommand())
	return cmd
}

func newUsageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Export a tenant's product usage as xlsx",
		RunE:  runUsage,
	}

	cmd.Flags().StringVarP(&tenantID, "tenant", "t", "", "Tenant ID (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: usage-<tenant>.xlsx)")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func runUsage(cmd *cobra.Command, args []string) error {
	cfg, log, err := cli.Bootstrap(env, configPath, true)
	if err != nil {
		return err
	}
	defer database.Close()

	db := database.Get()
	list := usecases.NewListEntitlementsUseCase(
		repository.NewEntitlementRepository(db, log),
		repository.NewTenantRepository(db, log),
		repository.NewProductRepository(db, log),
		cfg.Server.AccessURL,
		log,
	)

	data, err := usecases.NewExportUsageUseCase(list, log).Execute(context.Background(), tenantID)
	if err != nil {
		return fmt.Errorf("failed to export usage: %w", err)
	}

	if outputPath == "" {
		outputPath = fmt.Sprintf("usage-%s.xlsx", tenantID)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("Usage report written to %s\n", outputPath)
	return nil
}
