package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenworks/backoffice/internal/application/product/usecases"
	"github.com/lumenworks/backoffice/internal/infrastructure/database"
	"github.com/lumenworks/backoffice/internal/infrastructure/repository"
	catalog "github.com/lumenworks/backoffice/internal/infrastructure/seed"
	"github.com/lumenworks/backoffice/internal/interfaces/cli"
)

var (
	env         string
	configPath  string
	catalogPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the product catalog",
		Long:  `Create or update products from a YAML catalog file. Usage counters of existing products are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&catalogPath, "file", "f", "./configs/products.yaml", "Path to the product catalog")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	_, log, err := cli.Bootstrap(env, configPath, true)
	if err != nil {
		return err
	}
	defer database.Close()

	entries, err := catalog.LoadCatalogFile(catalogPath)
	if err != nil {
		return err
	}

	repo := repository.NewProductRepository(database.Get(), log)
	result, err := usecases.NewSeedCatalogUseCase(repo, log).Execute(context.Background(), entries)
	if err != nil {
		log.Errorw("failed to seed product catalog", "error", err)
		return fmt.Errorf("failed to seed product catalog: %w", err)
	}

	fmt.Printf("Catalog seeded: %d created, %d updated\n", len(result.Created), len(result.Updated))
	return nil
}
