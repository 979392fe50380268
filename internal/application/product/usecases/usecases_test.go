package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lumenworks/backoffice/internal/application/product/dto"
	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/infrastructure/repository"
	"github.com/lumenworks/backoffice/internal/infrastructure/seed"
	"github.com/lumenworks/backoffice/internal/shared/db"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type mockInvalidator struct {
	products []string
}

func (m *mockInvalidator) InvalidateProduct(_ context.Context, productID string) error {
	m.products = append(m.products, productID)
	return nil
}

type testEnv struct {
	repo    product.Repository
	entRepo entitlement.Repository
	txm     *db.TransactionManager
	cache   *mockInvalidator
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	return &testEnv{
		repo:    repository.NewProductRepository(gdb, log),
		entRepo: repository.NewEntitlementRepository(gdb, log),
		txm:     db.NewTransactionManager(gdb),
		cache:   &mockInvalidator{},
	}
}

func TestCreateProduct(t *testing.T) {
	env := setup(t)
	uc := NewCreateProductUseCase(env.repo, logger.NewNopLogger())
	ctx := context.Background()

	p, err := uc.Execute(ctx, dto.CreateProductRequest{ID: "crm", Name: "CRM"})
	require.NoError(t, err)
	assert.True(t, p.Active)

	_, err = uc.Execute(ctx, dto.CreateProductRequest{ID: "crm", Name: "CRM again"})
	assert.True(t, errors.IsConflictError(err))

	_, err = uc.Execute(ctx, dto.CreateProductRequest{ID: "Not A Slug", Name: "x"})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateProduct_ToggleInvalidatesCache(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	_, err := NewCreateProductUseCase(env.repo, logger.NewNopLogger()).Execute(ctx, dto.CreateProductRequest{ID: "hr", Name: "HR"})
	require.NoError(t, err)

	uc := NewUpdateProductUseCase(env.repo, env.cache, logger.NewNopLogger())

	name := "Human Resources"
	p, err := uc.Execute(ctx, "hr", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, p.Name)
	assert.Empty(t, env.cache.products)

	inactive := false
	p, err = uc.Execute(ctx, "hr", dto.UpdateProductRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, p.Active)
	assert.Equal(t, []string{"hr"}, env.cache.products)

	_, err = uc.Execute(ctx, "missing", dto.UpdateProductRequest{Name: &name})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteProduct_GuardedByGrants(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	_, err := NewCreateProductUseCase(env.repo, logger.NewNopLogger()).Execute(ctx, dto.CreateProductRequest{ID: "crm", Name: "CRM"})
	require.NoError(t, err)

	e, err := entitlement.NewEntitlement("tnt_1", "crm", "usr_root", entitlement.Credentials{TokenHash: "h", AccessLink: "acme-0001"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, env.entRepo.Create(ctx, e))

	uc := NewDeleteProductUseCase(env.repo, env.entRepo, env.txm, env.cache, logger.NewNopLogger())

	err = uc.Execute(ctx, "crm")
	assert.True(t, errors.IsConflictError(err))

	e.Revoke("usr_root", time.Now())
	require.NoError(t, env.entRepo.Update(ctx, e))

	require.NoError(t, uc.Execute(ctx, "crm"))
	assert.Equal(t, []string{"crm"}, env.cache.products)

	err = uc.Execute(ctx, "crm")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSeedCatalog_IsRepeatable(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	uc := NewSeedCatalogUseCase(env.repo, logger.NewNopLogger())

	inactive := false
	entries := []seed.CatalogEntry{
		{ID: "crm", Name: "CRM"},
		{ID: "invoicing", Name: "Invoicing", Active: &inactive},
	}

	first, err := uc.Execute(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"crm", "invoicing"}, first.Created)

	require.NoError(t, env.repo.IncrementAccessCount(ctx, "crm"))

	entries[0].Name = "Acme CRM"
	second, err := uc.Execute(ctx, entries)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Len(t, second.Updated, 2)

	got, err := NewGetProductUseCase(env.repo, logger.NewNopLogger()).Execute(ctx, "crm")
	require.NoError(t, err)
	assert.Equal(t, "Acme CRM", got.Name)
	assert.Equal(t, int64(1), got.TotalAccessCount)

	active, err := NewListProductsUseCase(env.repo, logger.NewNopLogger()).Execute(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "crm", active[0].ID)
}
