package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/domain/shared/services"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/cache"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/infrastructure/repository"
	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/db"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type memoryVerifyCache struct {
	mu          sync.Mutex
	entries     map[string]string
	generations map[string]int64
	invalidated []string
}

func newMemoryVerifyCache() *memoryVerifyCache {
	return &memoryVerifyCache{entries: map[string]string{}, generations: map[string]int64{}}
}

func (c *memoryVerifyCache) Get(_ context.Context, tenantID, productID string) (*cache.CachedVerification, cache.Generation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tenantID + "/" + productID
	gen := cache.Generation{Pair: c.generations[key]}
	status, ok := c.entries[key]
	if !ok {
		return nil, gen, nil
	}
	return &cache.CachedVerification{Status: status}, gen, nil
}

func (c *memoryVerifyCache) Set(_ context.Context, tenantID, productID string, v cache.CachedVerification, gen cache.Generation) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tenantID + "/" + productID
	if c.generations[key] != gen.Pair {
		return false, nil
	}
	c.entries[key] = v.Status
	return true, nil
}

func (c *memoryVerifyCache) Invalidate(_ context.Context, tenantID, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tenantID + "/" + productID
	c.generations[key]++
	delete(c.entries, key)
	c.invalidated = append(c.invalidated, key)
	return nil
}

func operator(userID string) Actor {
	return Actor{UserID: userID, Role: authorization.RoleSuperAdmin}
}

// hookedRepo runs one-shot hooks around the wrapped repository so tests can
// interleave a competing writer between a read and the write that follows it.
type hookedRepo struct {
	entitlement.Repository
	mu           sync.Mutex
	afterGet     func(ctx context.Context)
	beforeUpdate func(ctx context.Context) error
	getErr       error
	updates      int
}

func (r *hookedRepo) GetByTenantAndProduct(ctx context.Context, tenantID, productID string) (*entitlement.Entitlement, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	e, err := r.Repository.GetByTenantAndProduct(ctx, tenantID, productID)
	r.mu.Lock()
	hook := r.afterGet
	r.afterGet = nil
	r.mu.Unlock()
	if hook != nil {
		hook(ctx)
	}
	return e, err
}

func (r *hookedRepo) Update(ctx context.Context, e *entitlement.Entitlement) error {
	r.mu.Lock()
	r.updates++
	hook := r.beforeUpdate
	r.beforeUpdate = nil
	r.mu.Unlock()
	if hook != nil {
		if err := hook(ctx); err != nil {
			return err
		}
	}
	return r.Repository.Update(ctx, e)
}

// hook swaps the fixture's entitlement repository for a hookedRepo and
// rebuilds the use cases on top of it. The returned fixture copy keeps the
// use cases built on the plain repository, for the competing writer.
func (f *fixture) hook(t *testing.T) (*hookedRepo, *fixture) {
	t.Helper()
	plain := *f
	repo := &hookedRepo{Repository: f.entRepo}
	f.entRepo = repo
	f.build()
	return repo, &plain
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *recordingPublisher) Publish(e events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) PublishAll(es []events.DomainEvent) error {
	for _, e := range es {
		_ = p.Publish(e)
	}
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.GetEventType())
	}
	return out
}

// scriptedGenerator hands out links from a queue before falling back to a real generator.
type scriptedGenerator struct {
	services.CredentialGenerator
	links []string
}

func (g *scriptedGenerator) NewLink(seed string) (string, error) {
	if len(g.links) > 0 {
		link := g.links[0]
		g.links = g.links[1:]
		return link, nil
	}
	return g.CredentialGenerator.NewLink(seed)
}

type fixture struct {
	db           *gorm.DB
	entRepo      entitlement.Repository
	tenantRepo   tenant.Repository
	productRepo  product.Repository
	cache        *memoryVerifyCache
	publisher    *recordingPublisher
	generator    services.CredentialGenerator
	clock        time.Time
	grant        *GrantEntitlementUseCase
	revoke       *RevokeEntitlementUseCase
	regenerate   *RegenerateEntitlementUseCase
	record       *RecordAccessUseCase
	verify       *VerifyEntitlementUseCase
	lookup       *LookupAccessUseCase
	list         *ListEntitlementsUseCase
	tenantID     string
	organization string
}

func testAccessURL(link string) string { return "http://localhost:8080/products/access/" + link }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	f := &fixture{
		db:          gdb,
		entRepo:     repository.NewEntitlementRepository(gdb, log),
		tenantRepo:  repository.NewTenantRepository(gdb, log),
		productRepo: repository.NewProductRepository(gdb, log),
		cache:       newMemoryVerifyCache(),
		publisher:   &recordingPublisher{},
		generator:   services.NewCredentialGenerator(services.CredentialOptions{}),
		clock:       time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
	}
	f.build()

	ctx := context.Background()
	tn, err := tenant.NewTenant("Acme Corp", "ops@acme.test", "org_acme")
	require.NoError(t, err)
	require.NoError(t, f.tenantRepo.Create(ctx, tn))
	f.tenantID = tn.ID()
	f.organization = tn.OrganizationID()

	for _, id := range []string{"crm", "hr", "analytics"} {
		p, err := product.NewProduct(id, id+" product", "")
		require.NoError(t, err)
		require.NoError(t, f.productRepo.Create(ctx, p))
	}
	return f
}

func (f *fixture) build() {
	log := logger.NewNopLogger()
	settings := Settings{StaleGrantWindow: 30 * 24 * time.Hour, LinkRetries: 5, OptimisticRetries: 3}
	txm := db.NewTransactionManager(f.db)
	now := func() time.Time { return f.clock }

	f.grant = NewGrantEntitlementUseCase(f.entRepo, f.tenantRepo, f.productRepo, txm, f.generator, f.cache, f.publisher, testAccessURL, settings, log)
	f.grant.now = now
	f.revoke = NewRevokeEntitlementUseCase(f.entRepo, f.tenantRepo, f.productRepo, txm, f.cache, f.publisher, testAccessURL, settings, log)
	f.revoke.now = now
	f.regenerate = NewRegenerateEntitlementUseCase(f.entRepo, f.tenantRepo, txm, f.generator, f.cache, f.publisher, testAccessURL, settings, log)
	f.regenerate.now = now
	f.record = NewRecordAccessUseCase(f.entRepo, f.tenantRepo, f.productRepo, settings, log)
	f.record.now = now
	f.verify = NewVerifyEntitlementUseCase(f.entRepo, f.productRepo, f.cache, f.record, log)
	f.lookup = NewLookupAccessUseCase(f.entRepo, f.productRepo, log)
	f.list = NewListEntitlementsUseCase(f.entRepo, f.tenantRepo, f.productRepo, testAccessURL, log)
}

func (f *fixture) counters(t *testing.T, productID string) product.Counters {
	t.Helper()
	p, err := f.productRepo.GetByID(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Counters()
}

func (f *fixture) legacy(t *testing.T) tenant.LegacyAccess {
	t.Helper()
	tn, err := f.tenantRepo.GetByID(context.Background(), f.tenantID)
	require.NoError(t, err)
	return tn.LegacyAccess()
}
