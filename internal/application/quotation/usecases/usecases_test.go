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

	"github.com/lumenworks/backoffice/internal/application/quotation/dto"
	"github.com/lumenworks/backoffice/internal/domain/quotation"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/infrastructure/repository"
	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type mockPublisher struct {
	published []events.DomainEvent
}

func (m *mockPublisher) Publish(e events.DomainEvent) error {
	m.published = append(m.published, e)
	return nil
}

func (m *mockPublisher) PublishAll(es []events.DomainEvent) error {
	m.published = append(m.published, es...)
	return nil
}

type suite struct {
	create     *CreateQuotationUseCase
	transition *TransitionQuotationUseCase
	get        *GetQuotationUseCase
	list       *ListQuotationsUseCase
	publisher  *mockPublisher
	tenant     Caller
	operator   Caller
	clock      time.Time
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	repo := repository.NewQuotationRepository(gdb, log)
	tenantRepo := repository.NewTenantRepository(gdb, log)

	tn, err := tenant.NewTenant("Acme Corp", "", "")
	require.NoError(t, err)
	require.NoError(t, tenantRepo.Create(context.Background(), tn))

	s := &suite{
		publisher: &mockPublisher{},
		tenant:    Caller{UserID: "usr_t", Role: authorization.RoleAdmin, TenantID: tn.ID()},
		operator:  Caller{UserID: "usr_op", Role: authorization.RoleSuperAdmin},
		clock:     time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	s.create = NewCreateQuotationUseCase(repo, tenantRepo, log)
	s.transition = NewTransitionQuotationUseCase(repo, s.publisher, log)
	s.transition.now = func() time.Time { return s.clock }
	s.get = NewGetQuotationUseCase(repo, log)
	s.list = NewListQuotationsUseCase(repo, log)
	return s
}

func (s *suite) newQuotation(t *testing.T) *dto.QuotationDTO {
	t.Helper()
	q, err := s.create.Execute(context.Background(), s.tenant, dto.CreateQuotationRequest{ServiceName: "Data migration", RequestedPrice: 100000})
	require.NoError(t, err)
	return q
}

func TestCreateQuotation(t *testing.T) {
	s := newSuite(t)

	q := s.newQuotation(t)
	assert.Equal(t, "pending", q.Status)
	assert.Equal(t, "USD", q.Currency)

	_, err := s.create.Execute(context.Background(), s.operator, dto.CreateQuotationRequest{ServiceName: "x"})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestTransition_ApproveThenComplete(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	q := s.newQuotation(t)

	notes := "priority customer"
	price := int64(150000)
	approved, err := s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "approved", FinalPrice: &price, SuperadminNotes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedDate)
	require.NotNil(t, approved.ProposedDeliveryDate)
	assert.WithinDuration(t, s.clock, *approved.ProposedDeliveryDate, time.Second)
	assert.Equal(t, notes, approved.SuperadminNotes)

	s.clock = s.clock.Add(24 * time.Hour)
	completed, err := s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedDate)

	_, err = s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "completed"})
	assert.True(t, errors.IsInvalidTransitionError(err))

	require.Len(t, s.publisher.published, 2)
	last := s.publisher.published[1].(quotation.StatusChangedEvent)
	assert.Equal(t, "approved", string(last.From))
	assert.Equal(t, "completed", string(last.To))
}

func TestTransition_Guards(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	q := s.newQuotation(t)

	_, err := s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "approved"})
	assert.True(t, errors.IsValidationError(err))

	zero := int64(0)
	_, err = s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "approved", FinalPrice: &zero})
	assert.True(t, errors.IsValidationError(err))

	_, err = s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "rejected", RejectionReason: "  "})
	assert.True(t, errors.IsValidationError(err))

	_, err = s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "completed"})
	assert.True(t, errors.IsInvalidTransitionError(err))

	_, err = s.transition.Execute(ctx, s.tenant, q.ID, dto.UpdateStatusRequest{Status: "rejected", RejectionReason: "no"})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = s.transition.Execute(ctx, s.operator, "qt_missing", dto.UpdateStatusRequest{Status: "rejected", RejectionReason: "no"})
	assert.True(t, errors.IsNotFoundError(err))

	stored, err := s.get.Execute(ctx, s.operator, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)
	assert.Empty(t, s.publisher.published)
}

func TestTransition_RejectedIsTerminal(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	q := s.newQuotation(t)

	rejected, err := s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "rejected", RejectionReason: "out of scope"})
	require.NoError(t, err)
	assert.Equal(t, "out of scope", rejected.RejectionReason)

	price := int64(100)
	_, err = s.transition.Execute(ctx, s.operator, q.ID, dto.UpdateStatusRequest{Status: "approved", FinalPrice: &price})
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestGetAndListScopedToTenant(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	q := s.newQuotation(t)
	s.newQuotation(t)

	other := Caller{Role: authorization.RoleAdmin, TenantID: "tnt_other"}
	_, err := s.get.Execute(ctx, other, q.ID)
	assert.True(t, errors.IsForbiddenError(err))

	own, err := s.list.Execute(ctx, s.tenant, dto.ListQuotationsRequest{TenantID: "tnt_other"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), own.Total)

	none, err := s.list.Execute(ctx, other, dto.ListQuotationsRequest{})
	require.NoError(t, err)
	assert.Empty(t, none.Items)

	all, err := s.list.Execute(ctx, s.operator, dto.ListQuotationsRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	_, err = s.list.Execute(ctx, s.operator, dto.ListQuotationsRequest{Status: "archived"})
	assert.True(t, errors.IsValidationError(err))
}
