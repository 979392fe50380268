package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lumenworks/backoffice/internal/application/notification/dto"
	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/quotation"
	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/infrastructure/repository"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type mockMailer struct {
	sendFn func(to, subject, body string) error
	sent   []string
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to+": "+subject)
	if m.sendFn != nil {
		return m.sendFn(to, subject, body)
	}
	return nil
}

type mockBroker struct {
	publishFn func(routingKey string) error
	keys      []string
}

func (m *mockBroker) Publish(_ context.Context, routingKey, _ string, _ any) error {
	m.keys = append(m.keys, routingKey)
	if m.publishFn != nil {
		return m.publishFn(routingKey)
	}
	return nil
}

type env struct {
	repo     notification.Repository
	tenant   *tenant.Tenant
	mailer   *mockMailer
	broker   *mockBroker
	dispatch *DispatchNotificationUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	ctx := context.Background()
	tenantRepo := repository.NewTenantRepository(gdb, log)
	productRepo := repository.NewProductRepository(gdb, log)

	tn, err := tenant.NewTenant("Acme Corp", "ops@acme.test", "")
	require.NoError(t, err)
	require.NoError(t, tenantRepo.Create(ctx, tn))
	p, err := product.NewProduct("crm", "Acme CRM", "")
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(ctx, p))

	e := &env{
		repo:   repository.NewNotificationRepository(gdb, log),
		tenant: tn,
		mailer: &mockMailer{},
		broker: &mockBroker{},
	}
	e.dispatch = NewDispatchNotificationUseCase(e.repo, tenantRepo, productRepo, e.mailer, e.broker, log)
	return e
}

func (e *env) inbox(t *testing.T) []*dto.NotificationResponse {
	t.Helper()
	res, err := NewListNotificationsUseCase(e.repo, logger.NewNopLogger()).Execute(context.Background(), dto.ListNotificationsRequest{TenantID: e.tenant.ID()})
	require.NoError(t, err)
	return res.Items
}

func grantedEvent(tenantID string) entitlement.ChangedEvent {
	return entitlement.ChangedEvent{
		BaseEvent:  events.NewBaseEvent(tenantID+"/crm", entitlement.EventTypeGranted, time.Now()),
		TenantID:   tenantID,
		ProductID:  "crm",
		AccessLink: "acme-corp-0a1b2c3d",
		AccessURL:  "http://localhost/products/access/acme-corp-0a1b2c3d",
	}
}

func TestDispatch_EntitlementGranted(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.dispatch.Handle(context.Background(), grantedEvent(e.tenant.ID())))

	items := e.inbox(t)
	require.Len(t, items, 1)
	assert.Equal(t, "Access granted to Acme CRM", items[0].Title)
	assert.Equal(t, string(notification.SeveritySuccess), items[0].Severity)
	assert.Contains(t, items[0].Message, "acme-corp-0a1b2c3d")
	assert.Equal(t, []string{"ops@acme.test: Access granted to Acme CRM"}, e.mailer.sent)
	assert.Equal(t, []string{entitlement.EventTypeGranted}, e.broker.keys)
}

func TestDispatch_QuotationSeverity(t *testing.T) {
	price := int64(150000)
	tests := []struct {
		to       vo.QuotationStatus
		severity notification.Severity
		contains string
	}{
		{vo.StatusApproved, notification.SeveritySuccess, "1,500.00 USD"},
		{vo.StatusRejected, notification.SeverityError, "Reason: out of scope"},
		{vo.StatusCompleted, notification.SeveritySuccess, "complete"},
	}
	for _, tt := range tests {
		t.Run(string(tt.to), func(t *testing.T) {
			e := newEnv(t)
			ev := quotation.StatusChangedEvent{
				BaseEvent:       events.NewBaseEvent("qt_1", quotation.EventTypeStatusChanged, time.Now()),
				QuotationID:     "qt_1",
				TenantID:        e.tenant.ID(),
				ServiceName:     "Data migration",
				From:            vo.StatusPending,
				To:              tt.to,
				FinalPrice:      &price,
				Currency:        "USD",
				RejectionReason: "out of scope",
			}
			require.NoError(t, e.dispatch.Handle(context.Background(), ev))

			items := e.inbox(t)
			require.Len(t, items, 1)
			assert.Equal(t, string(tt.severity), items[0].Severity)
			assert.Contains(t, items[0].Message, tt.contains)
			assert.Equal(t, "qt_1", items[0].RelatedID)
		})
	}
}

func TestDispatch_DeliveryFailuresAreSwallowed(t *testing.T) {
	e := newEnv(t)
	e.mailer.sendFn = func(string, string, string) error { return fmt.Errorf("smtp down") }
	e.broker.publishFn = func(string) error { return fmt.Errorf("broker down") }

	assert.NoError(t, e.dispatch.Handle(context.Background(), grantedEvent(e.tenant.ID())))
	assert.Len(t, e.inbox(t), 1)
}

func TestDispatch_UnknownTenantStillForwards(t *testing.T) {
	e := newEnv(t)

	assert.NoError(t, e.dispatch.Handle(context.Background(), grantedEvent("tnt_missing")))
	assert.Empty(t, e.mailer.sent)
	assert.Len(t, e.broker.keys, 1)
}

func TestMarkNotificationAsRead(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.dispatch.Handle(ctx, grantedEvent(e.tenant.ID())))
	id := e.inbox(t)[0].ID

	uc := NewMarkNotificationAsReadUseCase(e.repo, logger.NewNopLogger())

	err := uc.Execute(ctx, id, "tnt_other")
	assert.True(t, errors.IsForbiddenError(err))

	err = uc.Execute(ctx, "ntf_missing", e.tenant.ID())
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, uc.Execute(ctx, id, e.tenant.ID()))
	require.NoError(t, uc.Execute(ctx, id, e.tenant.ID()))

	count, err := NewGetUnreadCountUseCase(e.repo, logger.NewNopLogger()).Execute(ctx, e.tenant.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Count)
	assert.True(t, e.inbox(t)[0].Read)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,500.00 USD", formatMoney(150000, "USD"))
	assert.Equal(t, "1,500 JPY", formatMoney(1500, "JPY"))
}
