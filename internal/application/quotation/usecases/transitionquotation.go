package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenworks/backoffice/internal/application/quotation/dto"
	"github.com/lumenworks/backoffice/internal/domain/quotation"
	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type TransitionQuotationUseCase struct {
	repo      quotation.Repository
	publisher events.EventPublisher
	now       func() time.Time
	logger    logger.Interface
}

func NewTransitionQuotationUseCase(repo quotation.Repository, publisher events.EventPublisher, logger logger.Interface) *TransitionQuotationUseCase {
	return &TransitionQuotationUseCase{repo: repo, publisher: publisher, now: biztime.NowUTC, logger: logger}
}

// Execute moves a quotation to req.Status. Guards run before anything is
// written; the tenant is notified once the update commits.
func (uc *TransitionQuotationUseCase) Execute(ctx context.Context, caller Caller, quotationID string, req dto.UpdateStatusRequest) (*dto.QuotationDTO, error) {
	if !caller.Role.IsOperator() {
		return nil, errors.NewForbiddenError("operator access required")
	}

	q, err := uc.repo.GetByID(ctx, quotationID)
	if err != nil {
		uc.logger.Errorw("failed to get quotation", "quotation_id", quotationID, "error", err)
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quotation not found", quotationID)
	}

	from := q.Status()
	err = q.TransitionTo(quotation.Transition{
		Target:               vo.QuotationStatus(req.Status),
		FinalPrice:           req.FinalPrice,
		RejectionReason:      req.RejectionReason,
		SuperadminNotes:      req.SuperadminNotes,
		ProposedDeliveryDate: req.ProposedDeliveryDate,
	}, uc.now())
	if err != nil {
		uc.logger.Infow("quotation transition refused", "quotation_id", quotationID, "from", from, "to", req.Status, "error", err)
		return nil, toAppError(err)
	}

	if err := uc.repo.Update(ctx, q); err != nil {
		uc.logger.Errorw("failed to update quotation", "quotation_id", quotationID, "error", err)
		return nil, toAppError(err)
	}
	metrics.ObserveQuotationTransition(string(q.Status()))

	event := quotation.NewStatusChangedEvent(q, from, uc.now())
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish quotation event", "quotation_id", quotationID, "error", err)
	}

	uc.logger.Infow("quotation status changed", "quotation_id", quotationID, "from", from, "to", q.Status(), "actor", caller.UserID)
	return dto.ToQuotationDTO(q, true), nil
}
