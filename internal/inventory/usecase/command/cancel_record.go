package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/kafka"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
	"github.com/mestakip/tiretrack/pkg/logger"
)

type CancelRecordCommand struct {
	ID     uint
	Reason string `json:"reason"`
	Scope  authz.Scope
}

// CancelRecordHandler moves a record to CANCELLED and stores the reason
type CancelRecordHandler struct {
	records   domain.RecordRepository
	publisher *kafka.Publisher
}

func NewCancelRecordHandler(records domain.RecordRepository, publisher *kafka.Publisher) *CancelRecordHandler {
	return &CancelRecordHandler{records: records, publisher: publisher}
}

// Handle cancels a record. Only the owner or an admin may cancel, and the
// trimmed reason must carry at least three characters. Cancelling an already
// cancelled record overwrites the stored reason.
func (h *CancelRecordHandler) Handle(ctx context.Context, cmd CancelRecordCommand) (*domain.TireRecord, error) {
	record, err := h.records.FindByID(authz.Scope{Admin: true}, cmd.ID)
	if err != nil {
		return nil, err
	}
	if !cmd.Scope.Visible(record.OwnerID) {
		return nil, fmt.Errorf("record %d: %w", cmd.ID, apperr.ErrPermissionDenied)
	}

	reason := strings.TrimSpace(cmd.Reason)
	if len(reason) < domain.MinCancelReasonLen {
		return nil, fmt.Errorf("cancel reason must be at least %d characters: %w",
			domain.MinCancelReasonLen, apperr.ErrValidation)
	}

	record.Status = domain.StatusCancelled
	record.CancelReason = reason
	if err := h.records.Update(record); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishRecordCancelled(ctx, kafka.RecordCancelledEvent{
		RecordID:     record.ID,
		Counterparty: record.Counterparty,
		Reason:       reason,
		ActorID:      cmd.Scope.UserID,
		Timestamp:    time.Now(),
	}); err != nil {
		logger.Warn(ctx).Err(err).Uint("record_id", record.ID).Msg("failed to publish cancel event")
	}

	return record, nil
}
