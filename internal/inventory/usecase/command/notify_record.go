package command

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/kafka"
	"github.com/mestakip/tiretrack/pkg/authz"
	"github.com/mestakip/tiretrack/pkg/logger"
)

type NotifyRecordCommand struct {
	ID    uint
	Scope authz.Scope
}

// NotifyResult carries the prepared WhatsApp link and message text
type NotifyResult struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// NotifyRecordHandler prepares a WhatsApp status message for a record
type NotifyRecordHandler struct {
	records   domain.RecordRepository
	publisher *kafka.Publisher
}

func NewNotifyRecordHandler(records domain.RecordRepository, publisher *kafka.Publisher) *NotifyRecordHandler {
	return &NotifyRecordHandler{records: records, publisher: publisher}
}

// Handle builds the message and wa.me link. Composing the message marks the
// record as notified even though the operator still has to send it.
func (h *NotifyRecordHandler) Handle(ctx context.Context, cmd NotifyRecordCommand) (*NotifyResult, error) {
	record, err := h.records.FindByID(cmd.Scope, cmd.ID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(
		"Hello %s, your order (%d x %s %s) is now %s as of %s.",
		record.Counterparty,
		record.Quantity,
		record.Brand,
		record.Product,
		statusText(record.Status),
		record.UpdatedAt.Format("2006-01-02"),
	)

	record.NotificationSent = true
	if err := h.records.Update(record); err != nil {
		return nil, err
	}

	if err := h.publisher.PublishNotificationRequested(ctx, kafka.NotificationRequestedEvent{
		RecordID:     record.ID,
		Counterparty: record.Counterparty,
		Message:      message,
		Timestamp:    time.Now(),
	}); err != nil {
		logger.Warn(ctx).Err(err).Uint("record_id", record.ID).Msg("failed to publish notification event")
	}

	return &NotifyResult{
		Message: message,
		URL:     "https://wa.me/?text=" + url.QueryEscape(message),
	}, nil
}

func statusText(status string) string {
	switch status {
	case domain.StatusEnRoute:
		return "en route"
	case domain.StatusInProgress:
		return "in progress"
	case domain.StatusDelivered:
		return "delivered"
	case domain.StatusReviewed:
		return "reviewed"
	case domain.StatusCancelled:
		return "cancelled"
	}
	return status
}
