package kafka

import "time"

// RecordCancelledEvent is emitted when a tire record is cancelled
type RecordCancelledEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	RecordID     uint      `json:"record_id"`
	Counterparty string    `json:"counterparty"`
	Reason       string    `json:"reason"`
	ActorID      uint      `json:"actor_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// PurchaseCompletedEvent is emitted when a purchase is saved against an item
type PurchaseCompletedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	PurchaseID uint      `json:"purchase_id"`
	ItemID     uint      `json:"item_id"`
	Quantity   int       `json:"quantity"`
	TotalValue float64   `json:"total_value"`
	UserID     uint      `json:"user_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// NotificationRequestedEvent is emitted when a customer notification message
// is composed for a tire record
type NotificationRequestedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	RecordID     uint      `json:"record_id"`
	Counterparty string    `json:"counterparty"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeRecordCancelled       = "inventory.record.cancelled"
	EventTypePurchaseCompleted     = "sales.purchase.completed"
	EventTypeNotificationRequested = "inventory.notification.requested"
)

// Kafka topics
const (
	TopicRecordCancelled       = "record-cancelled"
	TopicPurchaseCompleted     = "purchase-completed"
	TopicNotificationRequested = "notification-requested"
)
