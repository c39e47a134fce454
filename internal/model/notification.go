package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind 通知類型
type NotificationKind string

const (
	NotificationRegistrationConfirmed NotificationKind = "registration_confirmed"
	NotificationPaymentReceived       NotificationKind = "payment_received"
	NotificationEventCancelled        NotificationKind = "event_cancelled"
)

// Notification 投遞到通知隊列的訊息，由 worker 消費後寄信
type Notification struct {
	ID         uuid.UUID        `json:"id"`
	Kind       NotificationKind `json:"kind"`
	UserID     uuid.UUID        `json:"user_id"`
	EventID    uuid.UUID        `json:"event_id"`
	EventTitle string           `json:"event_title"`
	CreatedAt  time.Time        `json:"created_at"`
}
