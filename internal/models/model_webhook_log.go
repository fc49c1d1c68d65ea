package models

import (
	"time"

	"gorm.io/datatypes"
)

type WebhookLogStatus string

const (
	WebhookLogStatusReceived     WebhookLogStatus = "received"
	WebhookLogStatusHandled      WebhookLogStatus = "handled"
	WebhookLogStatusHandleFailed WebhookLogStatus = "handle_failed"
)

// WebhookLog is an audit record of every provider notification received
// and how handling it ended.
type WebhookLog struct {
	ID               string           `gorm:"column:id;type:uuid;primary_key" json:"id"`
	EventType        string           `gorm:"column:event_type;type:varchar(64);not null" json:"event_type"`
	ResourceID       string           `gorm:"column:resource_id;type:varchar(128)" json:"resource_id"`
	TraceID          string           `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	NotificationTime time.Time        `gorm:"column:notification_time" json:"notification_time"`
	Data             datatypes.JSON   `gorm:"column:data;type:jsonb" json:"data"`
	Result           *datatypes.JSON  `gorm:"column:result;type:jsonb" json:"result"`
	Status           WebhookLogStatus `gorm:"column:status;type:varchar(64);not null" json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (WebhookLog) TableName() string { return "webhook_log" }
