package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/agrofono/checkout/pkg/types"
)

// Subscription is a recurring-payment record. ID is generated locally;
// SubscriptionID is assigned by the provider and is the join key used to
// resolve provider events, which never carry the local id.
type Subscription struct {
	ID             string                   `gorm:"column:id;type:uuid;primary_key" json:"sub_id"`
	SubscriptionID string                   `gorm:"column:subscription_id;type:varchar(64);not null;uniqueIndex" json:"subscription_id"`
	Email          string                   `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Nombre         string                   `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Telefono       string                   `gorm:"column:telefono;type:varchar(64);not null" json:"telefono"`
	DNI            string                   `gorm:"column:dni;type:varchar(64);not null" json:"dni"`
	Price          string                   `gorm:"column:price;type:varchar(64);not null" json:"price"`
	Status         types.SubscriptionStatus `gorm:"column:status;type:varchar(64);not null" json:"status"`
	Extra          datatypes.JSON           `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) Approved() bool {
	return s != nil && s.Status == types.SubscriptionStatusApproved
}
