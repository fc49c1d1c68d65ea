package models

import "time"

// Account is the provisioned user created when a subscription is first
// approved. The unique index on SubscriptionID makes provisioning
// idempotent per subscription even if the approval handler races.
type Account struct {
	ID             string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	DNI            string    `gorm:"column:dni;type:varchar(64);not null" json:"dni"`
	Nombre         string    `gorm:"column:nombre;type:varchar(255)" json:"nombre"`
	Telefono       string    `gorm:"column:telefono;type:varchar(64)" json:"telefono"`
	SubscriptionID string    `gorm:"column:subscription_id;type:varchar(64);not null;uniqueIndex" json:"subscription_id"`
	Active         bool      `gorm:"column:active;not null;default:false" json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "usuarios"
}
