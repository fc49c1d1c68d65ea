package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/agrofono/checkout/pkg/types"
)

// Purchase is a one-off consultation purchase. Its ID doubles as the
// external_reference attached to the provider payment, which is how the
// payment webhook joins back to this record.
type Purchase struct {
	ID       string               `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Email    string               `gorm:"column:email;type:varchar(255)" json:"email"`
	Nombre   string               `gorm:"column:nombre;type:varchar(255)" json:"nombre"`
	Telefono string               `gorm:"column:telefono;type:varchar(64)" json:"telefono"`
	DNI      string               `gorm:"column:dni;type:varchar(64);not null" json:"dni"`
	Price    string               `gorm:"column:price;type:varchar(64);not null" json:"price"`
	Status   types.PurchaseStatus `gorm:"column:status;type:varchar(64);not null" json:"status"`
	// PaymentDate is set once, on the first confirmed completion.
	PaymentDate *time.Time `gorm:"column:payment_date;default:null" json:"payment_date"`
	// PayerEmail comes from the provider payment record and may be absent.
	PayerEmail *string        `gorm:"column:payer_email;type:varchar(255);default:null" json:"payer_email"`
	Extra      datatypes.JSON `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (Purchase) TableName() string {
	return "consultas"
}

func (p *Purchase) Completed() bool {
	return p != nil && p.Status == types.PurchaseStatusCompleted
}
