package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"gymdesk/internal/shared/constants"
)

// PaymentModel records money received. Period dates are set for renewals
// only.
type PaymentModel struct {
	ID          uint            `gorm:"primarykey"`
	SID         string          `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: pay_xxx"`
	ClientID    uint            `gorm:"not null;index:idx_payment_client"`
	Kind        string          `gorm:"not null;size:20"`
	PlanType    string          `gorm:"not null;size:20"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Method      string          `gorm:"not null;size:20"`
	PeriodStart *datatypes.Date
	PeriodEnd   *datatypes.Date
	PaidAt      time.Time `gorm:"not null;index:idx_payment_paid_at"`
	Metadata    datatypes.JSON
	CreatedAt   time.Time
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}
