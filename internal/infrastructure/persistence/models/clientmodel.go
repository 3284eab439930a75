package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymdesk/internal/shared/constants"
)

// ClientModel is the persistence shape of a client. It has no status column;
// status is derived from EndDate when read.
type ClientModel struct {
	ID         uint            `gorm:"primarykey"`
	SID        string          `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: cl_xxx"`
	FullName   string          `gorm:"not null;size:100;index:idx_client_name"`
	Email      string          `gorm:"not null;size:255;index:idx_client_email"`
	Phone      string          `gorm:"not null;size:20"`
	Age        int             `gorm:"not null"`
	Gender     string          `gorm:"not null;size:10"`
	Address    string          `gorm:"size:500"`
	Notes      string          `gorm:"type:text"`
	PlanType   string          `gorm:"not null;size:20;index:idx_client_plan"`
	PlanAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartDate  datatypes.Date  `gorm:"not null"`
	EndDate    datatypes.Date  `gorm:"not null;index:idx_client_end_date"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (ClientModel) TableName() string {
	return constants.TableClients
}
