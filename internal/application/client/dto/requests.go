package dto

import "github.com/shopspring/decimal"

// ClientRequest is the body of POST /clients and PUT /clients/:sid. The end
// date is never accepted; it follows from start date and plan.
type ClientRequest struct {
	FullName   string          `json:"full_name" validate:"required,min=2,max=100"`
	Email      string          `json:"email" validate:"required,email,max=255"`
	Phone      string          `json:"phone" validate:"required,min=6,max=20"`
	Age        int             `json:"age" validate:"required,gte=1,lte=120"`
	Gender     string          `json:"gender" validate:"required"`
	Address    string          `json:"address" validate:"max=500"`
	Notes      string          `json:"notes" validate:"max=5000"`
	PlanType   string          `json:"plan_type" validate:"required"`
	PlanAmount decimal.Decimal `json:"plan_amount" validate:"gte=0"`
	StartDate  string          `json:"start_date" validate:"required,date"`
}

type RenewClientRequest struct {
	PlanType      string          `json:"plan_type" validate:"required"`
	PlanAmount    decimal.Decimal `json:"plan_amount" validate:"gte=0"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
}

// RecordPaymentRequest records money received without touching the
// membership period. PlanType defaults to the client's current plan and
// PaidOn to today.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"gte=0"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	PlanType      string          `json:"plan_type"`
	PaidOn        string          `json:"paid_on" validate:"omitempty,date"`
	Note          string          `json:"note" validate:"max=500"`
}

// ListClientsQuery mirrors the query string of GET /clients.
type ListClientsQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Plan   string `form:"plan"`
}
