package client

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "gymdesk/internal/domain/client/valueobjects"
)

// PaymentKind tells a renewal payment apart from an ad-hoc one.
type PaymentKind string

const (
	PaymentKindRenewal PaymentKind = "renewal"
	PaymentKindManual  PaymentKind = "payment"
)

// Payment is an immutable record of money received from a client.
type Payment struct {
	id          uint
	sid         string
	clientID    uint
	kind        PaymentKind
	planType    vo.PlanType
	amount      decimal.Decimal
	method      vo.PaymentMethod
	periodStart time.Time
	periodEnd   time.Time
	paidAt      time.Time
	metadata    map[string]interface{}
}

// PaymentParams carries the fields of a new payment.
type PaymentParams struct {
	ClientID    uint
	Kind        PaymentKind
	PlanType    vo.PlanType
	Amount      decimal.Decimal
	Method      vo.PaymentMethod
	PeriodStart time.Time
	PeriodEnd   time.Time
	PaidAt      time.Time
	Metadata    map[string]interface{}
}

func NewPayment(sid string, p PaymentParams) (*Payment, error) {
	if sid == "" {
		return nil, fmt.Errorf("payment SID is required")
	}
	if p.ClientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if p.Kind != PaymentKindRenewal && p.Kind != PaymentKindManual {
		return nil, fmt.Errorf("unknown payment kind %q", p.Kind)
	}
	if p.Amount.IsNegative() {
		return nil, NewValidationError("amount", ErrNegativeAmount)
	}
	if !p.Method.IsValid() {
		return nil, NewValidationError("payment_method", fmt.Errorf("%w: %q", vo.ErrInvalidPaymentMethod, p.Method))
	}
	if !p.PlanType.IsValid() {
		return nil, NewValidationError("plan_type", fmt.Errorf("%w: %q", vo.ErrInvalidPlanType, p.PlanType))
	}
	if p.Metadata == nil {
		p.Metadata = make(map[string]interface{})
	}

	return &Payment{
		sid:         sid,
		clientID:    p.ClientID,
		kind:        p.Kind,
		planType:    p.PlanType,
		amount:      p.Amount.Round(2),
		method:      p.Method,
		periodStart: p.PeriodStart,
		periodEnd:   p.PeriodEnd,
		paidAt:      p.PaidAt,
		metadata:    p.Metadata,
	}, nil
}

func ReconstructPayment(id uint, sid string, p PaymentParams) *Payment {
	if p.Metadata == nil {
		p.Metadata = make(map[string]interface{})
	}
	return &Payment{
		id:          id,
		sid:         sid,
		clientID:    p.ClientID,
		kind:        p.Kind,
		planType:    p.PlanType,
		amount:      p.Amount,
		method:      p.Method,
		periodStart: p.PeriodStart,
		periodEnd:   p.PeriodEnd,
		paidAt:      p.PaidAt,
		metadata:    p.Metadata,
	}
}

func (p *Payment) ID() uint                         { return p.id }
func (p *Payment) SID() string                      { return p.sid }
func (p *Payment) ClientID() uint                   { return p.clientID }
func (p *Payment) Kind() PaymentKind                { return p.kind }
func (p *Payment) PlanType() vo.PlanType            { return p.planType }
func (p *Payment) Amount() decimal.Decimal          { return p.amount }
func (p *Payment) Method() vo.PaymentMethod         { return p.method }
func (p *Payment) PeriodStart() time.Time           { return p.periodStart }
func (p *Payment) PeriodEnd() time.Time             { return p.periodEnd }
func (p *Payment) PaidAt() time.Time                { return p.paidAt }
func (p *Payment) Metadata() map[string]interface{} { return p.metadata }

func (p *Payment) SetID(id uint) {
	p.id = id
}
