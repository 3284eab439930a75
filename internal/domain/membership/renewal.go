package membership

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
)

// RenewalRequest starts a new billing period.
type RenewalRequest struct {
	PlanType      vo.PlanType
	PlanAmount    decimal.Decimal
	PaymentMethod vo.PaymentMethod
}

// Validate checks the request without touching any client.
func (r RenewalRequest) Validate() error {
	if r.PlanAmount.IsNegative() {
		return client.NewValidationError("plan_amount", client.ErrNegativeAmount)
	}
	if !r.PlanType.IsValid() {
		return client.NewValidationError("plan_type", fmt.Errorf("%w: %q", vo.ErrInvalidPlanType, r.PlanType))
	}
	if !r.PaymentMethod.IsValid() {
		return client.NewValidationError("payment_method", fmt.Errorf("%w: %q", vo.ErrInvalidPaymentMethod, r.PaymentMethod))
	}
	return nil
}

// Renew returns a copy of c whose period starts at now and runs for the
// requested plan's term. c itself is never modified, and nothing is returned
// on error.
func Renew(c *client.Client, req RenewalRequest, now time.Time) (*client.Client, error) {
	if c == nil {
		return nil, client.ErrClientNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.WithMembership(client.Membership{
		PlanType:   req.PlanType,
		PlanAmount: req.PlanAmount,
		StartDate:  now,
		EndDate:    TermEnd(now, req.PlanType),
	}, now)
}
