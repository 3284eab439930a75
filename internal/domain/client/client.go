package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "gymdesk/internal/domain/client/valueobjects"
)

// Profile is the personal data of a member.
type Profile struct {
	FullName string
	Email    string
	Phone    string
	Age      int
	Gender   vo.Gender
	Address  string
	Notes    string
}

// Membership is the billing period a member has paid for.
type Membership struct {
	PlanType   vo.PlanType
	PlanAmount decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// Client is the member aggregate. Status is not a field; it is always derived
// from the end date by the membership engine.
type Client struct {
	id         uint
	sid        string
	profile    Profile
	membership Membership
	createdAt  time.Time
	updatedAt  time.Time
}

// NewClient validates and builds a client that has not been persisted yet.
func NewClient(sid string, p Profile, m Membership, now time.Time) (*Client, error) {
	if sid == "" {
		return nil, fmt.Errorf("client SID is required")
	}
	p, err := normalizeProfile(p)
	if err != nil {
		return nil, err
	}
	m, err = normalizeMembership(m)
	if err != nil {
		return nil, err
	}

	return &Client{
		sid:        sid,
		profile:    p,
		membership: m,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructClient rebuilds a client from persistence without re-running
// profile validation on historical data.
func ReconstructClient(id uint, sid string, p Profile, m Membership, createdAt, updatedAt time.Time) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if !m.PlanType.IsValid() {
		return nil, fmt.Errorf("client %d: %w", id, vo.ErrInvalidPlanType)
	}
	return &Client{
		id:         id,
		sid:        sid,
		profile:    p,
		membership: m,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Client) ID() uint                    { return c.id }
func (c *Client) SID() string                 { return c.sid }
func (c *Client) Profile() Profile            { return c.profile }
func (c *Client) FullName() string            { return c.profile.FullName }
func (c *Client) Email() string               { return c.profile.Email }
func (c *Client) Phone() string               { return c.profile.Phone }
func (c *Client) Age() int                    { return c.profile.Age }
func (c *Client) Gender() vo.Gender           { return c.profile.Gender }
func (c *Client) Address() string             { return c.profile.Address }
func (c *Client) Notes() string               { return c.profile.Notes }
func (c *Client) Membership() Membership      { return c.membership }
func (c *Client) PlanType() vo.PlanType       { return c.membership.PlanType }
func (c *Client) PlanAmount() decimal.Decimal { return c.membership.PlanAmount }
func (c *Client) StartDate() time.Time        { return c.membership.StartDate }
func (c *Client) EndDate() time.Time          { return c.membership.EndDate }
func (c *Client) CreatedAt() time.Time        { return c.createdAt }
func (c *Client) UpdatedAt() time.Time        { return c.updatedAt }

// SetID is called by the repository after insert.
func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

// Update replaces profile and membership. Nothing changes on error.
func (c *Client) Update(p Profile, m Membership, now time.Time) error {
	p, err := normalizeProfile(p)
	if err != nil {
		return err
	}
	m, err = normalizeMembership(m)
	if err != nil {
		return err
	}
	c.profile = p
	c.membership = m
	c.updatedAt = now
	return nil
}

// WithMembership returns a copy carrying m. The receiver is never modified.
func (c *Client) WithMembership(m Membership, now time.Time) (*Client, error) {
	m, err := normalizeMembership(m)
	if err != nil {
		return nil, err
	}
	next := c.Clone()
	next.membership = m
	next.updatedAt = now
	return next, nil
}

// Clone returns an independent copy.
func (c *Client) Clone() *Client {
	cp := *c
	return &cp
}

func normalizeProfile(p Profile) (Profile, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)

	switch {
	case p.FullName == "":
		return p, NewValidationError("full_name", fmt.Errorf("%w: name is required", ErrInvalidProfile))
	case !strings.Contains(p.Email, "@"):
		return p, NewValidationError("email", fmt.Errorf("%w: email %q", ErrInvalidProfile, p.Email))
	case p.Phone == "":
		return p, NewValidationError("phone", fmt.Errorf("%w: phone is required", ErrInvalidProfile))
	case p.Age <= 0:
		return p, NewValidationError("age", fmt.Errorf("%w: age must be positive", ErrInvalidProfile))
	case !p.Gender.IsValid():
		return p, NewValidationError("gender", fmt.Errorf("%w: %q", vo.ErrInvalidGender, p.Gender))
	}
	return p, nil
}

func normalizeMembership(m Membership) (Membership, error) {
	if !m.PlanType.IsValid() {
		return m, NewValidationError("plan_type", fmt.Errorf("%w: %q", vo.ErrInvalidPlanType, m.PlanType))
	}
	if m.PlanAmount.IsNegative() {
		return m, NewValidationError("plan_amount", ErrNegativeAmount)
	}
	if m.EndDate.Before(m.StartDate) {
		return m, NewValidationError("end_date", ErrInvalidDateRange)
	}
	m.PlanAmount = m.PlanAmount.Round(2)
	return m, nil
}
