package dto

import (
	"time"

	"gymdesk/internal/domain/client"
	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/mapper"
)

// Money is rendered as a fixed two-decimal string so clients never see
// float rounding.
const moneyPlaces = 2

type ClientDTO struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
	NotesHTML     string    `json:"notes_html"`
	PlanType      string    `json:"plan_type"`
	PlanAmount    string    `json:"plan_amount"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Status        string    `json:"status"`
	DaysRemaining int       `json:"days_remaining"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FacetCountsDTO keys follow the filter values the UI sends back.
type FacetCountsDTO struct {
	All       int `json:"all"`
	Active    int `json:"Active"`
	Expired   int `json:"Expired"`
	Monthly   int `json:"Monthly"`
	Quarterly int `json:"Quarterly"`
	Yearly    int `json:"Yearly"`
}

type ClientListDTO struct {
	Clients []ClientDTO    `json:"clients"`
	Counts  FacetCountsDTO `json:"counts"`
	Total   int            `json:"total"`
}

type PaymentDTO struct {
	ID          string                 `json:"id"`
	ClientID    string                 `json:"client_id"`
	Kind        string                 `json:"kind"`
	PlanType    string                 `json:"plan_type"`
	Amount      string                 `json:"amount"`
	Method      string                 `json:"payment_method"`
	PeriodStart *string                `json:"period_start,omitempty"`
	PeriodEnd   *string                `json:"period_end,omitempty"`
	PaidAt      time.Time              `json:"paid_at"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// RenewalDTO is returned by POST /clients/:sid/renew.
type RenewalDTO struct {
	Client  ClientDTO  `json:"client"`
	Payment PaymentDTO `json:"payment"`
}

// ToClientDTO converts a snapshot. notesHTML is rendered by the caller.
func ToClientDTO(s membership.Snapshot, notesHTML string) ClientDTO {
	c := s.Client
	return ClientDTO{
		ID:            c.SID(),
		FullName:      c.FullName(),
		Email:         c.Email(),
		Phone:         c.Phone(),
		Age:           c.Age(),
		Gender:        c.Gender().String(),
		Address:       c.Address(),
		Notes:         c.Notes(),
		NotesHTML:     notesHTML,
		PlanType:      c.PlanType().String(),
		PlanAmount:    c.PlanAmount().StringFixed(moneyPlaces),
		StartDate:     biztime.FormatDate(c.StartDate()),
		EndDate:       biztime.FormatDate(c.EndDate()),
		Status:        s.Status.String(),
		DaysRemaining: s.DaysRemaining,
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func ToFacetCountsDTO(c membership.FacetCounts) FacetCountsDTO {
	return FacetCountsDTO{
		All:       c.All,
		Active:    c.Active,
		Expired:   c.Expired,
		Monthly:   c.Monthly,
		Quarterly: c.Quarterly,
		Yearly:    c.Yearly,
	}
}

// ToPaymentDTO needs the owning client's SID because payments reference
// clients by internal ID.
func ToPaymentDTO(p *client.Payment, clientSID string) PaymentDTO {
	out := PaymentDTO{
		ID:       p.SID(),
		ClientID: clientSID,
		Kind:     string(p.Kind()),
		PlanType: p.PlanType().String(),
		Amount:   p.Amount().StringFixed(moneyPlaces),
		Method:   p.Method().String(),
		PaidAt:   p.PaidAt(),
	}
	if !p.PeriodStart().IsZero() {
		v := biztime.FormatDate(p.PeriodStart())
		out.PeriodStart = &v
	}
	if !p.PeriodEnd().IsZero() {
		v := biztime.FormatDate(p.PeriodEnd())
		out.PeriodEnd = &v
	}
	if len(p.Metadata()) > 0 {
		out.Metadata = p.Metadata()
	}
	return out
}

func ToPaymentDTOs(payments []*client.Payment, clientSID string) []PaymentDTO {
	out := mapper.MapSlice(payments, func(p *client.Payment) PaymentDTO {
		return ToPaymentDTO(p, clientSID)
	})
	if out == nil {
		out = []PaymentDTO{}
	}
	return out
}
