package dto

import (
	"time"

	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/mapper"
)

// The dashboard payloads use camelCase keys, matching the charting frontend.

type RevenuePointDTO struct {
	Month   string `json:"month"`
	Revenue string `json:"revenue"`
}

type GrowthPointDTO struct {
	Month   string `json:"month"`
	Clients int    `json:"clients"`
}

type PlanShareDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardStatsDTO struct {
	TotalClients         int               `json:"totalClients"`
	ActiveClients        int               `json:"activeClients"`
	ExpiredClients       int               `json:"expiredClients"`
	MonthlyRevenue       string            `json:"monthlyRevenue"`
	RevenueData          []RevenuePointDTO `json:"revenueData"`
	ClientGrowthData     []GrowthPointDTO  `json:"clientGrowthData"`
	PlanDistributionData []PlanShareDTO    `json:"planDistributionData"`
}

type NotificationDTO struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	ClientID      string `json:"clientId"`
	ClientName    string `json:"clientName"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Date          string `json:"date"`
	DaysRemaining int    `json:"daysRemaining"`
}

type NotificationFeedDTO struct {
	Notifications []NotificationDTO `json:"notifications"`
	UnreadCount   int               `json:"unreadCount"`
	GeneratedAt   time.Time         `json:"generatedAt"`
}

func ToDashboardStatsDTO(s membership.DashboardStats) DashboardStatsDTO {
	out := DashboardStatsDTO{
		TotalClients:   s.TotalClients,
		ActiveClients:  s.ActiveClients,
		ExpiredClients: s.ExpiredClients,
		MonthlyRevenue: s.MonthlyRevenue.StringFixed(moneyPlaces),
		RevenueData: mapper.MapSlice(s.RevenueData, func(p membership.RevenuePoint) RevenuePointDTO {
			return RevenuePointDTO{Month: p.Month, Revenue: p.Revenue.StringFixed(moneyPlaces)}
		}),
		ClientGrowthData: mapper.MapSlice(s.ClientGrowthData, func(p membership.GrowthPoint) GrowthPointDTO {
			return GrowthPointDTO{Month: p.Month, Clients: p.Clients}
		}),
		PlanDistributionData: mapper.MapSlice(s.PlanDistributionData, func(p membership.PlanShare) PlanShareDTO {
			return PlanShareDTO{Name: p.Name.String(), Value: p.Value}
		}),
	}
	if out.RevenueData == nil {
		out.RevenueData = []RevenuePointDTO{}
	}
	if out.ClientGrowthData == nil {
		out.ClientGrowthData = []GrowthPointDTO{}
	}
	if out.PlanDistributionData == nil {
		out.PlanDistributionData = []PlanShareDTO{}
	}
	return out
}

func ToNotificationDTO(n membership.Notification) NotificationDTO {
	return NotificationDTO{
		ID:            n.ID,
		Type:          string(n.Type),
		ClientID:      n.ClientSID,
		ClientName:    n.ClientName,
		Title:         n.Title,
		Message:       n.Message,
		Date:          biztime.FormatDate(n.Date),
		DaysRemaining: n.DaysRemaining,
	}
}

func ToNotificationFeedDTO(f membership.NotificationFeed, generatedAt time.Time) NotificationFeedDTO {
	items := mapper.MapSlice(f.Notifications, ToNotificationDTO)
	if items == nil {
		items = []NotificationDTO{}
	}
	return NotificationFeedDTO{
		Notifications: items,
		UnreadCount:   f.UnreadCount,
		GeneratedAt:   generatedAt,
	}
}
