package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatusBucket struct {
	Count   int             `json:"count"`
	Amount  decimal.Decimal `json:"amount"`
	Pending decimal.Decimal `json:"pending"`
}

type PaymentBreakdown struct {
	Paid    StatusBucket `json:"paid"`
	Partial StatusBucket `json:"partial"`
	Unpaid  StatusBucket `json:"unpaid"`
}

type RegistrationTrend struct {
	Today    int `json:"today"`
	ThisWeek int `json:"thisWeek"`
}

type Stats struct {
	Total             int               `json:"total"`
	Paid              int               `json:"paid"`
	Partial           int               `json:"partial"`
	Unpaid            int               `json:"unpaid"`
	TotalRevenue      decimal.Decimal   `json:"totalRevenue"`
	ExpectedRevenue   decimal.Decimal   `json:"expectedRevenue"`
	PendingRevenue    decimal.Decimal   `json:"pendingRevenue"`
	AveragePayment    decimal.Decimal   `json:"averagePayment"`
	AverageTotal      decimal.Decimal   `json:"averageTotal"`
	PaidPercentage    float64           `json:"paidPercentage"`
	CollectionRate    float64           `json:"collectionRate"`
	PaymentBreakdown  PaymentBreakdown  `json:"paymentBreakdown"`
	RegistrationTrend RegistrationTrend `json:"registrationTrend"`
	LastUpdate        time.Time         `json:"lastUpdate"`
}

// ComputeStats aggregates the dashboard figures. now anchors the trend windows;
// the week starts on Monday.
func ComputeStats(participants []Participant, now time.Time) Stats {
	s := Stats{
		TotalRevenue:    decimal.Zero,
		ExpectedRevenue: decimal.Zero,
		LastUpdate:      now,
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekday := (int(now.Weekday()) + 6) % 7
	startOfWeek := startOfDay.AddDate(0, 0, -weekday)

	for _, p := range participants {
		s.Total++
		s.TotalRevenue = s.TotalRevenue.Add(p.PaidAmount)
		s.ExpectedRevenue = s.ExpectedRevenue.Add(p.TotalAmount)

		var bucket *StatusBucket
		switch p.PaymentStatus {
		case PaymentPaid:
			s.Paid++
			bucket = &s.PaymentBreakdown.Paid
		case PaymentPartial:
			s.Partial++
			bucket = &s.PaymentBreakdown.Partial
		default:
			s.Unpaid++
			bucket = &s.PaymentBreakdown.Unpaid
		}
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(p.PaidAmount)
		bucket.Pending = bucket.Pending.Add(p.PendingAmount())

		registered := p.RegisteredAt.In(now.Location())
		if !registered.Before(startOfDay) {
			s.RegistrationTrend.Today++
		}
		if !registered.Before(startOfWeek) {
			s.RegistrationTrend.ThisWeek++
		}
	}

	s.PendingRevenue = s.ExpectedRevenue.Sub(s.TotalRevenue)
	if s.PendingRevenue.IsNegative() {
		s.PendingRevenue = decimal.Zero
	}

	if s.Total > 0 {
		n := decimal.NewFromInt(int64(s.Total))
		s.AveragePayment = s.TotalRevenue.Div(n).Round(2)
		s.AverageTotal = s.ExpectedRevenue.Div(n).Round(2)
		s.PaidPercentage = float64(s.Paid) / float64(s.Total) * 100
	}
	if s.ExpectedRevenue.IsPositive() {
		s.CollectionRate, _ = s.TotalRevenue.Div(s.ExpectedRevenue).Mul(decimal.NewFromInt(100)).Float64()
	}

	return s
}
