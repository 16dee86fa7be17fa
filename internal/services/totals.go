package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"delivery_admin/internal/models"
)

// ChargeTotals carries the five running sums computed over an order
// sequence. Field names follow the console's totals panel.
type ChargeTotals struct {
	TotalDeliveryCharge float64 `json:"total_delivery_charge"`
	TotalTax            float64 `json:"total_tax"`
	TotalPrice          float64 `json:"total_price"`
	TotalPacking        float64 `json:"total_packing"`
	TotalService        float64 `json:"total_service"`
}

// DailyTotal is one calendar-day bucket of summed order prices.
type DailyTotal struct {
	Date       string  `json:"date"`
	TotalPrice float64 `json:"total_price"`
}

// parseAmount converts a stored decimal string to float64. A missing or
// malformed value contributes zero; this is deliberate policy, not a
// fallback: a bad record must never abort the whole aggregation.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// SumCharges accumulates the five charge sums in a single pass. The
// result depends only on the multiset of inputs, so re-running it on
// the same sequence in any order yields identical totals.
func SumCharges(orders []models.Order) ChargeTotals {
	var t ChargeTotals
	for _, o := range orders {
		t.TotalDeliveryCharge += parseAmount(o.DeliveryCharge)
		t.TotalTax += parseAmount(o.Tax)
		t.TotalPrice += parseAmount(o.TotalPrice)
		t.TotalPacking += parseAmount(o.Packing)
		t.TotalService += parseAmount(o.Service)
	}
	return t
}

// BucketDailyTotals groups orders by the date portion of their
// placement timestamp and sums their total price per day. Orders with a
// zero timestamp or a missing/unparseable price are skipped. Only days
// with at least one contributing order appear in the result, sorted
// ascending; lexical order on the ISO date key is chronological order.
func BucketDailyTotals(orders []models.Order) []DailyTotal {
	buckets := make(map[string]float64)
	for _, o := range orders {
		if o.OrderPlaceDate.IsZero() || o.TotalPrice == "" {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(o.TotalPrice), 64)
		if err != nil {
			continue
		}
		day := o.OrderPlaceDate.Format("2006-01-02")
		buckets[day] += price
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DailyTotal, 0, len(days))
	for _, day := range days {
		result = append(result, DailyTotal{Date: day, TotalPrice: buckets[day]})
	}
	return result
}

// DayWindow returns the half-open [start, end) interval covering the
// calendar day of t; an order placed exactly at midnight belongs to
// that day, not the one before.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
