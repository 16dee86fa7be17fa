package services

import (
	"testing"
	"time"

	"delivery_admin/internal/models"
)

func TestSumChargesMalformedFields(t *testing.T) {
	orders := []models.Order{
		{DeliveryCharge: "50", Packing: "10"},
		{DeliveryCharge: "abc", Packing: "5"},
		{DeliveryCharge: "", Packing: "0"},
	}

	totals := SumCharges(orders)
	if totals.TotalDeliveryCharge != 50.0 {
		t.Errorf("TotalDeliveryCharge = %v, want 50.0", totals.TotalDeliveryCharge)
	}
	if totals.TotalPacking != 15.0 {
		t.Errorf("TotalPacking = %v, want 15.0", totals.TotalPacking)
	}
}

func TestSumChargesAllFields(t *testing.T) {
	orders := []models.Order{
		{TotalPrice: "100.5", DeliveryCharge: "20", Tax: "5", Packing: "3", Service: "2"},
		{TotalPrice: "49.5", DeliveryCharge: "10", Tax: "2.5", Packing: "1", Service: "0.5"},
	}

	totals := SumCharges(orders)
	if totals.TotalPrice != 150.0 {
		t.Errorf("TotalPrice = %v, want 150.0", totals.TotalPrice)
	}
	if totals.TotalDeliveryCharge != 30.0 {
		t.Errorf("TotalDeliveryCharge = %v, want 30.0", totals.TotalDeliveryCharge)
	}
	if totals.TotalTax != 7.5 {
		t.Errorf("TotalTax = %v, want 7.5", totals.TotalTax)
	}
	if totals.TotalPacking != 4.0 {
		t.Errorf("TotalPacking = %v, want 4.0", totals.TotalPacking)
	}
	if totals.TotalService != 2.5 {
		t.Errorf("TotalService = %v, want 2.5", totals.TotalService)
	}
}

func TestSumChargesIdempotent(t *testing.T) {
	orders := []models.Order{
		{TotalPrice: "12.25", DeliveryCharge: "4"},
		{TotalPrice: "7.75", DeliveryCharge: "6"},
	}

	first := SumCharges(orders)
	for i := 0; i < 5; i++ {
		if got := SumCharges(orders); got != first {
			t.Fatalf("run %d: totals %+v differ from first run %+v", i, got, first)
		}
	}

	// Reversed sequence yields the same sums.
	reversed := []models.Order{orders[1], orders[0]}
	if got := SumCharges(reversed); got != first {
		t.Errorf("reversed totals %+v differ from %+v", got, first)
	}
}

func TestSumChargesEmpty(t *testing.T) {
	totals := SumCharges(nil)
	if totals != (ChargeTotals{}) {
		t.Errorf("totals of empty sequence = %+v, want zero value", totals)
	}
}

func TestSumChargesNegativeValues(t *testing.T) {
	// Negative stored amounts are summed as-is, not validated away.
	orders := []models.Order{
		{TotalPrice: "100"},
		{TotalPrice: "-30"},
	}
	totals := SumCharges(orders)
	if totals.TotalPrice != 70.0 {
		t.Errorf("TotalPrice = %v, want 70.0", totals.TotalPrice)
	}
}

func TestBucketDailyTotals(t *testing.T) {
	day1 := time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)
	day1Later := time.Date(2025, 8, 1, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC)

	orders := []models.Order{
		{OrderPlaceDate: day2, TotalPrice: "25"},
		{OrderPlaceDate: day1, TotalPrice: "100"},
		{OrderPlaceDate: day1Later, TotalPrice: "50"},
	}

	result := BucketDailyTotals(orders)
	if len(result) != 2 {
		t.Fatalf("got %d buckets, want 2", len(result))
	}
	if result[0].Date != "2025-08-01" || result[0].TotalPrice != 150.0 {
		t.Errorf("bucket[0] = %+v, want {2025-08-01 150}", result[0])
	}
	if result[1].Date != "2025-08-02" || result[1].TotalPrice != 25.0 {
		t.Errorf("bucket[1] = %+v, want {2025-08-02 25}", result[1])
	}
}

func TestBucketDailyTotalsSkipsBadRecords(t *testing.T) {
	good := time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{OrderPlaceDate: good, TotalPrice: "40"},
		{OrderPlaceDate: good, TotalPrice: "not-a-number"},
		{OrderPlaceDate: good, TotalPrice: ""},
		{TotalPrice: "99"}, // zero timestamp
	}

	result := BucketDailyTotals(orders)
	if len(result) != 1 {
		t.Fatalf("got %d buckets, want 1", len(result))
	}
	if result[0].TotalPrice != 40.0 {
		t.Errorf("bucket total = %v, want 40.0", result[0].TotalPrice)
	}
}

func TestBucketDailyTotalsEmpty(t *testing.T) {
	if got := BucketDailyTotals(nil); len(got) != 0 {
		t.Errorf("expected no buckets, got %v", got)
	}
}

func TestDayWindow(t *testing.T) {
	day := time.Date(2025, 8, 15, 13, 45, 12, 0, time.UTC)
	start, end := DayWindow(day)

	if !start.Equal(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want midnight of the same day", start)
	}
	if !end.Equal(time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want midnight of the next day", end)
	}

	// An order placed exactly at midnight belongs to that day's window,
	// not the previous day's.
	midnight := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	if midnight.Before(end) {
		t.Errorf("next midnight must not fall inside [start, end)")
	}
	if !start.Equal(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)) || midnight.Before(start) {
		t.Errorf("window boundaries wrong: [%v, %v)", start, end)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"50", 50},
		{"12.5", 12.5},
		{" 7 ", 7},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"12,5", 0},
	}
	for _, tt := range tests {
		if got := parseAmount(tt.in); got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
