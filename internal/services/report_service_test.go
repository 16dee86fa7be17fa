package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"delivery_admin/internal/models"

	"github.com/xuri/excelize/v2"
)

func TestExportDayOrders(t *testing.T) {
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo(
		models.Order{
			ID: "o1", Zone: "A", OrderPlaceDate: day.Add(9 * time.Hour),
			Status: "Delivered", TotalPrice: "100", DeliveryCharge: "10",
		},
		models.Order{
			ID: "o2", Zone: "A", OrderPlaceDate: day.Add(11 * time.Hour),
			Status: "Pending", TotalPrice: "40", DeliveryCharge: "abc",
		},
	)
	svc := NewReportService(repo)

	data, filename, err := svc.ExportDayOrders(context.Background(), "A", day.Add(13*time.Hour), "", "", "")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if filename != "orders_2025-08-15.xlsx" {
		t.Errorf("filename = %q, want orders_2025-08-15.xlsx", filename)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a valid workbook: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows("Orders")
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	// header + two orders + totals row
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if rows[0][0] != "Order ID" {
		t.Errorf("header[0] = %q, want Order ID", rows[0][0])
	}
	if rows[3][0] != "Totals" {
		t.Errorf("totals row label = %q, want Totals", rows[3][0])
	}
	// Malformed delivery charge contributes zero to the totals column.
	if rows[3][8] != "10" {
		t.Errorf("total delivery charge cell = %q, want 10", rows[3][8])
	}
}

func TestExportDayOrdersStatusFilter(t *testing.T) {
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo(
		models.Order{ID: "o1", Zone: "A", OrderPlaceDate: day.Add(9 * time.Hour), Status: "Delivered", TotalPrice: "100"},
		models.Order{ID: "o2", Zone: "A", OrderPlaceDate: day.Add(11 * time.Hour), Status: "Pending", TotalPrice: "40"},
	)
	svc := NewReportService(repo)

	data, _, err := svc.ExportDayOrders(context.Background(), "A", day, "Delivered", "", "")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid workbook: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows("Orders")
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	// header + one delivered order + totals row
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[1][0] != "o1" {
		t.Errorf("row[1] order id = %q, want o1", rows[1][0])
	}
}
