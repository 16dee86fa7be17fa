package services

import (
	"context"
	"fmt"
	"time"

	"delivery_admin/internal/repository"

	"github.com/xuri/excelize/v2"
)

type ReportService interface {
	ExportDayOrders(ctx context.Context, zone string, day time.Time, status, partnerID, storeID string) ([]byte, string, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
}

func NewReportService(orderRepo repository.OrderRepository) ReportService {
	return &reportService{orderRepo: orderRepo}
}

const reportSheet = "Orders"

// ExportDayOrders builds an .xlsx workbook of the day's filtered
// orders with a totals row at the bottom. Returns the file bytes and a
// suggested filename.
func (s *reportService) ExportDayOrders(ctx context.Context, zone string, day time.Time, status, partnerID, storeID string) ([]byte, string, error) {
	start, end := DayWindow(day)
	orders, err := s.orderRepo.GetByWindow(ctx, zone, start, end)
	if err != nil {
		return nil, "", err
	}
	orders = FilterOrders(orders, status, partnerID, storeID)
	totals := SumCharges(orders)

	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(reportSheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	headers := []string{"Order ID", "Order Number", "Placed At", "Customer", "Store", "Partner", "Status", "Total Price", "Delivery", "Tax", "Packing", "Service"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(reportSheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	for row, o := range orders {
		values := []interface{}{
			o.ID,
			o.OrderNumber,
			o.OrderPlaceDate.Format(time.RFC3339),
			o.CustomerName,
			o.StoreName,
			o.Partner,
			o.Status,
			parseAmount(o.TotalPrice),
			parseAmount(o.DeliveryCharge),
			parseAmount(o.Tax),
			parseAmount(o.Packing),
			parseAmount(o.Service),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := file.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	totalsRow := len(orders) + 2
	totalsValues := map[int]interface{}{
		1:  "Totals",
		8:  totals.TotalPrice,
		9:  totals.TotalDeliveryCharge,
		10: totals.TotalTax,
		11: totals.TotalPacking,
		12: totals.TotalService,
	}
	for col, v := range totalsValues {
		cell, _ := excelize.CoordinatesToCellName(col, totalsRow)
		if err := file.SetCellValue(reportSheet, cell, v); err != nil {
			return nil, "", err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}
	filename := fmt.Sprintf("orders_%s.xlsx", start.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
