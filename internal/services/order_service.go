package services

import (
	"context"
	"errors"
	"time"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/models"
	"delivery_admin/internal/repository"
)

// ErrNotFound marks a missing (or zone-foreign) record; handlers render
// it as "no results" rather than a retrieval fault.
var ErrNotFound = errors.New("not found")

// OrderEventPublisher pushes order status transitions to downstream
// consumers (rider apps, notification workers).
type OrderEventPublisher interface {
	PublishStatusChange(ctx context.Context, orderID, status string) error
}

type OrderService interface {
	OrdersForDay(ctx context.Context, zone string, day time.Time) ([]models.Order, error)
	SearchOrder(ctx context.Context, orderID, zone string) (*models.Order, error)
	OrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	CancelOrder(ctx context.Context, orderID string) error
	TotalsForRange(ctx context.Context, zone string, start, end time.Time) (ChargeTotals, error)
	MonthlyTotals(ctx context.Context, zone string, start, end time.Time) ([]DailyTotal, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	events    OrderEventPublisher
}

func NewOrderService(orderRepo repository.OrderRepository, events OrderEventPublisher) OrderService {
	return &orderService{orderRepo: orderRepo, events: events}
}

// OrdersForDay returns the zone's orders placed on the calendar day of
// the given time, most recent first. No matches is an empty slice.
func (s *orderService) OrdersForDay(ctx context.Context, zone string, day time.Time) ([]models.Order, error) {
	start, end := DayWindow(day)
	return s.orderRepo.GetByWindow(ctx, zone, start, end)
}

// SearchOrder is a point lookup scoped to one zone. An order that
// exists under a different zone is reported as not found so a tenant
// can never see another tenant's order, even by exact id.
func (s *orderService) SearchOrder(ctx context.Context, orderID, zone string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Zone != zone {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *orderService) OrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	return s.orderRepo.GetItems(ctx, orderID)
}

// CancelOrder transitions the order's status to Cancelled and touches
// nothing else. There is no transition guard: cancelling an already
// cancelled or delivered order is accepted and leaves it Cancelled.
func (s *orderService) CancelOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return errors.New("order id is required")
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, string(models.OrderCancelled)); err != nil {
		return err
	}
	if s.events != nil {
		if err := s.events.PublishStatusChange(ctx, orderID, string(models.OrderCancelled)); err != nil {
			logger.Warn("failed to publish order status event", "order_id", orderID, "error", err)
		}
	}
	return nil
}

// TotalsForRange sums the charge fields over the zone's delivered
// orders in the inclusive date range.
func (s *orderService) TotalsForRange(ctx context.Context, zone string, start, end time.Time) (ChargeTotals, error) {
	orders, err := s.orderRepo.GetDeliveredByRange(ctx, zone, start, end)
	if err != nil {
		return ChargeTotals{}, err
	}
	return SumCharges(orders), nil
}

// MonthlyTotals is the chart series: delivered orders of one zone,
// bucketed by calendar day.
func (s *orderService) MonthlyTotals(ctx context.Context, zone string, start, end time.Time) ([]DailyTotal, error) {
	orders, err := s.orderRepo.GetDeliveredByRange(ctx, zone, start, end)
	if err != nil {
		return nil, err
	}
	return BucketDailyTotals(orders), nil
}
