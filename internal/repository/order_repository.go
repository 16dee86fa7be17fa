package repository

import (
	"context"
	"errors"
	"time"

	"delivery_admin/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	GetByWindow(ctx context.Context, zone string, start, end time.Time) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error)
	GetDeliveredByRange(ctx context.Context, zone string, start, end time.Time) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	Count(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// GetByWindow returns zone-scoped orders placed in [start, end),
// most recent first.
func (r *orderRepository) GetByWindow(ctx context.Context, zone string, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("zone = ? AND order_place_date >= ? AND order_place_date < ?", zone, start, end).
		Order("order_place_date DESC").
		Find(&orders).Error
	return orders, err
}

// GetByID returns (nil, nil) when no order exists with the given id.
func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByDateRange is the loose dashboard variant: inclusive range, no
// zone or status constraint.
func (r *orderRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("order_place_date >= ? AND order_place_date <= ?", start, end).
		Find(&orders).Error
	return orders, err
}

// GetDeliveredByRange is the strict charts variant: inclusive range,
// delivered only, one zone.
func (r *orderRepository) GetDeliveredByRange(ctx context.Context, zone string, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("zone = ? AND status = ? AND order_place_date >= ? AND order_place_date <= ?",
			zone, string(models.OrderDelivered), start, end).
		Order("order_place_date DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus patches the status column only.
func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}
