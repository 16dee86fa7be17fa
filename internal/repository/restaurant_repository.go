package repository

import (
	"context"
	"errors"

	"delivery_admin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository interface {
	GetByBranch(ctx context.Context, branchID string) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	Set(ctx context.Context, restaurant *models.Restaurant) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Count(ctx context.Context) (int64, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) GetByBranch(ctx context.Context, branchID string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.WithContext(ctx).Where("branch_id = ?", branchID).Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

// Set creates or overwrites the restaurant under its custom id.
func (r *restaurantRepository) Set(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(restaurant).Error
}

func (r *restaurantRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Restaurant{}).Count(&count).Error
	return count, err
}
