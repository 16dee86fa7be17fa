package repository

import (
	"context"
	"errors"

	"delivery_admin/internal/models"

	"gorm.io/gorm"
)

type PartnerRepository interface {
	GetAll(ctx context.Context) ([]models.Partner, error)
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	Create(ctx context.Context, partner *models.Partner) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type partnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) GetAll(ctx context.Context) ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.WithContext(ctx).Find(&partners).Error
	return partners, err
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.WithContext(ctx).First(&partner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *partnerRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&models.Partner{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *partnerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Partner{}, "id = ?", id).Error
}

func (r *partnerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Partner{}).Count(&count).Error
	return count, err
}
