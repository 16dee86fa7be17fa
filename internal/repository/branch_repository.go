package repository

import (
	"context"
	"errors"

	"delivery_admin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BranchRepository interface {
	GetAll(ctx context.Context) ([]models.Branch, error)
	GetByID(ctx context.Context, id string) (*models.Branch, error)
	Set(ctx context.Context, branch *models.Branch) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateBannerImages(ctx context.Context, id string, images []string) error
	Count(ctx context.Context) (int64, error)
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) GetAll(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.WithContext(ctx).Find(&branches).Error
	return branches, err
}

func (r *branchRepository) GetByID(ctx context.Context, id string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.WithContext(ctx).First(&branch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

// Set creates or overwrites the whole branch row under its caller-supplied id.
func (r *branchRepository) Set(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(branch).Error
}

func (r *branchRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&models.Branch{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *branchRepository) UpdateBannerImages(ctx context.Context, id string, images []string) error {
	return r.db.WithContext(ctx).
		Model(&models.Branch{}).
		Where("id = ?", id).
		Select("banner_images").
		Updates(&models.Branch{BannerImages: images}).Error
}

func (r *branchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Branch{}).Count(&count).Error
	return count, err
}
