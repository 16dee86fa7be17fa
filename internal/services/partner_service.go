package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"delivery_admin/internal/models"
	"delivery_admin/internal/repository"

	"github.com/google/uuid"
)

type PartnerService interface {
	Partners(ctx context.Context) ([]models.Partner, error)
	AddPartner(ctx context.Context, partner *models.Partner) error
	UpdatePartner(ctx context.Context, id string, fields map[string]interface{}) error
	ToggleActive(ctx context.Context, id string, active bool) error
	DeletePartner(ctx context.Context, id string) error
	SearchPartners(ctx context.Context, searchText string) ([]models.Partner, error)
}

type partnerService struct {
	partnerRepo repository.PartnerRepository
}

func NewPartnerService(partnerRepo repository.PartnerRepository) PartnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) Partners(ctx context.Context) ([]models.Partner, error) {
	return s.partnerRepo.GetAll(ctx)
}

func (s *partnerService) AddPartner(ctx context.Context, partner *models.Partner) error {
	if partner.PartnerID == "" {
		return errors.New("partner id is required")
	}
	if partner.ID == "" {
		partner.ID = uuid.NewString()
	}
	partner.CreatedAt = time.Now()
	return s.partnerRepo.Create(ctx, partner)
}

func (s *partnerService) UpdatePartner(ctx context.Context, id string, fields map[string]interface{}) error {
	if id == "" {
		return errors.New("partner id is required")
	}
	return s.partnerRepo.Update(ctx, id, cleanFields(fields))
}

func (s *partnerService) ToggleActive(ctx context.Context, id string, active bool) error {
	return s.partnerRepo.Update(ctx, id, map[string]interface{}{"active": active})
}

func (s *partnerService) DeletePartner(ctx context.Context, id string) error {
	return s.partnerRepo.Delete(ctx, id)
}

// SearchPartners fetches the whole collection and filters in memory
// over store name, partner id, phone and pincode.
func (s *partnerService) SearchPartners(ctx context.Context, searchText string) ([]models.Partner, error) {
	partners, err := s.partnerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return SearchPartnerList(partners, searchText), nil
}

func SearchPartnerList(partners []models.Partner, searchText string) []models.Partner {
	if searchText == "" {
		return partners
	}
	lower := strings.ToLower(searchText)
	matched := make([]models.Partner, 0, len(partners))
	for _, p := range partners {
		if strings.Contains(strings.ToLower(p.StoreName), lower) ||
			strings.Contains(strings.ToLower(p.PartnerID), lower) ||
			strings.Contains(p.Phone, searchText) ||
			strings.Contains(p.Pincode, searchText) {
			matched = append(matched, p)
		}
	}
	return matched
}
