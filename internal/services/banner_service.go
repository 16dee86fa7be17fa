package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/repository"
	"delivery_admin/pkg/objectstore"
)

type BannerService interface {
	BannerImages(ctx context.Context, branchID string) ([]string, error)
	UploadBanner(ctx context.Context, branchID string, image ImageUpload) (string, error)
	DeleteBanner(ctx context.Context, branchID, imageURL string) error
}

type bannerService struct {
	branchRepo repository.BranchRepository
	store      *objectstore.Client
}

func NewBannerService(branchRepo repository.BranchRepository, store *objectstore.Client) BannerService {
	return &bannerService{branchRepo: branchRepo, store: store}
}

// BannerImages returns the branch's banner URL list; a missing branch
// yields an empty list, not an error.
func (s *bannerService) BannerImages(ctx context.Context, branchID string) ([]string, error) {
	if branchID == "" {
		return nil, errors.New("branch id is required")
	}
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return []string{}, nil
	}
	return branch.BannerImages, nil
}

// UploadBanner stores the image and appends its URL to the branch's
// banner list.
func (s *bannerService) UploadBanner(ctx context.Context, branchID string, image ImageUpload) (string, error) {
	if branchID == "" {
		return "", errors.New("branch id is required")
	}

	path := fmt.Sprintf("branch/%s/banners/%d_%s", branchID, time.Now().UnixMilli(), image.Filename)
	url, err := s.store.Upload(path, image.ContentType, image.Data)
	if err != nil {
		return "", fmt.Errorf("failed to upload banner: %w", err)
	}

	banners, err := s.BannerImages(ctx, branchID)
	if err != nil {
		return "", err
	}
	if err := s.branchRepo.UpdateBannerImages(ctx, branchID, append(banners, url)); err != nil {
		return "", err
	}
	return url, nil
}

// DeleteBanner removes the object from storage and the URL from the
// branch's list. A storage miss is logged but does not keep the URL in
// the list.
func (s *bannerService) DeleteBanner(ctx context.Context, branchID, imageURL string) error {
	if branchID == "" {
		return errors.New("branch id is required")
	}

	if path, err := s.store.PathFromURL(imageURL); err == nil {
		if err := s.store.Delete(path); err != nil {
			logger.Warn("failed to delete banner object", "path", path, "error", err)
		}
	}

	banners, err := s.BannerImages(ctx, branchID)
	if err != nil {
		return err
	}
	updated := make([]string, 0, len(banners))
	for _, url := range banners {
		if url != imageURL {
			updated = append(updated, url)
		}
	}
	return s.branchRepo.UpdateBannerImages(ctx, branchID, updated)
}
