package services

import (
	"context"
	"errors"
	"time"

	"delivery_admin/internal/models"
	"delivery_admin/internal/repository"
)

type BranchService interface {
	Branches(ctx context.Context) ([]models.Branch, error)
	Branch(ctx context.Context, id string) (*models.Branch, error)
	AddBranch(ctx context.Context, branch *models.Branch) error
	UpdateBranch(ctx context.Context, id string, fields map[string]interface{}) error
}

type branchService struct {
	branchRepo repository.BranchRepository
}

func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

func (s *branchService) Branches(ctx context.Context) ([]models.Branch, error) {
	return s.branchRepo.GetAll(ctx)
}

func (s *branchService) Branch(ctx context.Context, id string) (*models.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, ErrNotFound
	}
	return branch, nil
}

// AddBranch writes the branch under its caller-supplied id,
// overwriting any existing row with that id.
func (s *branchService) AddBranch(ctx context.Context, branch *models.Branch) error {
	if branch.ID == "" {
		return errors.New("branch id is required")
	}
	branch.UpdatedAt = time.Now()
	return s.branchRepo.Set(ctx, branch)
}

// UpdateBranch patches the given fields and refreshes the timestamp.
func (s *branchService) UpdateBranch(ctx context.Context, id string, fields map[string]interface{}) error {
	if id == "" {
		return errors.New("branch id is required")
	}
	cleaned := cleanFields(fields)
	cleaned["updated_at"] = time.Now()
	return s.branchRepo.Update(ctx, id, cleaned)
}
