package services

import (
	"context"
	"errors"
	"strings"

	"delivery_admin/internal/models"
	"delivery_admin/internal/repository"
)

type UserService interface {
	Users(ctx context.Context) ([]models.AppUser, error)
	SearchUsersByPhone(ctx context.Context, phoneSearch string) ([]models.AppUser, error)
	ToggleActive(ctx context.Context, userID string, currentlyActive bool) error
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Users(ctx context.Context) ([]models.AppUser, error) {
	return s.userRepo.GetAll(ctx)
}

// SearchUsersByPhone fetches all users and filters by phone substring;
// a blank search returns everyone.
func (s *userService) SearchUsersByPhone(ctx context.Context, phoneSearch string) ([]models.AppUser, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return SearchUserListByPhone(users, phoneSearch), nil
}

func SearchUserListByPhone(users []models.AppUser, phoneSearch string) []models.AppUser {
	if phoneSearch == "" {
		return users
	}
	lower := strings.ToLower(phoneSearch)
	matched := make([]models.AppUser, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Phone), lower) {
			matched = append(matched, u)
		}
	}
	return matched
}

// ToggleActive flips the stored not_active flag relative to the state
// the console last rendered.
func (s *userService) ToggleActive(ctx context.Context, userID string, currentlyActive bool) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	return s.userRepo.Update(ctx, userID, map[string]interface{}{"not_active": currentlyActive})
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.Delete(ctx, userID)
}
