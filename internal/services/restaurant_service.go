package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"delivery_admin/internal/models"
	"delivery_admin/internal/repository"
)

type RestaurantService interface {
	RestaurantsForBranch(ctx context.Context, branchID string) ([]models.Restaurant, error)
	AddRestaurant(ctx context.Context, restaurant *models.Restaurant) error
	UpdateRestaurant(ctx context.Context, id string, fields map[string]interface{}) error
	ToggleActive(ctx context.Context, id string, active bool) error
	SearchRestaurants(ctx context.Context, branchID, searchText string) ([]models.Restaurant, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepo: restaurantRepo}
}

func (s *restaurantService) RestaurantsForBranch(ctx context.Context, branchID string) ([]models.Restaurant, error) {
	return s.restaurantRepo.GetByBranch(ctx, branchID)
}

// AddRestaurant writes the restaurant under its caller-supplied id.
func (s *restaurantService) AddRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	if restaurant.ID == "" {
		return errors.New("restaurant id is required")
	}
	if restaurant.BranchID == "" {
		return errors.New("branch id is required")
	}
	restaurant.CreatedAt = time.Now()
	return s.restaurantRepo.Set(ctx, restaurant)
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, id string, fields map[string]interface{}) error {
	if id == "" {
		return errors.New("restaurant id is required")
	}
	return s.restaurantRepo.Update(ctx, id, cleanFields(fields))
}

func (s *restaurantService) ToggleActive(ctx context.Context, id string, active bool) error {
	return s.restaurantRepo.Update(ctx, id, map[string]interface{}{"active": active})
}

// SearchRestaurants matches by store-name substring or exact id over
// the branch's restaurants.
func (s *restaurantService) SearchRestaurants(ctx context.Context, branchID, searchText string) ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepo.GetByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return SearchRestaurantList(restaurants, searchText), nil
}

func SearchRestaurantList(restaurants []models.Restaurant, searchText string) []models.Restaurant {
	if searchText == "" {
		return restaurants
	}
	lower := strings.ToLower(searchText)
	matched := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.StoreName), lower) || r.ID == searchText {
			matched = append(matched, r)
		}
	}
	return matched
}
