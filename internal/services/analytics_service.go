package services

import (
	"context"
	"time"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/redis"
	"delivery_admin/internal/repository"
)

// DashboardStats are the entity counts shown on the console landing
// screen.
type DashboardStats struct {
	UserCount        int64 `json:"user_count"`
	ProductCount     int64 `json:"product_count"`
	CategoryCount    int64 `json:"category_count"`
	SubcategoryCount int64 `json:"subcategory_count"`
	RestaurantCount  int64 `json:"restaurant_count"`
	PartnerCount     int64 `json:"partner_count"`
	BranchCount      int64 `json:"branch_count"`
	OrderCount       int64 `json:"order_count"`
}

type AnalyticsService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	MonthlyOrderTotals(ctx context.Context, start, end time.Time) ([]DailyTotal, error)
}

type analyticsService struct {
	orderRepo       repository.OrderRepository
	userRepo        repository.UserRepository
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
	restaurantRepo  repository.RestaurantRepository
	partnerRepo     repository.PartnerRepository
	branchRepo      repository.BranchRepository
	cache           *redis.Client
	cacheTTL        time.Duration
}

func NewAnalyticsService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	restaurantRepo repository.RestaurantRepository,
	partnerRepo repository.PartnerRepository,
	branchRepo repository.BranchRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) AnalyticsService {
	return &analyticsService{
		orderRepo:       orderRepo,
		userRepo:        userRepo,
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		restaurantRepo:  restaurantRepo,
		partnerRepo:     partnerRepo,
		branchRepo:      branchRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

const dashboardStatsKey = "dashboard"

// DashboardStats counts every collection, with a short-lived redis
// cache in front since the landing screen refetches aggressively.
func (s *analyticsService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		var cached DashboardStats
		if err := s.cache.GetStats(dashboardStatsKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}
	counts := []struct {
		dest  *int64
		count func(context.Context) (int64, error)
	}{
		{&stats.UserCount, s.userRepo.Count},
		{&stats.ProductCount, s.productRepo.Count},
		{&stats.CategoryCount, s.categoryRepo.Count},
		{&stats.SubcategoryCount, s.subcategoryRepo.Count},
		{&stats.RestaurantCount, s.restaurantRepo.Count},
		{&stats.PartnerCount, s.partnerRepo.Count},
		{&stats.BranchCount, s.branchRepo.Count},
		{&stats.OrderCount, s.orderRepo.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}

	if s.cache != nil {
		if err := s.cache.SetStats(dashboardStatsKey, stats, s.cacheTTL); err != nil {
			logger.Warn("failed to cache dashboard stats", "error", err)
		}
	}
	return stats, nil
}

// MonthlyOrderTotals is the loose dashboard variant of the chart
// series: every order in the inclusive range regardless of zone or
// status, bucketed by calendar day.
func (s *analyticsService) MonthlyOrderTotals(ctx context.Context, start, end time.Time) ([]DailyTotal, error) {
	orders, err := s.orderRepo.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return BucketDailyTotals(orders), nil
}
