package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"delivery_admin/internal/models"
	"delivery_admin/internal/repository"
	"delivery_admin/pkg/objectstore"

	"github.com/google/uuid"
)

// ImageUpload is one file received from the console's product or
// category forms.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type CatalogService interface {
	// Categories
	CategoriesForBranch(ctx context.Context, branchID string) ([]models.Category, error)
	AddCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteCategory(ctx context.Context, id string) error
	SearchCategories(ctx context.Context, branchID, searchText string) ([]models.Category, error)

	// Subcategories
	Subcategories(ctx context.Context) ([]models.Subcategory, error)
	SubcategoriesForCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error)
	AddSubcategory(ctx context.Context, subcategory *models.Subcategory) error
	UpdateSubcategory(ctx context.Context, id string, fields map[string]interface{}) error
	RemoveSubcategory(ctx context.Context, id string) error
	SearchSubcategories(ctx context.Context, searchText string) ([]models.Subcategory, error)

	// Products
	Products(ctx context.Context) ([]models.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	CreateProduct(ctx context.Context, branchID string, product *models.Product, mainImage ImageUpload, featureImages []ImageUpload) error
	UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteProduct(ctx context.Context, id string) error
}

type catalogService struct {
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
	productRepo     repository.ProductRepository
	store           *objectstore.Client
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	productRepo repository.ProductRepository,
	store *objectstore.Client,
) CatalogService {
	return &catalogService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		productRepo:     productRepo,
		store:           store,
	}
}

// CategoriesForBranch fetches all categories and keeps those whose
// branch membership list contains the branch. Membership lives in a
// serialized array column, so the predicate runs in memory.
func (s *catalogService) CategoriesForBranch(ctx context.Context, branchID string) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterCategoriesByBranch(categories, branchID), nil
}

func filterCategoriesByBranch(categories []models.Category, branchID string) []models.Category {
	filtered := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		for _, b := range c.BranchIDs {
			if b == branchID {
				filtered = append(filtered, c)
				break
			}
		}
	}
	return filtered
}

func (s *catalogService) AddCategory(ctx context.Context, category *models.Category) error {
	if category.Title == "" {
		return errors.New("category title is required")
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	category.CreatedAt = time.Now()
	return s.categoryRepo.Create(ctx, category)
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, fields map[string]interface{}) error {
	if id == "" {
		return errors.New("category id is required")
	}
	return s.categoryRepo.Update(ctx, id, cleanFields(fields))
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

// SearchCategories filters the branch's categories by title substring
// or tag match, case-insensitive on the title.
func (s *catalogService) SearchCategories(ctx context.Context, branchID, searchText string) ([]models.Category, error) {
	categories, err := s.CategoriesForBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return SearchCategoryList(categories, searchText), nil
}

func SearchCategoryList(categories []models.Category, searchText string) []models.Category {
	if searchText == "" {
		return categories
	}
	lower := strings.ToLower(searchText)
	matched := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c.Title), lower) || strings.Contains(c.Tag, searchText) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (s *catalogService) Subcategories(ctx context.Context) ([]models.Subcategory, error) {
	return s.subcategoryRepo.GetAll(ctx)
}

func (s *catalogService) SubcategoriesForCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	if categoryID == "" {
		return []models.Subcategory{}, nil
	}
	return s.subcategoryRepo.GetByCategory(ctx, categoryID)
}

func (s *catalogService) AddSubcategory(ctx context.Context, subcategory *models.Subcategory) error {
	if subcategory.Title == "" {
		return errors.New("subcategory title is required")
	}
	if subcategory.ID == "" {
		subcategory.ID = uuid.NewString()
	}
	subcategory.CreatedAt = time.Now()
	return s.subcategoryRepo.Create(ctx, subcategory)
}

func (s *catalogService) UpdateSubcategory(ctx context.Context, id string, fields map[string]interface{}) error {
	if id == "" {
		return errors.New("subcategory id is required")
	}
	return s.subcategoryRepo.Update(ctx, id, cleanFields(fields))
}

// RemoveSubcategory hides the subcategory instead of deleting the row;
// products may still reference it.
func (s *catalogService) RemoveSubcategory(ctx context.Context, id string) error {
	return s.subcategoryRepo.Update(ctx, id, map[string]interface{}{"show": false})
}

func (s *catalogService) SearchSubcategories(ctx context.Context, searchText string) ([]models.Subcategory, error) {
	subcategories, err := s.subcategoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return SearchSubcategoryList(subcategories, searchText), nil
}

func SearchSubcategoryList(subcategories []models.Subcategory, searchText string) []models.Subcategory {
	if searchText == "" {
		return subcategories
	}
	lower := strings.ToLower(searchText)
	matched := make([]models.Subcategory, 0, len(subcategories))
	for _, sc := range subcategories {
		if strings.Contains(strings.ToLower(sc.Title), lower) ||
			strings.Contains(strings.ToLower(sc.CategoryName), lower) {
			matched = append(matched, sc)
		}
	}
	return matched
}

func (s *catalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx)
}

func (s *catalogService) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.productRepo.GetByCategory(ctx, category)
}

// CreateProduct uploads the main and feature images, then writes the
// product under a generated 9-digit id the way the mobile apps expect.
func (s *catalogService) CreateProduct(ctx context.Context, branchID string, product *models.Product, mainImage ImageUpload, featureImages []ImageUpload) error {
	if branchID == "" {
		return errors.New("branch id is required")
	}
	if product.Title == "" {
		return errors.New("product title is required")
	}

	mainURL, err := s.uploadProductImage(branchID, mainImage)
	if err != nil {
		return fmt.Errorf("failed to upload product image: %w", err)
	}

	featureURLs := make([]string, 0, len(featureImages))
	for _, img := range featureImages {
		url, err := s.uploadProductImage(branchID, img)
		if err != nil {
			return fmt.Errorf("failed to upload feature image: %w", err)
		}
		featureURLs = append(featureURLs, url)
	}

	product.ID = generateProductID()
	product.Branch = branchID
	product.Image = mainURL
	product.FeatureImages = featureURLs
	product.CreatedAt = time.Now()
	return s.productRepo.Create(ctx, product)
}

func (s *catalogService) uploadProductImage(branchID string, img ImageUpload) (string, error) {
	path := fmt.Sprintf("product/%s/%d_%s", branchID, time.Now().UnixMilli(), img.Filename)
	return s.store.Upload(path, img.ContentType, img.Data)
}

// generateProductID returns a random 9-digit numeric id.
func generateProductID() string {
	return fmt.Sprintf("%d", 100000000+rand.Intn(900000000))
}

// UpdateProduct patches the given fields, coercing price, stock and
// discount to their stored string form and dropping the fields the
// store owns (id, timestamp).
func (s *catalogService) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) error {
	if id == "" {
		return errors.New("product id is required")
	}
	cleaned := cleanFields(fields)
	for _, key := range []string{"price", "stock", "discount"} {
		if v, ok := cleaned[key]; ok {
			cleaned[key] = fmt.Sprintf("%v", v)
		}
	}
	delete(cleaned, "id")
	delete(cleaned, "created_at")
	return s.productRepo.Update(ctx, id, cleaned)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// cleanFields drops nil values so a partial update never clears a
// column the caller did not send.
func cleanFields(fields map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}
