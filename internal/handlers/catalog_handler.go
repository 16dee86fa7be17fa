package handlers

import (
	"io"
	"net/http"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/models"
	"delivery_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// branchScope is the branch the signed-in admin manages.
func branchScope(c *gin.Context) string {
	return c.GetString("admin_id")
}

// Categories

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var (
		categories []models.Category
		err        error
	)
	if search := c.Query("search"); search != "" {
		categories, err = h.catalogService.SearchCategories(c.Request.Context(), branchScope(c), search)
	} else {
		categories, err = h.catalogService.CategoriesForBranch(c.Request.Context(), branchScope(c))
	}
	if err != nil {
		logger.Error("failed to load categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogHandler) AddCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogService.AddCategory(c.Request.Context(), &category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogService.UpdateCategory(c.Request.Context(), c.Param("id"), fields); err != nil {
		logger.Error("failed to update category", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "updated"})
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to delete category", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "deleted"})
}

// Subcategories

func (h *CatalogHandler) ListSubcategories(c *gin.Context) {
	var (
		subcategories []models.Subcategory
		err           error
	)
	switch {
	case c.Query("search") != "":
		subcategories, err = h.catalogService.SearchSubcategories(c.Request.Context(), c.Query("search"))
	case c.Query("category") != "":
		subcategories, err = h.catalogService.SubcategoriesForCategory(c.Request.Context(), c.Query("category"))
	default:
		subcategories, err = h.catalogService.Subcategories(c.Request.Context())
	}
	if err != nil {
		logger.Error("failed to load subcategories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subcategories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": subcategories})
}

func (h *CatalogHandler) AddSubcategory(c *gin.Context) {
	var subcategory models.Subcategory
	if err := c.ShouldBindJSON(&subcategory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogService.AddSubcategory(c.Request.Context(), &subcategory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

func (h *CatalogHandler) UpdateSubcategory(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogService.UpdateSubcategory(c.Request.Context(), c.Param("id"), fields); err != nil {
		logger.Error("failed to update subcategory", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subcategory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "updated"})
}

func (h *CatalogHandler) RemoveSubcategory(c *gin.Context) {
	if err := h.catalogService.RemoveSubcategory(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to remove subcategory", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove subcategory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "hidden"})
}

// Products

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var (
		products []models.Product
		err      error
	)
	if category := c.Query("category"); category != "" {
		products, err = h.catalogService.ProductsByCategory(c.Request.Context(), category)
	} else {
		products, err = h.catalogService.Products(c.Request.Context())
	}
	if err != nil {
		logger.Error("failed to load products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct accepts multipart form data: the product fields, one
// main image and up to six feature images.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	product := models.Product{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Price:        c.PostForm("price"),
		Stock:        c.PostForm("stock"),
		Discount:     c.PostForm("discount"),
		Category:     c.PostForm("category"),
		Subcategory:  c.PostForm("subcategory"),
		ItemCategory: c.PostForm("itemcategory"),
		Show:         c.PostForm("show") == "true",
		Available:    c.PostForm("available") == "true",
		Latest:       c.PostForm("latest") == "true",
		Sponsored:    c.PostForm("sponsored") == "true",
		Option:       c.PostForm("option") == "true",
	}

	mainImage, err := readFormImage(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Main image is required"})
		return
	}

	var featureImages []services.ImageUpload
	for _, fh := range form.File["feature_images"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feature image"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feature image"})
			return
		}
		featureImages = append(featureImages, services.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	if err := h.catalogService.CreateProduct(c.Request.Context(), branchScope(c), &product, mainImage, featureImages); err != nil {
		logger.Error("failed to create product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), fields); err != nil {
		logger.Error("failed to update product", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "updated"})
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to delete product", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "deleted"})
}

func readFormImage(c *gin.Context, field string) (services.ImageUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return services.ImageUpload{}, err
	}
	f, err := fh.Open()
	if err != nil {
		return services.ImageUpload{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return services.ImageUpload{}, err
	}
	return services.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
