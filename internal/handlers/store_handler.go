package handlers

import (
	"errors"
	"net/http"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/models"
	"delivery_admin/internal/services"

	"github.com/gin-gonic/gin"
)

// StoreHandler covers branches, restaurants, delivery partners and
// banner assets.
type StoreHandler struct {
	branchService     services.BranchService
	restaurantService services.RestaurantService
	partnerService    services.PartnerService
	bannerService     services.BannerService
}

func NewStoreHandler(
	branchService services.BranchService,
	restaurantService services.RestaurantService,
	partnerService services.PartnerService,
	bannerService services.BannerService,
) *StoreHandler {
	return &StoreHandler{
		branchService:     branchService,
		restaurantService: restaurantService,
		partnerService:    partnerService,
		bannerService:     bannerService,
	}
}

// Branches

func (h *StoreHandler) ListBranches(c *gin.Context) {
	branches, err := h.branchService.Branches(c.Request.Context())
	if err != nil {
		logger.Error("failed to load branches", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load branches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

func (h *StoreHandler) GetBranch(c *gin.Context) {
	branch, err := h.branchService.Branch(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
			return
		}
		logger.Error("failed to load branch", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load branch"})
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *StoreHandler) AddBranch(c *gin.Context) {
	var branch models.Branch
	if err := c.ShouldBindJSON(&branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.branchService.AddBranch(c.Request.Context(), &branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *StoreHandler) UpdateBranch(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.branchService.UpdateBranch(c.Request.Context(), c.Param("id"), fields); err != nil {
		logger.Error("failed to update branch", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branch"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "updated"})
}

// Restaurants

func (h *StoreHandler) ListRestaurants(c *gin.Context) {
	var (
		restaurants []models.Restaurant
		err         error
	)
	if search := c.Query("search"); search != "" {
		restaurants, err = h.restaurantService.SearchRestaurants(c.Request.Context(), branchScope(c), search)
	} else {
		restaurants, err = h.restaurantService.RestaurantsForBranch(c.Request.Context(), branchScope(c))
	}
	if err != nil {
		logger.Error("failed to load restaurants", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

func (h *StoreHandler) AddRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if restaurant.BranchID == "" {
		restaurant.BranchID = branchScope(c)
	}

	if err := h.restaurantService.AddRestaurant(c.Request.Context(), &restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *StoreHandler) UpdateRestaurant(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.restaurantService.UpdateRestaurant(c.Request.Context(), c.Param("id"), fields); err != nil {
		logger.Error("failed to update restaurant", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "updated"})
}

func (h *StoreHandler) ToggleRestaurant(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.restaurantService.ToggleActive(c.Request.Context(), c.Param("id"), req.Active); err != nil {
		logger.Error("failed to toggle restaurant", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "active": req.Active})
}

// Partners

func (h *StoreHandler) ListPartners(c *gin.Context) {
	var (
		partners []models.Partner
		err      error
	)
	if search := c.Query("search"); search != "" {
		partners, err = h.partnerService.SearchPartners(c.Request.Context(), search)
	} else {
		partners, err = h.partnerService.Partners(c.Request.Context())
	}
	if err != nil {
		logger.Error("failed to load partners", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *StoreHandler) AddPartner(c *gin.Context) {
	var partner models.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.partnerService.AddPartner(c.Request.Context(), &partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, partner)
}

func (h *StoreHandler) UpdatePartner(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.partnerService.UpdatePartner(c.Request.Context(), c.Param("id"), fields); err != nil {
		logger.Error("failed to update partner", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "updated"})
}

func (h *StoreHandler) TogglePartner(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.partnerService.ToggleActive(c.Request.Context(), c.Param("id"), req.Active); err != nil {
		logger.Error("failed to toggle partner", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "active": req.Active})
}

func (h *StoreHandler) DeletePartner(c *gin.Context) {
	if err := h.partnerService.DeletePartner(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to delete partner", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "deleted"})
}

// Banners

func (h *StoreHandler) ListBanners(c *gin.Context) {
	banners, err := h.bannerService.BannerImages(c.Request.Context(), branchScope(c))
	if err != nil {
		logger.Error("failed to load banners", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load banners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

func (h *StoreHandler) UploadBanner(c *gin.Context) {
	image, err := readFormImage(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	url, err := h.bannerService.UploadBanner(c.Request.Context(), branchScope(c), image)
	if err != nil {
		logger.Error("failed to upload banner", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload banner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *StoreHandler) DeleteBanner(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Banner URL is required"})
		return
	}

	if err := h.bannerService.DeleteBanner(c.Request.Context(), branchScope(c), req.URL); err != nil {
		logger.Error("failed to delete banner", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
