package handlers

import (
	"net/http"

	"delivery_admin/internal/logger"
	"delivery_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all app users, optionally filtered by phone substring.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.SearchUsersByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		logger.Error("failed to load users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) ToggleActive(c *gin.Context) {
	var req struct {
		CurrentlyActive bool `json:"currently_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userService.ToggleActive(c.Request.Context(), c.Param("id"), req.CurrentlyActive); err != nil {
		logger.Error("failed to toggle user", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "updated"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to delete user", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "deleted"})
}
