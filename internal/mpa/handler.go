package mpa

import (
	"net/http"

	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for MPA rating lookups
type Handler struct {
	service Service
}

// NewHandler creates a new MPA rating handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetAllMpa returns the MPA rating dictionary
func (h *Handler) GetAllMpa(c *gin.Context) {
	ratings, err := h.service.GetAllMpa()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// GetMpa returns a single MPA rating by id
func (h *Handler) GetMpa(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid MPA ID"})
		return
	}

	rating, err := h.service.GetMpa(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// RegisterRoutes registers all MPA routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/mpa")
	{
		ratings.GET("", h.GetAllMpa)
		ratings.GET("/:id", h.GetMpa)
	}
}
