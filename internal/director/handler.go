package director

import (
	"net/http"

	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for director operations
type Handler struct {
	service Service
}

// NewHandler creates a new director handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateDirector handles director creation
func (h *Handler) CreateDirector(c *gin.Context) {
	var req DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	director, err := h.service.CreateDirector(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, director)
}

// UpdateDirector handles director update; the id comes in the body
func (h *Handler) UpdateDirector(c *gin.Context) {
	var req DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	director, err := h.service.UpdateDirector(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, director)
}

// GetAllDirectors returns every director
func (h *Handler) GetAllDirectors(c *gin.Context) {
	directors, err := h.service.GetAllDirectors()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, directors)
}

// GetDirector returns a single director by id
func (h *Handler) GetDirector(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid director ID"})
		return
	}

	director, err := h.service.GetDirector(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, director)
}

// DeleteDirector removes a director
func (h *Handler) DeleteDirector(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid director ID"})
		return
	}

	if err := h.service.DeleteDirector(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Director deleted successfully"})
}

// RegisterRoutes registers all director routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	directors := router.Group("/directors")
	{
		directors.POST("", h.CreateDirector)
		directors.PUT("", h.UpdateDirector)
		directors.GET("", h.GetAllDirectors)
		directors.GET("/:id", h.GetDirector)
		directors.DELETE("/:id", h.DeleteDirector)
	}
}
