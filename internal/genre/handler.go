package genre

import (
	"net/http"

	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for genre lookups
type Handler struct {
	service Service
}

// NewHandler creates a new genre handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetAllGenres returns the genre dictionary
func (h *Handler) GetAllGenres(c *gin.Context) {
	genres, err := h.service.GetAllGenres()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genres)
}

// GetGenre returns a single genre by id
func (h *Handler) GetGenre(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
		return
	}

	genre, err := h.service.GetGenre(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, genre)
}

// RegisterRoutes registers all genre routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	genres := router.Group("/genres")
	{
		genres.GET("", h.GetAllGenres)
		genres.GET("/:id", h.GetGenre)
	}
}
