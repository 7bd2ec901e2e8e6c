package film

import (
	"net/http"

	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for film operations
type Handler struct {
	service Service
}

// NewHandler creates a new film handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateFilm handles film creation
func (h *Handler) CreateFilm(c *gin.Context) {
	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film, err := h.service.CreateFilm(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, film)
}

// UpdateFilm handles film update; the id comes in the body
func (h *Handler) UpdateFilm(c *gin.Context) {
	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film, err := h.service.UpdateFilm(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, film)
}

// GetAllFilms returns the whole catalog
func (h *Handler) GetAllFilms(c *gin.Context) {
	films, err := h.service.GetAllFilms()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

// GetFilm returns a single film by id
func (h *Handler) GetFilm(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	film, err := h.service.GetFilm(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, film)
}

// DeleteFilm removes a film and its edges
func (h *Handler) DeleteFilm(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	if err := h.service.DeleteFilm(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Film deleted successfully"})
}

// AddLike records that the user liked the film
func (h *Handler) AddLike(c *gin.Context) {
	filmID, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}
	userID, err := utils.ParseID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.service.AddLike(filmID, userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// RemoveLike removes the user's like from the film
func (h *Handler) RemoveLike(c *gin.Context) {
	filmID, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}
	userID, err := utils.ParseID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.service.RemoveLike(filmID, userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// RegisterRoutes registers all film routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	films := router.Group("/films")
	{
		films.POST("", h.CreateFilm)
		films.PUT("", h.UpdateFilm)
		films.GET("", h.GetAllFilms)
		films.GET("/:id", h.GetFilm)
		films.DELETE("/:id", h.DeleteFilm)

		films.PUT("/:id/like/:userId", h.AddLike)
		films.DELETE("/:id/like/:userId", h.RemoveLike)
	}
}
