package review

import (
	"net/http"
	"strconv"

	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for review operations
type Handler struct {
	service Service
}

// NewHandler creates a new review handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateReview handles review creation
func (h *Handler) CreateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.service.CreateReview(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// UpdateReview handles review update; the id comes in the body
func (h *Handler) UpdateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.service.UpdateReview(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review
func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	if err := h.service.DeleteReview(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// GetReview returns a single review by id
func (h *Handler) GetReview(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	review, err := h.service.GetReview(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// GetReviews lists reviews, optionally for a single film, most useful first
func (h *Handler) GetReviews(c *gin.Context) {
	filmID := 0
	if raw := c.Query("filmId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
			return
		}
		filmID = parsed
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count"})
		return
	}

	reviews, err := h.service.GetReviews(filmID, count)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// AddLike marks the review useful for the given user
func (h *Handler) AddLike(c *gin.Context) {
	h.react(c, h.service.AddLike)
}

// AddDislike marks the review useless for the given user
func (h *Handler) AddDislike(c *gin.Context) {
	h.react(c, h.service.AddDislike)
}

// RemoveReaction clears the user's reaction from the review
func (h *Handler) RemoveReaction(c *gin.Context) {
	h.react(c, h.service.RemoveReaction)
}

func (h *Handler) react(c *gin.Context, op func(reviewID, userID int) error) {
	reviewID, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}
	userID, err := utils.ParseID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := op(reviewID, userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// RegisterRoutes registers all review routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.POST("", h.CreateReview)
		reviews.PUT("", h.UpdateReview)
		reviews.GET("", h.GetReviews)
		reviews.GET("/:id", h.GetReview)
		reviews.DELETE("/:id", h.DeleteReview)

		reviews.PUT("/:id/like/:userId", h.AddLike)
		reviews.PUT("/:id/dislike/:userId", h.AddDislike)
		reviews.DELETE("/:id/like/:userId", h.RemoveReaction)
		reviews.DELETE("/:id/dislike/:userId", h.RemoveReaction)
	}
}
