package recommendation

import (
	"net/http"
	"strconv"

	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for recommendation and ranking operations
type Handler struct {
	service Service
}

// NewHandler creates a new recommendation handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetRecommendations returns films the most similar user liked that the
// target user has not
func (h *Handler) GetRecommendations(c *gin.Context) {
	userID, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	films, err := h.service.Recommendations(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

// GetCommonFilms returns films both users liked, most popular first
func (h *Handler) GetCommonFilms(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	friendID, err := strconv.Atoi(c.Query("friendId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid friend ID"})
		return
	}

	films, err := h.service.CommonFilms(userID, friendID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

// GetCommonFriends returns the intersection of two users' friend-sets
func (h *Handler) GetCommonFriends(c *gin.Context) {
	userID, err := utils.ParseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	otherID, err := utils.ParseID(c, "otherId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	friends, err := h.service.CommonFriends(userID, otherID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, friends)
}

// GetPopularFilms ranks films by like count with optional genre/year filters
func (h *Handler) GetPopularFilms(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count"})
		return
	}

	genreID := 0
	if raw := c.Query("genreId"); raw != "" {
		genreID, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
			return
		}
	}

	year := 0
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
	}

	films, err := h.service.PopularFilms(count, genreID, year)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

// GetFilmsByDirector returns a director's filmography sorted by likes or year
func (h *Handler) GetFilmsByDirector(c *gin.Context) {
	directorID, err := utils.ParseID(c, "directorId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid director ID"})
		return
	}

	films, err := h.service.FilmsByDirector(directorID, c.DefaultQuery("sortBy", SortByLikes))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

// SearchFilms matches films by title and/or director name substring
func (h *Handler) SearchFilms(c *gin.Context) {
	query := c.Query("query")
	by := c.DefaultQuery("by", "title,director")

	films, err := h.service.SearchFilms(query, by)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, films)
}

// RegisterRoutes registers ranking routes under /films and /users
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	films := router.Group("/films")
	{
		films.GET("/popular", h.GetPopularFilms)
		films.GET("/common", h.GetCommonFilms)
		films.GET("/director/:directorId", h.GetFilmsByDirector)
		films.GET("/search", h.SearchFilms)
	}

	users := router.Group("/users")
	{
		users.GET("/:id/recommendations", h.GetRecommendations)
		users.GET("/:id/friends/common/:otherId", h.GetCommonFriends)
	}
}
