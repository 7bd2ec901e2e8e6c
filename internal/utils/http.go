package utils

import (
	"net/http"
	"strconv"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/gin-gonic/gin"
)

// ParseID parses an integer path parameter
func ParseID(c *gin.Context, param string) (int, error) {
	return strconv.Atoi(c.Param(param))
}

// RespondError maps the error taxonomy to HTTP status codes:
// NotFoundError converts to 404, ValidationError to 400, everything else to 500
func RespondError(c *gin.Context, err error) {
	switch {
	case errs.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errs.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
