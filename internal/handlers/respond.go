package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/apperr"
)

// respondError maps the service error taxonomy to HTTP status codes.
// Anything outside the taxonomy is a 500 with a sanitized message; the
// details only go to the server log.
func respondError(c *gin.Context, err error) {
	var validation *apperr.ValidationError
	if errors.As(err, &validation) {
		if validation.Field != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{validation.Field: validation.Message}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		return
	}

	var permission *apperr.PermissionError
	if errors.As(err, &permission) {
		c.JSON(http.StatusForbidden, gin.H{"error": permission.Message})
		return
	}

	var notFound *apperr.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
}
