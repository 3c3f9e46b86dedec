package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: applications}
}

// Apply is the POST /applications endpoint. The applicant is always the
// caller's own seeker profile; the response carries the expanded job and
// applicant objects.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	view, err := h.ApplicationService.Apply(auth.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	views, err := h.ApplicationService.ListFor(auth.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
