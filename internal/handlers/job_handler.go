package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// Create is the POST /jobs endpoint. The job always lands on the caller's
// own company.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Create(auth.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.JobService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	job, err := h.JobService.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
