package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{CompanyService: companies}
}

// Create is the POST /companies endpoint. The company always belongs to the
// caller.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	company, err := h.CompanyService.Create(auth.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) List(c *gin.Context) {
	views, err := h.CompanyService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	view, err := h.CompanyService.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Activate is the PATCH /companies/:id/activate endpoint, admin only.
func (h *CompanyHandler) Activate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	company, err := h.CompanyService.Activate(auth.CurrentUser(c), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
