package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type AccountHandler struct {
	AccountService *services.AccountService
}

func NewAccountHandler(accounts *services.AccountService) *AccountHandler {
	return &AccountHandler{AccountService: accounts}
}

// Register is the POST /accounts endpoint
func (h *AccountHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.AccountService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login is the POST /auth/login endpoint
func (h *AccountHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	token, user, err := h.AccountService.Login(&req)
	if err != nil {
		// Bad credentials come back as 401, not the usual validation 400.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
