package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BLVNQ/buildconnect-server/internal/service"
)

type AuthHandler struct {
	svc *service.AccountSvc
}

func NewAuthHandler(svc *service.AccountSvc) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid, err := h.svc.Register(c.Request.Context(), in.Email, in.Password, in.Name, in.Role)
	if err != nil {
		// capability error messages pass through
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered", "uid": uid})
}
