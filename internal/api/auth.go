package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

// GatewayKeyHeader carries the shared secret of the chat gateway.
const GatewayKeyHeader = "X-Gateway-Key"

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/token", h.IssueToken)
}

// IssueToken exchanges the gateway key and a chat user id for a bearer token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if err := h.authService.VerifyGatewayKey(c.GetHeader(GatewayKeyHeader)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid gateway key"})
		return
	}

	var req types.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, err := h.authService.GenerateToken(req.UserID, req.Username)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token for user %d: %v", req.UserID, err)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"token_type": "Bearer",
		"expires_in": int(service.TokenTTL.Seconds()),
	})
}
