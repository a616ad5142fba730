package handler

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/kipkemoi/tillprint-api/internal/config"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/dto/request"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/dto/response"
	"github.com/kipkemoi/tillprint-api/pkg/utils"
)

// AuthHandler authenticates the configured print station against the single
// credential held in configuration.
type AuthHandler struct {
	station    config.StationConfig
	jwtManager *utils.JWTManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(station config.StationConfig, jwtManager *utils.JWTManager) *AuthHandler {
	return &AuthHandler{station: station, jwtManager: jwtManager}
}

// Login verifies the station credential and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if req.StationID != h.station.ID || h.station.PasswordHash == "" {
		response.Unauthorized(c, "Invalid station credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.station.PasswordHash), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid station credentials")
		return
	}

	token, err := h.jwtManager.GenerateToken(h.station.ID)
	if err != nil {
		response.ErrorWithCode(c, 500, "Failed to issue token")
		return
	}

	response.OK(c, "Station authenticated", gin.H{
		"token":      token,
		"station_id": h.station.ID,
	})
}
