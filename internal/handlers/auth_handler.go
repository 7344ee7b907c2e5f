// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harentsoaR/tabibi-api/internal/middleware"
	"github.com/harentsoaR/tabibi-api/internal/models"
	"github.com/harentsoaR/tabibi-api/internal/store"
	"github.com/harentsoaR/tabibi-api/internal/utils"
)

// locationRequest is the map point picked on the client. The client sends
// nulls when nothing was picked; a single coordinate is rejected.
type locationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}

func (l *locationRequest) model() *models.Location {
	if l == nil || l.Latitude == nil || l.Longitude == nil {
		return nil
	}
	return &models.Location{Latitude: *l.Latitude, Longitude: *l.Longitude}
}

type RegisterUserRequest struct {
	Name     string           `json:"name" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=5"`
	UserType string           `json:"userType" binding:"omitempty,oneof=doctor normal"`
	Location *locationRequest `json:"location"`

	// required for doctors only
	Specialization string `json:"specialization" binding:"required_if=UserType doctor"`
	Address        string `json:"address" binding:"required_if=UserType doctor"`
	WorkingHours   string `json:"workingHours" binding:"required_if=UserType doctor"`
	Phone          string `json:"phone" binding:"required_if=UserType doctor"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser creates an account and, for doctors, their profile.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		respondInternal(c, err, msgRegisterFailed)
		return
	}

	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeNormal
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: hashedPassword,
		UserType: userType,
	}
	if loc := req.Location.model(); loc != nil {
		user.Latitude, user.Longitude = &loc.Latitude, &loc.Longitude
	}
	if user.IsDoctor() {
		user.Profile = &models.Profile{
			Specialization: req.Specialization,
			Address:        req.Address,
			WorkingHours:   req.WorkingHours,
			Phone:          req.Phone,
		}
	}

	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(c, http.StatusConflict, msgEmailTaken)
			return
		}
		respondInternal(c, err, msgRegisterFailed)
		return
	}

	if user.IsDoctor() {
		h.Directory.Invalidate(c.Request.Context())
	}
	h.Log.Info().Str("user_id", user.ID).Str("user_type", user.UserType).Msg("user registered")

	c.JSON(http.StatusCreated, gin.H{"message": msgRegistered})
}

// Login checks the credentials and issues an access token. Unknown emails and
// wrong passwords get the same response.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.Store.UserByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		h.loginFailed(c)
		return
	}
	if err != nil {
		h.Metrics.LoginAttempts.WithLabelValues("error").Inc()
		respondInternal(c, err, msgLoginFailed)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		h.loginFailed(c)
		return
	}

	token, err := h.JWT.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		h.Metrics.LoginAttempts.WithLabelValues("error").Inc()
		respondInternal(c, err, msgLoginFailed)
		return
	}

	h.Metrics.LoginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

func (h *Handler) loginFailed(c *gin.Context) {
	h.Metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
	respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
}

// Me returns the identity carried by the caller's token.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    claims.UserID,
		"name":  claims.Name,
		"email": claims.Email,
	})
}
