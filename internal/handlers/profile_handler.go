package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tabibi-api/internal/middleware"
	"github.com/harentsoaR/tabibi-api/internal/models"
	"github.com/harentsoaR/tabibi-api/internal/store"
	"github.com/harentsoaR/tabibi-api/internal/utils"
)

type UpdateProfileRequest struct {
	Name     string           `json:"name" binding:"required"`
	Password string           `json:"password" binding:"omitempty,min=5"`
	UserType string           `json:"userType" binding:"required,oneof=doctor normal"`
	Location *locationRequest `json:"location"`

	Specialization string `json:"specialization" binding:"required_if=UserType doctor"`
	Address        string `json:"address" binding:"required_if=UserType doctor"`
	WorkingHours   string `json:"workingHours" binding:"required_if=UserType doctor"`
	Phone          string `json:"phone" binding:"required_if=UserType doctor"`
}

func currentUserID(c *gin.Context) (string, bool) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
		return "", false
	}
	return claims.UserID, true
}

// GetProfile returns the caller's account with its doctor profile.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.Store.UserByID(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		respondInternal(c, err, msgFetchFailed)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the caller's account. Doctors get their profile
// created or updated; other users lose any profile they had.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()

	upd := store.AccountUpdate{
		Name:     strings.TrimSpace(req.Name),
		UserType: req.UserType,
		Location: req.Location.model(),
		Profile: models.ProfileFields{
			Specialization: req.Specialization,
			Address:        req.Address,
			WorkingHours:   req.WorkingHours,
			Phone:          req.Phone,
		},
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			respondInternal(c, err, msgUpdateFailed)
			return
		}
		upd.PasswordHash = hash
	}

	if err := h.Store.UpdateAccount(ctx, userID, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		respondInternal(c, err, msgUpdateFailed)
		return
	}

	h.Directory.Invalidate(ctx)
	c.JSON(http.StatusOK, gin.H{"message": msgUpdated})
}

// DeleteProfile removes the caller's account and profile.
func (h *Handler) DeleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		respondInternal(c, err, msgDeleteFailed)
		return
	}

	h.Directory.Invalidate(c.Request.Context())
	h.Log.Info().Str("user_id", userID).Msg("account deleted")
	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}
