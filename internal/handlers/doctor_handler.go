package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tabibi-api/internal/store"
)

// ListDoctors returns doctors matching ?q= on name, email or specialization.
// Without q every doctor is returned.
func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Directory.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondInternal(c, err, msgSearchFailed)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.Directory.Doctor(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, msgDoctorNotFound)
		return
	}
	if err != nil {
		respondInternal(c, err, msgFetchFailed)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
