package handlers

import (
	"github.com/rs/zerolog"

	"github.com/harentsoaR/tabibi-api/internal/middleware"
	"github.com/harentsoaR/tabibi-api/internal/services"
	"github.com/harentsoaR/tabibi-api/internal/store"
	"github.com/harentsoaR/tabibi-api/internal/utils"
)

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	Store     store.Store
	Directory *services.Directory
	JWT       *utils.JWTManager
	Metrics   *middleware.Metrics
	Log       zerolog.Logger
}

func NewHandler(st store.Store, dir *services.Directory, jwt *utils.JWTManager, metrics *middleware.Metrics, log zerolog.Logger) *Handler {
	registerValidations()
	return &Handler{
		Store:     st,
		Directory: dir,
		JWT:       jwt,
		Metrics:   metrics,
		Log:       log,
	}
}
