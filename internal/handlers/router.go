package handlers

import (
	"net/http"
	"path"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/harentsoaR/tabibi-api/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins []string
	RateLimiter *middleware.RateLimiter
	Gatherer    prometheus.Gatherer
	// WebDir, when set, holds the built web client.
	WebDir string
}

// NewRouter wires every route of the API.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(h.Log))
	r.Use(h.Metrics.Handler())
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		}))
	}

	var limited []gin.HandlerFunc
	if cfg.RateLimiter != nil {
		limited = append(limited, middleware.RateLimit(cfg.RateLimiter))
	}
	r.POST("/register", append(limited, h.RegisterUser)...)
	r.POST("/login", append(limited, h.Login)...)

	r.GET("/doctors", h.ListDoctors)
	r.GET("/doctors/:id", h.GetDoctor)

	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware(h.JWT))
	{
		authed.GET("/me", h.Me)
		authed.GET("/profile", h.GetProfile)
		authed.PUT("/profile", h.UpdateProfile)
		authed.DELETE("/profile", h.DeleteProfile)
	}

	r.GET("/healthz", h.Health)
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	if cfg.WebDir != "" {
		r.NoRoute(webClient(cfg.WebDir))
	} else {
		r.NoRoute(func(c *gin.Context) { respondError(c, http.StatusNotFound, msgNotFound) })
	}
	return r
}

// webClient serves the built client and falls back to index.html so its
// client-side routes resolve on reload.
func webClient(dir string) gin.HandlerFunc {
	fsys := gin.Dir(dir, false)
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			respondError(c, http.StatusNotFound, msgNotFound)
			return
		}

		p := path.Clean("/" + c.Request.URL.Path)
		if f, err := fsys.Open(p); err == nil {
			st, statErr := f.Stat()
			_ = f.Close()
			if statErr == nil && !st.IsDir() {
				c.FileFromFS(p, fsys)
				return
			}
		}
		c.FileFromFS("/", fsys)
	}
}
