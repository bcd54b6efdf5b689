package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitleague/fitleague/internal/container"
	handlers "github.com/fitleague/fitleague/internal/interface/http"
	"github.com/fitleague/fitleague/internal/interface/middleware"
)

// UserModule wires user CRUD, profile media uploads and search.
// Routes are registered under the given RouterGroup (usually /api/v1).

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)       // 60 writes/min per IP
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil) // uploads are heavier
	searchLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	users := rg.Group("/users")
	{
		users.POST("", writeLimiter, m.Handler.Create)
		users.GET("", m.Handler.List)
		users.GET("/search", searchLimiter, m.Handler.Search)
		users.GET("/:id", m.Handler.Get)
		users.PUT("/:id", writeLimiter, m.Handler.Update)
		users.DELETE("/:id", writeLimiter, m.Handler.Delete)
		users.POST("/:id/avatar", uploadLimiter, m.Handler.UploadAvatar)
		users.POST("/:id/banner", uploadLimiter, m.Handler.UploadBanner)
	}
}
