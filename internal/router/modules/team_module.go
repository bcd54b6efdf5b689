package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitleague/fitleague/internal/container"
	handlers "github.com/fitleague/fitleague/internal/interface/http"
	"github.com/fitleague/fitleague/internal/interface/middleware"
)

// TeamModule wires two-person team CRUD.

type TeamModule struct {
	Handler *handlers.TeamHandler
}

func NewTeamModule(h *handlers.TeamHandler) *TeamModule {
	return &TeamModule{Handler: h}
}

func (m *TeamModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	teams := rg.Group("/teams")
	{
		teams.POST("", writeLimiter, m.Handler.Create)
		teams.GET("", m.Handler.List)
		teams.GET("/user/:userId", m.Handler.ListByUser)
		teams.GET("/:id", m.Handler.Get)
		teams.PUT("/:id", writeLimiter, m.Handler.Update)
		teams.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
