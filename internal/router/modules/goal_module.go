package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitleague/fitleague/internal/container"
	handlers "github.com/fitleague/fitleague/internal/interface/http"
	"github.com/fitleague/fitleague/internal/interface/middleware"
)

// GoalModule wires goal CRUD and completion.

type GoalModule struct {
	Handler *handlers.GoalHandler
}

func NewGoalModule(h *handlers.GoalHandler) *GoalModule {
	return &GoalModule{Handler: h}
}

func (m *GoalModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	goals := rg.Group("/goals")
	{
		goals.POST("", writeLimiter, m.Handler.Create)
		goals.GET("", m.Handler.List)
		goals.GET("/user/:userId", m.Handler.ListByUser)
		goals.GET("/:id", m.Handler.Get)
		goals.PUT("/:id", writeLimiter, m.Handler.Update)
		goals.POST("/:id/complete", writeLimiter, m.Handler.Complete)
		goals.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
