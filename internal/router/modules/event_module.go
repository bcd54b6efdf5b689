package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitleague/fitleague/internal/container"
	handlers "github.com/fitleague/fitleague/internal/interface/http"
	"github.com/fitleague/fitleague/internal/interface/middleware"
)

// EventModule wires event logging, listing and the eligibility check.
// Logging is rate limited tighter than other writes since clients may retry
// on the conflict response.

type EventModule struct {
	Handler *handlers.EventHandler
}

func NewEventModule(h *handlers.EventHandler) *EventModule {
	return &EventModule{Handler: h}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	logLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	events := rg.Group("/events")
	{
		events.POST("", logLimiter, m.Handler.Create)
		events.GET("", m.Handler.List)
		events.GET("/eligibility", m.Handler.Eligibility)
		events.GET("/user/:userId", m.Handler.ListByUser)
		events.GET("/goal/:goalId", m.Handler.ListByGoal)
		events.GET("/:id", m.Handler.Get)
		events.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
