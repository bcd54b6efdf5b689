package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitleague/fitleague/internal/container"
	handlers "github.com/fitleague/fitleague/internal/interface/http"
	"github.com/fitleague/fitleague/internal/interface/middleware"
)

// LeaderboardModule serves the cached ranked view. Refresh bypasses the cache
// and is limited to private networks.

type LeaderboardModule struct {
	Handler *handlers.LeaderboardHandler
}

func NewLeaderboardModule(h *handlers.LeaderboardHandler) *LeaderboardModule {
	return &LeaderboardModule{Handler: h}
}

func (m *LeaderboardModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/leaderboard", readLimiter, m.Handler.Get)
	rg.POST("/leaderboard/refresh", refreshLimiter, m.Handler.Refresh)
}
