package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fitleague/fitleague/internal/application"
	"github.com/fitleague/fitleague/pkg/response"
)

type LeaderboardHandler struct {
	Svc    *application.LeaderboardService
	Logger *logrus.Logger
}

func NewLeaderboardHandler(svc *application.LeaderboardService, logger *logrus.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{Svc: svc, Logger: logger}
}

func (h *LeaderboardHandler) Get(c *gin.Context) {
	lb, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("leaderboard compute failed")
		}
		response.Fail(c, http.StatusInternalServerError, "failed to build leaderboard", nil)
		return
	}
	response.OK(c, http.StatusOK, lb, "leaderboard", gin.H{
		"userCount": len(lb.Users),
		"teamCount": len(lb.Teams),
	})
}

// Refresh forces an immediate recompute, bypassing the cache. Useful for
// admin tooling and tests.
func (h *LeaderboardHandler) Refresh(c *gin.Context) {
	lb, err := h.Svc.Refresh(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("leaderboard refresh failed")
		}
		response.Fail(c, http.StatusInternalServerError, "failed to refresh leaderboard", nil)
		return
	}
	response.OK(c, http.StatusOK, lb, "leaderboard refreshed", nil)
}
