package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fitleague/fitleague/internal/application"
	"github.com/fitleague/fitleague/internal/domain/entity"
	"github.com/fitleague/fitleague/pkg/response"
	"github.com/fitleague/fitleague/pkg/validation"
)

type GoalHandler struct {
	Svc    *application.GoalService
	Logger *logrus.Logger
}

func NewGoalHandler(svc *application.GoalService, logger *logrus.Logger) *GoalHandler {
	return &GoalHandler{Svc: svc, Logger: logger}
}

type createGoalRequest struct {
	UserID          string `json:"userId" binding:"required,uuid"`
	GoalName        string `json:"goalName" binding:"required,max=150"`
	GoalDescription string `json:"goalDescription" binding:"omitempty,max=1000"`
	GoalType        string `json:"goalType" binding:"required,goaltype"`
}

type updateGoalRequest struct {
	GoalName        string `json:"goalName" binding:"omitempty,max=150"`
	GoalDescription string `json:"goalDescription" binding:"omitempty,max=1000"`
	GoalType        string `json:"goalType" binding:"omitempty,goaltype"`
	IsCompleted     *bool  `json:"isCompleted"`
}

func goalJSON(g *entity.Goal) gin.H {
	return gin.H{
		"id":              g.ID,
		"userId":          g.UserID,
		"goalName":        g.GoalName,
		"goalDescription": g.GoalDescription,
		"goalType":        g.GoalType,
		"isCompleted":     g.IsCompleted,
		"createdAt":       g.CreatedAt,
		"updatedAt":       g.UpdatedAt,
	}
}

func goalListJSON(goals []entity.Goal) []gin.H {
	out := make([]gin.H, 0, len(goals))
	for i := range goals {
		out = append(out, goalJSON(&goals[i]))
	}
	return out
}

func (h *GoalHandler) Create(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	g, err := h.Svc.Create(c.Request.Context(), application.CreateGoalInput{
		UserID:          req.UserID,
		GoalName:        req.GoalName,
		GoalDescription: req.GoalDescription,
		GoalType:        req.GoalType,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrGoalTypeTaken):
			response.Fail(c, http.StatusConflict, "user already has a goal of this type", nil)
		default:
			response.Fail(c, http.StatusInternalServerError, "failed to create goal", nil)
		}
		return
	}
	response.OK(c, http.StatusCreated, goalJSON(g), "goal created", nil)
}

func (h *GoalHandler) List(c *gin.Context) {
	if userID := c.Query("userId"); userID != "" {
		goals, err := h.Svc.ListByUser(userID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "failed to list goals", nil)
			return
		}
		response.OK(c, http.StatusOK, goalListJSON(goals), "goals", gin.H{"count": len(goals)})
		return
	}
	goals, err := h.Svc.List()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to list goals", nil)
		return
	}
	response.OK(c, http.StatusOK, goalListJSON(goals), "goals", gin.H{"count": len(goals)})
}

func (h *GoalHandler) ListByUser(c *gin.Context) {
	goals, err := h.Svc.ListByUser(c.Param("userId"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to list goals", nil)
		return
	}
	response.OK(c, http.StatusOK, goalListJSON(goals), "goals", gin.H{"count": len(goals)})
}

func (h *GoalHandler) Get(c *gin.Context) {
	g, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "goal not found", nil)
		return
	}
	response.OK(c, http.StatusOK, goalJSON(g), "goal", nil)
}

func (h *GoalHandler) Update(c *gin.Context) {
	var req updateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	g, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateGoalInput{
		GoalName:        req.GoalName,
		GoalDescription: req.GoalDescription,
		GoalType:        req.GoalType,
		IsCompleted:     req.IsCompleted,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrGoalNotFound):
			response.Fail(c, http.StatusNotFound, "goal not found", nil)
		case errors.Is(err, application.ErrGoalTypeTaken):
			response.Fail(c, http.StatusConflict, "user already has a goal of this type", nil)
		default:
			response.Fail(c, http.StatusInternalServerError, "failed to update goal", nil)
		}
		return
	}
	response.OK(c, http.StatusOK, goalJSON(g), "goal updated", nil)
}

func (h *GoalHandler) Complete(c *gin.Context) {
	g, err := h.Svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrGoalNotFound) {
			response.Fail(c, http.StatusNotFound, "goal not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to complete goal", nil)
		return
	}
	response.OK(c, http.StatusOK, goalJSON(g), "goal completed", nil)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrGoalNotFound) {
			response.Fail(c, http.StatusNotFound, "goal not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to delete goal", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
