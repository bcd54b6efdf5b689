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

type TeamHandler struct {
	Svc    *application.TeamService
	Logger *logrus.Logger
}

func NewTeamHandler(svc *application.TeamService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{Svc: svc, Logger: logger}
}

type createTeamRequest struct {
	UserIDOne string `json:"userIdOne" binding:"required,uuid"`
	UserIDTwo string `json:"userIdTwo" binding:"required,uuid,nefield=UserIDOne"`
	TeamName  string `json:"teamName" binding:"required,max=150"`
}

type updateTeamRequest struct {
	TeamName string `json:"teamName" binding:"required,max=150"`
}

func teamJSON(t *entity.Team) gin.H {
	return gin.H{
		"id":        t.ID,
		"userIdOne": t.UserIDOne,
		"userIdTwo": t.UserIDTwo,
		"teamName":  t.TeamName,
		"createdAt": t.CreatedAt,
		"updatedAt": t.UpdatedAt,
	}
}

func teamListJSON(teams []entity.Team) []gin.H {
	out := make([]gin.H, 0, len(teams))
	for i := range teams {
		out = append(out, teamJSON(&teams[i]))
	}
	return out
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), application.CreateTeamInput{
		UserIDOne: req.UserIDOne,
		UserIDTwo: req.UserIDTwo,
		TeamName:  req.TeamName,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrSameTeamMembers):
			response.Fail(c, http.StatusBadRequest, "team members must be distinct users", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "user not found", nil)
		default:
			response.Fail(c, http.StatusInternalServerError, "failed to create team", nil)
		}
		return
	}
	response.OK(c, http.StatusCreated, teamJSON(t), "team created", nil)
}

func (h *TeamHandler) List(c *gin.Context) {
	var (
		teams []entity.Team
		err   error
	)
	if userID := c.Query("userId"); userID != "" {
		teams, err = h.Svc.ListByUser(userID)
	} else {
		teams, err = h.Svc.List()
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to list teams", nil)
		return
	}
	response.OK(c, http.StatusOK, teamListJSON(teams), "teams", gin.H{"count": len(teams)})
}

func (h *TeamHandler) ListByUser(c *gin.Context) {
	teams, err := h.Svc.ListByUser(c.Param("userId"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to list teams", nil)
		return
	}
	response.OK(c, http.StatusOK, teamListJSON(teams), "teams", gin.H{"count": len(teams)})
}

func (h *TeamHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "team not found", nil)
		return
	}
	response.OK(c, http.StatusOK, teamJSON(t), "team", nil)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var req updateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateTeamInput{TeamName: req.TeamName})
	if err != nil {
		if errors.Is(err, application.ErrTeamNotFound) {
			response.Fail(c, http.StatusNotFound, "team not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to update team", nil)
		return
	}
	response.OK(c, http.StatusOK, teamJSON(t), "team updated", nil)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrTeamNotFound) {
			response.Fail(c, http.StatusNotFound, "team not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to delete team", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
