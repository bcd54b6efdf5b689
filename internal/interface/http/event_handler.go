package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fitleague/fitleague/internal/application"
	"github.com/fitleague/fitleague/internal/domain/entity"
	"github.com/fitleague/fitleague/pkg/response"
	"github.com/fitleague/fitleague/pkg/validation"
)

type EventHandler struct {
	Svc    *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(svc *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type createEventRequest struct {
	UserID   string     `json:"userId" binding:"required,uuid"`
	GoalID   string     `json:"goalId" binding:"required,uuid"`
	DateTime *time.Time `json:"dateTime"`
	Note     string     `json:"note" binding:"omitempty,max=500"`
}

func eventJSON(e *entity.Event) gin.H {
	return gin.H{
		"id":        e.ID,
		"userId":    e.UserID,
		"goalId":    e.GoalID,
		"dateTime":  e.DateTime,
		"note":      e.Note,
		"createdAt": e.CreatedAt,
	}
}

func eventListJSON(events []entity.Event) []gin.H {
	out := make([]gin.H, 0, len(events))
	for i := range events {
		out = append(out, eventJSON(&events[i]))
	}
	return out
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.CreateEventInput{
		UserID: req.UserID,
		GoalID: req.GoalID,
		Note:   req.Note,
	}
	if req.DateTime != nil {
		in.DateTime = *req.DateTime
	}
	e, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrGoalNotFound):
			response.Fail(c, http.StatusNotFound, "goal not found", nil)
		case errors.Is(err, application.ErrGoalOwnership):
			response.Fail(c, http.StatusForbidden, "goal belongs to another user", nil)
		case errors.Is(err, application.ErrAlreadyLoggedToday):
			response.Fail(c, http.StatusConflict, "goal already logged today", nil)
		default:
			response.Fail(c, http.StatusInternalServerError, "failed to log event", nil)
		}
		return
	}
	response.OK(c, http.StatusCreated, eventJSON(e), "event logged", nil)
}

// Eligibility tells a client whether logging the goal right now would be
// accepted. Advisory only; Create remains the authority.
func (h *EventHandler) Eligibility(c *gin.Context) {
	userID := c.DefaultQuery("userId", c.Query("user_id"))
	goalID := c.DefaultQuery("goalId", c.Query("goal_id"))
	if userID == "" || goalID == "" {
		response.Fail(c, http.StatusBadRequest, "missing query", gin.H{"userId": "is required", "goalId": "is required"})
		return
	}
	ok, err := h.Svc.Eligibility(userID, goalID)
	if err != nil {
		if errors.Is(err, application.ErrGoalNotFound) {
			response.Fail(c, http.StatusNotFound, "goal not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to check eligibility", nil)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"eligible": ok}, "eligibility", nil)
}

func (h *EventHandler) List(c *gin.Context) {
	var (
		events []entity.Event
		err    error
	)
	switch {
	case c.Query("userId") != "":
		events, err = h.Svc.ListByUser(c.Query("userId"))
	case c.Query("goalId") != "":
		events, err = h.Svc.ListByGoal(c.Query("goalId"))
	default:
		events, err = h.Svc.List()
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to list events", nil)
		return
	}
	response.OK(c, http.StatusOK, eventListJSON(events), "events", gin.H{"count": len(events)})
}

func (h *EventHandler) ListByUser(c *gin.Context) {
	events, err := h.Svc.ListByUser(c.Param("userId"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to list events", nil)
		return
	}
	response.OK(c, http.StatusOK, eventListJSON(events), "events", gin.H{"count": len(events)})
}

func (h *EventHandler) ListByGoal(c *gin.Context) {
	events, err := h.Svc.ListByGoal(c.Param("goalId"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to list events", nil)
		return
	}
	response.OK(c, http.StatusOK, eventListJSON(events), "events", gin.H{"count": len(events)})
}

func (h *EventHandler) Get(c *gin.Context) {
	e, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "event not found", nil)
		return
	}
	response.OK(c, http.StatusOK, eventJSON(e), "event", nil)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrEventNotFound) {
			response.Fail(c, http.StatusNotFound, "event not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to delete event", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
