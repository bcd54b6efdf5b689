package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fitleague/fitleague/internal/application"
	"github.com/fitleague/fitleague/internal/domain/entity"
	"github.com/fitleague/fitleague/pkg/response"
	"github.com/fitleague/fitleague/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	GamerTag  string `json:"gamerTag" binding:"omitempty,max=50"`
}

type updateUserRequest struct {
	FirstName string `json:"firstName" binding:"omitempty,max=100"`
	LastName  string `json:"lastName" binding:"omitempty,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	GamerTag  string `json:"gamerTag" binding:"omitempty,max=50"`
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"gamerTag":  u.GamerTag,
		"avatarUrl": u.AvatarURL,
		"bannerUrl": u.BannerURL,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		GamerTag:  req.GamerTag,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, "email already registered", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to create user", nil)
		return
	}
	response.OK(c, http.StatusCreated, userJSON(u), "user created", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "failed to list users", nil)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	response.OK(c, http.StatusOK, out, "users", gin.H{"count": len(out)})
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.OK(c, http.StatusOK, userJSON(u), "user", nil)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		GamerTag:  req.GamerTag,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrEmailTaken):
			response.Fail(c, http.StatusConflict, "email already registered", nil)
		default:
			response.Fail(c, http.StatusInternalServerError, "failed to update user", nil)
		}
		return
	}
	response.OK(c, http.StatusOK, userJSON(u), "user updated", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to delete user", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "missing query", gin.H{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.OK(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	h.uploadImage(c, h.Svc.UploadAvatar, "avatar updated")
}

func (h *UserHandler) UploadBanner(c *gin.Context) {
	h.uploadImage(c, h.Svc.UploadBanner, "banner updated")
}

func (h *UserHandler) uploadImage(c *gin.Context, upload func(ctx context.Context, userID string, r io.Reader, filename, contentType string) (*entity.User, error), message string) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	f, err := file.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "unreadable image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	u, err := upload(c.Request.Context(), c.Param("id"), f, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "image upload failed", nil)
		return
	}
	response.OK(c, http.StatusOK, userJSON(u), message, nil)
}
