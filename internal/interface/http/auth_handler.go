package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"user-access-management/go-backend/internal/application"
	"user-access-management/go-backend/internal/interface/middleware"
	"user-access-management/go-backend/pkg/response"
	"user-access-management/go-backend/pkg/validation"
)

type AuthHandler struct {
	Svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Lastname string `json:"lastname" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Address  string `json:"address" binding:"max=200"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,pwd"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil, validation.ToDetails(err))
		return
	}
	res := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Lastname: req.Lastname,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	})
	render(c, http.StatusCreated, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil, validation.ToDetails(err))
		return
	}
	res := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	render(c, http.StatusOK, res)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing authenticated user", nil, nil)
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil, validation.ToDetails(err))
		return
	}
	res := h.Svc.ChangePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword)
	render(c, http.StatusOK, res)
}
