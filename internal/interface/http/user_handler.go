package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user-access-management/go-backend/internal/application"
	"user-access-management/go-backend/pkg/response"
	"user-access-management/go-backend/pkg/validation"
)

type UserHandler struct {
	Svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

type updateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Lastname string `json:"lastname" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address" binding:"max=200"`
}

func (h *UserHandler) GetByID(c *gin.Context) {
	res := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	render(c, http.StatusOK, res)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	res := h.Svc.GetByEmail(c.Request.Context(), c.Param("email"))
	render(c, http.StatusOK, res)
}

func (h *UserHandler) List(c *gin.Context) {
	pageNumber, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "pageNumber must be an integer", nil, nil)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "pageSize must be an integer", nil, nil)
		return
	}
	res := h.Svc.List(c.Request.Context(), pageNumber, pageSize)
	render(c, http.StatusOK, res)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil, validation.ToDetails(err))
		return
	}
	res := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateUserInput{
		Name:     req.Name,
		Lastname: req.Lastname,
		Email:    req.Email,
		Address:  req.Address,
	})
	render(c, http.StatusOK, res)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	res := h.Svc.Deactivate(c.Request.Context(), c.Param("id"))
	render(c, http.StatusOK, res)
}

func (h *UserHandler) Delete(c *gin.Context) {
	res := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	render(c, http.StatusOK, res)
}

func (h *UserHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	res := h.Svc.SearchUsers(c.Request.Context(), c.Query("q"), size)
	render(c, http.StatusOK, res)
}
