package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tsg-api/internal/app"
	"tsg-api/internal/i18n"
	"tsg-api/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
	catalog     *i18n.Catalog
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=128"`
	Password *string `json:"password" binding:"omitempty,min=6,max=128"`
}

func NewUserHandler(userService *app.UserService, catalog *i18n.Catalog) *UserHandler {
	return &UserHandler{userService: userService, catalog: catalog}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "list users failed")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Show(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "fetch user failed")
		return
	}
	if user == nil {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}

	existing, err := h.userService.GetByID(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "fetch user failed")
		return
	}
	if existing == nil {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ValidationErrors(c, err)
		return
	}

	user, err := h.userService.Update(id, app.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, app.ErrEmailExists) {
			response.FieldError(c, "email", "The email has already been taken.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "update user failed")
		return
	}
	if user == nil {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}

	deleted, err := h.userService.Delete(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "delete user failed")
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}
	response.Message(c, http.StatusOK, h.catalog.T("resource_deleted"))
}

// parseID treats a non-numeric id the same as a missing record.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
