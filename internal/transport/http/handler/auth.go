package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tsg-api/internal/app"
	"tsg-api/internal/i18n"
	"tsg-api/internal/transport/http/middleware"
	"tsg-api/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
	catalog     *i18n.Catalog
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(authService *app.AuthService, catalog *i18n.Catalog) *AuthHandler {
	return &AuthHandler{authService: authService, catalog: catalog}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), app.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmailExists):
			response.FieldError(c, "email", "The email has already been taken.")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusUnprocessableEntity, "invalid request payload")
		default:
			response.Error(c, http.StatusInternalServerError, "register failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": h.catalog.T("register_success"),
		"user":    result.User,
		"token":   result.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Login never reports which part of the payload was bad.
		response.Error(c, http.StatusUnauthorized, h.catalog.T("invalid_credentials"))
		return
	}

	result, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, h.catalog.T("invalid_credentials"))
		default:
			response.Error(c, http.StatusInternalServerError, "login failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": h.catalog.T("login_success"),
		"token":   result.Token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := c.GetString(middleware.ContextTokenKey)

	if err := h.authService.Logout(c.Request.Context(), tokenString); err != nil {
		if errors.Is(err, app.ErrRevocationFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  h.catalog.T("logout_failed"),
				"detail": err.Error(),
			})
			return
		}
		response.Message(c, http.StatusUnauthorized, h.catalog.T("unauthenticated"))
		return
	}

	response.Message(c, http.StatusOK, h.catalog.T("logout_success"))
}
