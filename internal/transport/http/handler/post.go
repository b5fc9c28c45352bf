package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tsg-api/internal/app"
	"tsg-api/internal/i18n"
	"tsg-api/internal/transport/http/middleware"
	"tsg-api/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
	catalog     *i18n.Catalog
}

type CreatePostRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body" binding:"required"`
}

type UpdatePostRequest struct {
	Title *string `json:"title" binding:"omitempty,max=255"`
	Body  *string `json:"body" binding:"omitempty"`
}

func NewPostHandler(postService *app.PostService, catalog *i18n.Catalog) *PostHandler {
	return &PostHandler{postService: postService, catalog: catalog}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "list posts failed")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Show(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}

	post, err := h.postService.GetByID(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "fetch post failed")
		return
	}
	if post == nil {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Store(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, err)
		return
	}

	ownerID := c.GetUint(middleware.ContextUserIDKey)
	post, err := h.postService.Create(ownerID, app.CreatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusUnprocessableEntity, "invalid request payload")
			return
		}
		response.Error(c, http.StatusInternalServerError, "create post failed")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}

	existing, err := h.postService.GetByID(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "fetch post failed")
		return
	}
	if existing == nil {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ValidationErrors(c, err)
		return
	}

	post, err := h.postService.Update(id, app.UpdatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "update post failed")
		return
	}
	if post == nil {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}

	deleted, err := h.postService.Delete(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "delete post failed")
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, h.catalog.T("not_found"))
		return
	}
	response.Message(c, http.StatusOK, h.catalog.T("resource_deleted"))
}
