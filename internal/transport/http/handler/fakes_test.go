package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tsg-api/internal/app"
	"tsg-api/internal/i18n"
	"tsg-api/internal/model"
	"tsg-api/internal/transport/http/handler"
	"tsg-api/internal/transport/http/middleware"
	"tsg-api/internal/transport/http/response"
)

type fakeRevocationStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func (f *fakeRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[tokenID] = time.Now().Add(ttl)
	return nil
}

func (f *fakeRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deadline, ok := f.entries[tokenID]
	return ok && time.Now().Before(deadline), nil
}

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*model.User
}

func (f *fakeUserStore) Create(user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) List() ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]model.User, 0, len(f.users))
	for id := uint(1); id <= f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (f *fakeUserStore) Update(user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.UpdatedAt = time.Now()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakePostStore struct {
	mu     sync.Mutex
	nextID uint
	posts  map[uint]*model.Post
}

func (f *fakePostStore) Create(post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	clone := *post
	f.posts[post.ID] = &clone
	return nil
}

func (f *fakePostStore) GetByID(id uint) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	clone := *post
	return &clone, nil
}

func (f *fakePostStore) List() ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	posts := make([]model.Post, 0, len(f.posts))
	for id := uint(1); id <= f.nextID; id++ {
		if post, ok := f.posts[id]; ok {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (f *fakePostStore) Update(post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	post.UpdatedAt = time.Now()
	clone := *post
	f.posts[post.ID] = &clone
	return nil
}

func (f *fakePostStore) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.posts, id)
	return nil
}

// newTestRouter wires the full API route tree over in-memory stores, matching
// the production router in transport/http/server.go.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := i18n.New("en")
	users := &fakeUserStore{users: make(map[uint]*model.User)}
	posts := &fakePostStore{posts: make(map[uint]*model.Post)}
	revocations := &fakeRevocationStore{entries: make(map[string]time.Time)}

	tokenService := app.NewTokenService("test-secret", time.Hour, revocations)
	authService := app.NewAuthService(users, tokenService, nil, 6)
	userService := app.NewUserService(users)
	postService := app.NewPostService(posts)

	authHandler := handler.NewAuthHandler(authService, catalog)
	userHandler := handler.NewUserHandler(userService, catalog)
	postHandler := handler.NewPostHandler(postService, catalog)

	requireAuth := middleware.Auth(tokenService, catalog)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, catalog.T("not_found"))
	})
	router.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, catalog.T("method_not_allowed"))
	})

	api := router.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", requireAuth, authHandler.Logout)

	usersGroup := api.Group("/users", requireAuth)
	usersGroup.GET("", userHandler.List)
	usersGroup.GET("/:id", userHandler.Show)
	usersGroup.PUT("/:id", userHandler.Update)
	usersGroup.DELETE("/:id", userHandler.Destroy)

	postsGroup := api.Group("/posts", requireAuth)
	postsGroup.GET("", postHandler.List)
	postsGroup.GET("/:id", postHandler.Show)
	postsGroup.POST("", postHandler.Store)
	postsGroup.PUT("/:id", postHandler.Update)
	postsGroup.DELETE("/:id", postHandler.Destroy)

	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, router *gin.Engine, name, email, password string) (token string, userID uint) {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	token = body["token"].(string)
	user := body["user"].(map[string]interface{})
	userID = uint(user["id"].(float64))
	return token, userID
}
