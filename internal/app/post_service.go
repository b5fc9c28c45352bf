package app

import (
	"strings"

	"tsg-api/internal/model"
)

type PostService struct {
	postStore PostStore
}

type CreatePostInput struct {
	Title string
	Body  string
}

type UpdatePostInput struct {
	Title *string
	Body  *string
}

func NewPostService(postStore PostStore) *PostService {
	return &PostService{postStore: postStore}
}

func (s *PostService) List() ([]model.Post, error) {
	return s.postStore.List()
}

func (s *PostService) GetByID(id uint) (*model.Post, error) {
	return s.postStore.GetByID(id)
}

// Create stores a new post owned by the authenticated user.
func (s *PostService) Create(ownerID uint, input CreatePostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Body == "" {
		return nil, ErrInvalidInput
	}

	post := &model.Post{
		Title:  title,
		Body:   input.Body,
		UserID: ownerID,
	}
	if err := s.postStore.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial update; absent fields keep their current value.
// Returns (nil, nil) when the post does not exist.
func (s *PostService) Update(id uint, input UpdatePostInput) (*model.Post, error) {
	post, err := s.postStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	if input.Title != nil {
		post.Title = strings.TrimSpace(*input.Title)
	}
	if input.Body != nil {
		post.Body = *input.Body
	}

	if err := s.postStore.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete returns (false, nil) when the post does not exist.
func (s *PostService) Delete(id uint) (bool, error) {
	post, err := s.postStore.GetByID(id)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, nil
	}

	if err := s.postStore.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}
