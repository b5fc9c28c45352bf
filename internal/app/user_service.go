package app

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tsg-api/internal/model"
)

type UserService struct {
	userStore UserStore
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

func NewUserService(userStore UserStore) *UserService {
	return &UserService{userStore: userStore}
}

func (s *UserService) List() ([]model.User, error) {
	return s.userStore.List()
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	return s.userStore.GetByID(id)
}

// Update applies a partial update; absent fields keep their current value.
// Returns (nil, nil) when the user does not exist.
func (s *UserService) Update(id uint, input UpdateUserInput) (*model.User, error) {
	user, err := s.userStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if email != user.Email {
			existing, err := s.userStore.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, ErrEmailExists
			}
			user.Email = email
		}
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password failed: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userStore.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user. Owned posts go with it, the posts table carries an
// ON DELETE CASCADE constraint. Returns (false, nil) when the user does not
// exist.
func (s *UserService) Delete(id uint) (bool, error) {
	user, err := s.userStore.GetByID(id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	if err := s.userStore.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}
