package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tsg-api/internal/model"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	userStore      UserStore
	tokens         *TokenService
	events         AuthEventPublisher
	passwordMinLen int
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(userStore UserStore, tokens *TokenService, events AuthEventPublisher, passwordMinLen int) *AuthService {
	if passwordMinLen < 6 {
		passwordMinLen = 6
	}
	return &AuthService{
		userStore:      userStore,
		tokens:         tokens,
		events:         events,
		passwordMinLen: passwordMinLen,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password

	if name == "" || email == "" || len(password) < s.passwordMinLen {
		return nil, ErrInvalidInput
	}

	existing, err := s.userStore.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userStore.Create(user); err != nil {
		return nil, err
	}

	token, claims, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, user.ID, model.AuthActionRegister, claims.ID)
	return &AuthResult{Token: token, User: user}, nil
}

// Authenticate checks the credentials and issues a fresh token. Absent users
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userStore.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, user.ID, model.AuthActionLogin, claims.ID)
	return &AuthResult{Token: token, User: user}, nil
}

// Logout revokes the presented token. A revocation store failure surfaces as
// ErrRevocationFailed so the handler can report it, unlike verify failures.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.tokens.Revoke(ctx, tokenString)
	if err != nil {
		return err
	}

	s.publishEvent(ctx, claims.UserID, model.AuthActionLogout, claims.ID)
	return nil
}

func (s *AuthService) publishEvent(ctx context.Context, userID uint, action, tokenID string) {
	if s.events == nil {
		return
	}

	event := model.AuthEvent{
		UserID:  userID,
		Action:  action,
		TokenID: tokenID,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("publish auth event failed: %v", err)
	}
}
