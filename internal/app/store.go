package app

import (
	"context"
	"time"

	"tsg-api/internal/model"
)

// Store interfaces decouple the services from the backing technology. The
// concrete implementations live in internal/repository (GORM), internal/cache
// (Redis) and internal/platform/rabbitmq.

type UserStore interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	List() ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type PostStore interface {
	Create(post *model.Post) error
	GetByID(id uint) (*model.Post, error)
	List() ([]model.Post, error)
	Update(post *model.Post) error
	Delete(id uint) error
}

// RevocationStore records logged-out token identifiers until their tokens
// would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthEventPublisher interface {
	Publish(ctx context.Context, event model.AuthEvent) error
}
