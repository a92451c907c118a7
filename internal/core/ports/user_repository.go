package ports

import (
	"context"

	"github.com/pixelgram/social-api/internal/core/domain"
)

// UserRepository defines the persistence contract for accounts and the
// following relation. Followers are never stored: implementations derive them
// by querying the inverse of the following set.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, limit int) ([]domain.User, error)
	Search(ctx context.Context, query string, limit int) ([]domain.User, error)

	AddFollowing(ctx context.Context, userID, targetID string) error
	RemoveFollowing(ctx context.Context, userID, targetID string) error
	Followers(ctx context.Context, userID string) ([]domain.User, error)
	Following(ctx context.Context, userID string) ([]domain.User, error)
}
