package repositories

import (
	"context"

	"github.com/medicino/medicino/internal/domain/entities"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByUsername retrieves a user by exact username (stored lowercase)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)

	// GetByEmail retrieves a user by exact email (stored lowercase)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// Update persists profile changes
	Update(ctx context.Context, user *entities.User) error
}
