package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for accounts.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByPatientCode(ctx context.Context, code string) (*Account, error)
	List(ctx context.Context, limit, offset int) ([]*Account, int, error)
}
