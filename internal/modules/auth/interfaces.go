package auth

import (
	"context"

	"cinelist/internal/domain"
)

// OwnerReader covers only the lookups the auth service needs.
type OwnerReader interface {
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Owner, error)
	GetByUsername(ctx context.Context, username string) (*domain.Owner, error)
}
