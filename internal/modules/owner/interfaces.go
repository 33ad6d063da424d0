package owner

import (
	"context"

	"cinelist/internal/domain"
)

// OwnerRepositoryInterface covers only the methods the owner service uses.
type OwnerRepositoryInterface interface {
	Create(ctx context.Context, o *domain.Owner) error
	ListSummaries(ctx context.Context) ([]domain.OwnerSummary, error)
}
