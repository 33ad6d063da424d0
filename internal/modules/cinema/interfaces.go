package cinema

import (
	"context"

	"cinelist/internal/domain"
)

// CinemaRepositoryInterface covers only the methods the cinema service uses.
type CinemaRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Cinema) error
	List(ctx context.Context) ([]*domain.Cinema, error)
	GetByID(ctx context.Context, id int64) (*domain.Cinema, error)
}
