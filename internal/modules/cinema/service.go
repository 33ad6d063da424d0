package cinema

import (
	"context"
	"errors"

	"cinelist/internal/domain"

	"gorm.io/gorm"
)

// Service contains the cinema listing logic. Cinemas are create-and-read
// only; nothing updates or deletes them through the API.
type Service struct {
	cinemas CinemaRepositoryInterface
}

func NewService(cinemas CinemaRepositoryInterface) *Service {
	return &Service{cinemas: cinemas}
}

func (s *Service) Create(ctx context.Context, name, address, city string) (*domain.Cinema, error) {
	c := &domain.Cinema{
		Name:    name,
		Address: address,
		City:    city,
	}
	if err := s.cinemas.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Cinema, error) {
	return s.cinemas.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Cinema, error) {
	c, err := s.cinemas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
