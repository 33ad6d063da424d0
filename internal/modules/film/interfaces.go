package film

import (
	"context"

	"cinelist/internal/domain"
)

// FilmRepositoryInterface lists the storage operations the film service uses. Create,
// Update and AddSeances are transactional: either every row lands or none.
type FilmRepositoryInterface interface {
	List(ctx context.Context, city string) ([]*domain.Film, error)
	GetByID(ctx context.Context, id int64) (*domain.Film, error)
	Seances(ctx context.Context, filmID int64) ([]domain.Seance, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, f *domain.Film) (int64, error)
	Update(ctx context.Context, id int64, patch domain.FilmPatch, replaceSeances []domain.Seance) error
	AddSeances(ctx context.Context, filmID int64, seances []domain.Seance) error
	Delete(ctx context.Context, id int64) error
}
