package film

import (
	"context"
	"errors"

	"cinelist/internal/domain"
	"cinelist/internal/pkg/validator"

	"gorm.io/gorm"
)

// Service contains the film listing logic: validation ahead of the
// transactional writes, and the refetch that every successful write answers
// with.
type Service struct {
	films FilmRepositoryInterface
}

func NewService(films FilmRepositoryInterface) *Service {
	return &Service{films: films}
}

func (s *Service) List(ctx context.Context, city string) ([]*domain.Film, error) {
	return s.films.List(ctx, city)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Film, error) {
	f, err := s.films.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) GetSeances(ctx context.Context, filmID int64) ([]domain.Seance, error) {
	exists, err := s.films.Exists(ctx, filmID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.films.Seances(ctx, filmID)
}

// Create validates and persists a full listing, then refetches it so the
// response carries the joined cinema fields and seance ids.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*domain.Film, error) {
	if !validator.IsDate(*req.StartDate) || !validator.IsDate(*req.EndDate) {
		return nil, ErrBadDates
	}
	if len(req.Seances) == 0 {
		return nil, ErrSeancesRequired
	}
	seances, err := toSeances(req.Seances)
	if err != nil {
		return nil, err
	}

	f := &domain.Film{
		Title:           *req.Title,
		DurationMinutes: *req.DurationMinutes,
		Language:        *req.Language,
		Subtitles:       emptyToNil(req.Subtitles),
		Director:        *req.Director,
		MainCast:        *req.MainCast,
		MinAge:          *req.MinAge,
		StartDate:       *req.StartDate,
		EndDate:         *req.EndDate,
		CinemaID:        *req.CinemaID,
		OwnerID:         ownerID,
		ImageURL:        emptyToNil(req.ImageURL),
		Seances:         seances,
	}

	id, err := s.films.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update applies a sparse patch and optionally replaces the seance set, then
// refetches. The refetch decides the outcome: updating an id that never
// existed surfaces as ErrNotFound, not as a write failure.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Film, error) {
	if req.StartDate != nil && !validator.IsDate(*req.StartDate) {
		return nil, ErrBadDates
	}
	if req.EndDate != nil && !validator.IsDate(*req.EndDate) {
		return nil, ErrBadDates
	}

	var replace []domain.Seance
	if req.Seances != nil {
		seances, err := toSeances(*req.Seances)
		if err != nil {
			return nil, err
		}
		// Present but empty clears the schedule; the non-nil slice tells the
		// repository replace-with-nothing apart from leave-alone.
		replace = seances
	}

	patch := domain.FilmPatch{
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Language:        req.Language,
		Subtitles:       req.Subtitles,
		Director:        req.Director,
		MainCast:        req.MainCast,
		MinAge:          req.MinAge,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		CinemaID:        req.CinemaID,
	}

	if err := s.films.Update(ctx, id, patch, replace); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// AddSeances appends a batch to an existing film's schedule and returns the
// full resulting schedule.
func (s *Service) AddSeances(ctx context.Context, filmID int64, req AddSeancesRequest) ([]domain.Seance, error) {
	exists, err := s.films.Exists(ctx, filmID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	if len(req.Seances) == 0 {
		return nil, ErrSeancesRequired
	}
	seances, err := toSeances(req.Seances)
	if err != nil {
		return nil, err
	}

	if err := s.films.AddSeances(ctx, filmID, seances); err != nil {
		return nil, err
	}
	return s.films.Seances(ctx, filmID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.films.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func toSeances(inputs []SeanceInput) ([]domain.Seance, error) {
	out := make([]domain.Seance, 0, len(inputs))
	for _, in := range inputs {
		if in.DayOfWeek == "" || in.StartTime == "" {
			return nil, ErrSeanceFields
		}
		out = append(out, domain.Seance{
			DayOfWeek: in.DayOfWeek,
			StartTime: in.StartTime,
		})
	}
	return out, nil
}

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
