package film

import (
	"context"
	"testing"

	"cinelist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockFilmRepo struct {
	mock.Mock
}

func (m *mockFilmRepo) List(ctx context.Context, city string) ([]*domain.Film, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Film), args.Error(1)
}

func (m *mockFilmRepo) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Film), args.Error(1)
}

func (m *mockFilmRepo) Seances(ctx context.Context, filmID int64) ([]domain.Seance, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seance), args.Error(1)
}

func (m *mockFilmRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockFilmRepo) Create(ctx context.Context, f *domain.Film) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFilmRepo) Update(ctx context.Context, id int64, patch domain.FilmPatch, replaceSeances []domain.Seance) error {
	args := m.Called(ctx, id, patch, replaceSeances)
	return args.Error(0)
}

func (m *mockFilmRepo) AddSeances(ctx context.Context, filmID int64, seances []domain.Seance) error {
	args := m.Called(ctx, filmID, seances)
	return args.Error(0)
}

func (m *mockFilmRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func i64Ptr(n int64) *int64   { return &n }

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Title:           strPtr("Arrival"),
		DurationMinutes: intPtr(116),
		Language:        strPtr("VO"),
		Subtitles:       strPtr("VF"),
		Director:        strPtr("Denis Villeneuve"),
		MainCast:        strPtr("Amy Adams"),
		MinAge:          intPtr(10),
		StartDate:       strPtr("2025-01-10"),
		EndDate:         strPtr("2025-02-20"),
		CinemaID:        i64Ptr(1),
		ImageURL:        strPtr("https://example.com/arrival.jpg"),
		Seances:         []SeanceInput{{DayOfWeek: "Monday", StartTime: "20:00"}},
	}
}

func TestService_Create_RejectsBadDatesBeforeWrite(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	req := validCreateRequest()
	req.StartDate = strPtr("01/10/2025")

	_, err := service.Create(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrBadDates)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_RejectsEmptySeances(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	req := validCreateRequest()
	req.Seances = nil

	_, err := service.Create(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrSeancesRequired)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_RejectsIncompleteSeance(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	req := validCreateRequest()
	req.Seances = []SeanceInput{{DayOfWeek: "Monday"}}

	_, err := service.Create(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrSeanceFields)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_SetsOwnerAndRefetches(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	stored := &domain.Film{ID: 7, Title: "Arrival", OwnerID: 3, CinemaName: "Cinema Central"}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.Film) bool {
		return f.OwnerID == 3 && len(f.Seances) == 1
	})).Return(int64(7), nil)
	repo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)

	created, err := service.Create(context.Background(), 3, validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, stored, created)
	repo.AssertExpectations(t)
}

func TestService_Create_EmptyOptionalStringsStoredAsNull(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	req := validCreateRequest()
	req.Subtitles = strPtr("")
	req.ImageURL = strPtr("")

	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.Film) bool {
		return f.Subtitles == nil && f.ImageURL == nil
	})).Return(int64(1), nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Film{ID: 1}, nil)

	_, err := service.Create(context.Background(), 1, req)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Update_NotFoundThroughRefetch(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	repo.On("Update", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)
	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Update(context.Background(), 42, UpdateRequest{Title: strPtr("Ghost")})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_NilSeancesLeaveScheduleAlone(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	repo.On("Update", mock.Anything, int64(1), mock.Anything, []domain.Seance(nil)).Return(nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Film{ID: 1}, nil)

	_, err := service.Update(context.Background(), 1, UpdateRequest{Title: strPtr("New")})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Update_EmptySeanceSliceClearsSchedule(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	empty := []SeanceInput{}
	repo.On("Update", mock.Anything, int64(1), mock.Anything, []domain.Seance{}).Return(nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Film{ID: 1}, nil)

	_, err := service.Update(context.Background(), 1, UpdateRequest{Seances: &empty})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_AddSeances_UnknownFilm(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	repo.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := service.AddSeances(context.Background(), 9, AddSeancesRequest{
		Seances: []SeanceInput{{DayOfWeek: "Monday", StartTime: "20:00"}},
	})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "AddSeances")
}

func TestService_Delete_MapsRecordNotFound(t *testing.T) {
	repo := new(mockFilmRepo)
	service := NewService(repo)

	repo.On("Delete", mock.Anything, int64(5)).Return(gorm.ErrRecordNotFound)

	err := service.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
}
