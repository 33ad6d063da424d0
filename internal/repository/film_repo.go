package repository

import (
	"context"

	"cinelist/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

type filmModel struct {
	ID              int64   `gorm:"column:id;primaryKey"`
	Title           string  `gorm:"column:title;not null"`
	DurationMinutes int     `gorm:"column:duration_minutes;not null"`
	Language        string  `gorm:"column:language;not null"`
	Subtitles       *string `gorm:"column:subtitles"`
	Director        string  `gorm:"column:director;not null"`
	MainCast        string  `gorm:"column:main_cast;not null"`
	MinAge          int     `gorm:"column:min_age;not null"`
	StartDate       string  `gorm:"column:start_date;not null"`
	EndDate         string  `gorm:"column:end_date;not null"`
	CinemaID        int64   `gorm:"column:cinema_id;not null"`
	OwnerID         int64   `gorm:"column:owner_id;not null"`
	ImageURL        *string `gorm:"column:image_url"`

	// Associations declare the storage-level constraints for migration:
	// films reference cinemas/owners, seances die with their film.
	Cinema  cinemaModel   `gorm:"foreignKey:CinemaID"`
	Owner   ownerModel    `gorm:"foreignKey:OwnerID"`
	Seances []seanceModel `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE"`
}

func (filmModel) TableName() string { return "films" }

type seanceModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	FilmID    int64  `gorm:"column:film_id;not null"`
	DayOfWeek string `gorm:"column:day_of_week;not null"`
	StartTime string `gorm:"column:start_time;not null"`
}

func (seanceModel) TableName() string { return "seances" }

// filmRow is the joined read shape: film columns plus the cinema's name and
// city.
type filmRow struct {
	ID              int64   `gorm:"column:id"`
	Title           string  `gorm:"column:title"`
	DurationMinutes int     `gorm:"column:duration_minutes"`
	Language        string  `gorm:"column:language"`
	Subtitles       *string `gorm:"column:subtitles"`
	Director        string  `gorm:"column:director"`
	MainCast        string  `gorm:"column:main_cast"`
	MinAge          int     `gorm:"column:min_age"`
	StartDate       string  `gorm:"column:start_date"`
	EndDate         string  `gorm:"column:end_date"`
	CinemaID        int64   `gorm:"column:cinema_id"`
	OwnerID         int64   `gorm:"column:owner_id"`
	ImageURL        *string `gorm:"column:image_url"`
	CinemaName      string  `gorm:"column:cinema_name"`
	City            string  `gorm:"column:city"`
}

const filmSelect = `
SELECT f.id, f.title, f.duration_minutes, f.language, f.subtitles,
       f.director, f.main_cast, f.min_age, f.start_date, f.end_date,
       f.cinema_id, f.owner_id, f.image_url,
       c.name AS cinema_name, c.city
FROM films f
JOIN cinemas c ON c.id = f.cinema_id
`

func toDomainFilm(row filmRow) *domain.Film {
	return &domain.Film{
		ID:              row.ID,
		Title:           row.Title,
		DurationMinutes: row.DurationMinutes,
		Language:        row.Language,
		Subtitles:       row.Subtitles,
		Director:        row.Director,
		MainCast:        row.MainCast,
		MinAge:          row.MinAge,
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		CinemaID:        row.CinemaID,
		OwnerID:         row.OwnerID,
		ImageURL:        row.ImageURL,
		CinemaName:      row.CinemaName,
		City:            row.City,
	}
}

func toSeanceModels(filmID int64, seances []domain.Seance) []seanceModel {
	rows := make([]seanceModel, 0, len(seances))
	for _, s := range seances {
		rows = append(rows, seanceModel{
			FilmID:    filmID,
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
		})
	}
	return rows
}

// List returns films joined with their cinema, each with its seance list.
// A non-empty city is an exact match against cinemas.city.
func (r *FilmRepository) List(ctx context.Context, city string) ([]*domain.Film, error) {
	var rows []filmRow
	q := r.db.WithContext(ctx)
	if city != "" {
		q = q.Raw(filmSelect+"WHERE c.city = ?", city)
	} else {
		q = q.Raw(filmSelect)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	films := make([]*domain.Film, 0, len(rows))
	for _, row := range rows {
		film := toDomainFilm(row)
		seances, err := r.Seances(ctx, film.ID)
		if err != nil {
			return nil, err
		}
		film.Seances = seances
		films = append(films, film)
	}
	return films, nil
}

// GetByID returns the joined film with its seances, or
// gorm.ErrRecordNotFound.
func (r *FilmRepository) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	var row filmRow
	tx := r.db.WithContext(ctx).Raw(filmSelect+"WHERE f.id = ?", id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	film := toDomainFilm(row)
	seances, err := r.Seances(ctx, id)
	if err != nil {
		return nil, err
	}
	film.Seances = seances
	return film, nil
}

func (r *FilmRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&filmModel{}).Where("id = ?", id).Count(&n)
	if tx.Error != nil {
		return false, tx.Error
	}
	return n > 0, nil
}

func (r *FilmRepository) Seances(ctx context.Context, filmID int64) ([]domain.Seance, error) {
	var models []seanceModel
	tx := r.db.WithContext(ctx).Where("film_id = ?", filmID).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Seance, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Seance{
			ID:        m.ID,
			DayOfWeek: m.DayOfWeek,
			StartTime: m.StartTime,
		})
	}
	return out, nil
}

// Create inserts the film row and all its seance rows in one transaction.
// Any failure, including a foreign-key violation on cinema_id, rolls the
// whole write back.
func (r *FilmRepository) Create(ctx context.Context, f *domain.Film) (int64, error) {
	m := filmModel{
		Title:           f.Title,
		DurationMinutes: f.DurationMinutes,
		Language:        f.Language,
		Subtitles:       f.Subtitles,
		Director:        f.Director,
		MainCast:        f.MainCast,
		MinAge:          f.MinAge,
		StartDate:       f.StartDate,
		EndDate:         f.EndDate,
		CinemaID:        f.CinemaID,
		OwnerID:         f.OwnerID,
		ImageURL:        f.ImageURL,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		rows := toSeanceModels(m.ID, f.Seances)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, err
	}
	return m.ID, nil
}

// Update applies a sparse column patch and, when replaceSeances is non-nil,
// wholesale-replaces the film's seance set with it (an empty slice clears
// the set). Both run in one all-or-nothing transaction.
func (r *FilmRepository) Update(ctx context.Context, id int64, patch domain.FilmPatch, replaceSeances []domain.Seance) error {
	updates := patchUpdates(patch)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&filmModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if replaceSeances == nil {
			return nil
		}
		if err := tx.Where("film_id = ?", id).Delete(&seanceModel{}).Error; err != nil {
			return err
		}
		rows := toSeanceModels(id, replaceSeances)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// AddSeances appends the batch to the film's existing seances; the whole
// batch commits or none of it does.
func (r *FilmRepository) AddSeances(ctx context.Context, filmID int64, seances []domain.Seance) error {
	rows := toSeanceModels(filmID, seances)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// Delete removes the film; seances go with it via the storage cascade.
// Returns gorm.ErrRecordNotFound when no row was affected.
func (r *FilmRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&filmModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByTitle is used by the seed bootstrap; it returns the bare film row
// without seances.
func (r *FilmRepository) FindByTitle(ctx context.Context, title string) (*domain.Film, error) {
	var row filmRow
	tx := r.db.WithContext(ctx).Raw(filmSelect+"WHERE f.title = ?", title).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return toDomainFilm(row), nil
}

// SetPosterAndCinema realigns a seeded film with the bootstrap data set.
// Bootstrap path only.
func (r *FilmRepository) SetPosterAndCinema(ctx context.Context, id int64, imageURL *string, cinemaID int64) error {
	return r.db.WithContext(ctx).
		Model(&filmModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"image_url": imageURL,
			"cinema_id": cinemaID,
		}).Error
}

func patchUpdates(p domain.FilmPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.DurationMinutes != nil {
		updates["duration_minutes"] = *p.DurationMinutes
	}
	if p.Language != nil {
		updates["language"] = *p.Language
	}
	if p.Subtitles != nil {
		updates["subtitles"] = *p.Subtitles
	}
	if p.Director != nil {
		updates["director"] = *p.Director
	}
	if p.MainCast != nil {
		updates["main_cast"] = *p.MainCast
	}
	if p.MinAge != nil {
		updates["min_age"] = *p.MinAge
	}
	if p.StartDate != nil {
		updates["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		updates["end_date"] = *p.EndDate
	}
	if p.CinemaID != nil {
		updates["cinema_id"] = *p.CinemaID
	}
	return updates
}
