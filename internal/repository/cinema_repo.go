package repository

import (
	"context"

	"cinelist/internal/domain"

	"gorm.io/gorm"
)

type CinemaRepository struct {
	db *gorm.DB
}

func NewCinemaRepository(db *gorm.DB) *CinemaRepository {
	return &CinemaRepository{db: db}
}

type cinemaModel struct {
	ID      int64  `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name;not null"`
	Address string `gorm:"column:address;not null"`
	City    string `gorm:"column:city;not null"`
}

func (cinemaModel) TableName() string { return "cinemas" }

func toDomainCinema(m cinemaModel) *domain.Cinema {
	return &domain.Cinema{
		ID:      m.ID,
		Name:    m.Name,
		Address: m.Address,
		City:    m.City,
	}
}

func (r *CinemaRepository) Create(ctx context.Context, c *domain.Cinema) error {
	m := cinemaModel{
		Name:    c.Name,
		Address: c.Address,
		City:    c.City,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCinema(m)
	return nil
}

func (r *CinemaRepository) List(ctx context.Context) ([]*domain.Cinema, error) {
	var models []cinemaModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Cinema, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainCinema(m))
	}
	return out, nil
}

func (r *CinemaRepository) GetByID(ctx context.Context, id int64) (*domain.Cinema, error) {
	var m cinemaModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCinema(m), nil
}

// FindByNameAndCity is used by the seed bootstrap to keep reruns idempotent.
func (r *CinemaRepository) FindByNameAndCity(ctx context.Context, name, city string) (*domain.Cinema, error) {
	var m cinemaModel
	tx := r.db.WithContext(ctx).Where("name = ? AND city = ?", name, city).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCinema(m), nil
}
