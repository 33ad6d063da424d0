package repository

import (
	"context"

	"cinelist/internal/domain"

	"gorm.io/gorm"
)

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

type ownerModel struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	Name         string  `gorm:"column:name;not null"`
	APIKey       string  `gorm:"column:api_key;uniqueIndex;not null"`
	Username     *string `gorm:"column:username;uniqueIndex:idx_owners_username"`
	PasswordHash *string `gorm:"column:password_hash"`
}

func (ownerModel) TableName() string { return "owners" }

func toDomainOwner(m ownerModel) *domain.Owner {
	var username, passwordHash string
	if m.Username != nil {
		username = *m.Username
	}
	if m.PasswordHash != nil {
		passwordHash = *m.PasswordHash
	}

	return &domain.Owner{
		ID:           m.ID,
		Name:         m.Name,
		Username:     username,
		APIKey:       m.APIKey,
		PasswordHash: passwordHash,
	}
}

func toOwnerModel(o *domain.Owner) ownerModel {
	var username, passwordHash *string
	if o.Username != "" {
		v := o.Username
		username = &v
	}
	if o.PasswordHash != "" {
		v := o.PasswordHash
		passwordHash = &v
	}

	return ownerModel{
		ID:           o.ID,
		Name:         o.Name,
		APIKey:       o.APIKey,
		Username:     username,
		PasswordHash: passwordHash,
	}
}

func (r *OwnerRepository) Create(ctx context.Context, o *domain.Owner) error {
	m := toOwnerModel(o)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOwner(m)
	return nil
}

// ListSummaries returns every owner with credentials withheld.
func (r *OwnerRepository) ListSummaries(ctx context.Context) ([]domain.OwnerSummary, error) {
	var out []domain.OwnerSummary
	tx := r.db.WithContext(ctx).
		Table("owners").
		Select("id", "name").
		Order("id").
		Scan(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

func (r *OwnerRepository) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Owner, error) {
	var m ownerModel
	tx := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOwner(m), nil
}

func (r *OwnerRepository) GetByUsername(ctx context.Context, username string) (*domain.Owner, error) {
	var m ownerModel
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOwner(m), nil
}

// RotateCredentials overwrites an owner's login material. Bootstrap/seed
// path only; the HTTP API never mutates owners.
func (r *OwnerRepository) RotateCredentials(ctx context.Context, id int64, username, apiKey, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&ownerModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"username":      username,
			"api_key":       apiKey,
			"password_hash": passwordHash,
		}).Error
}
