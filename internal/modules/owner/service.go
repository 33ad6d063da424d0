package owner

import (
	"context"
	"errors"
	"strings"

	"cinelist/internal/domain"
	"cinelist/internal/pkg/credential"

	"github.com/jackc/pgx/v5/pgconn"
)

// Service contains the owner registration and listing logic.
type Service struct {
	owners OwnerRepositoryInterface
}

func NewService(owners OwnerRepositoryInterface) *Service {
	return &Service{owners: owners}
}

// Register creates an owner with a fresh random API key and the password
// stored as a digest. A duplicate username surfaces as ErrUsernameTaken.
func (s *Service) Register(ctx context.Context, name, username, password string) (*domain.Owner, error) {
	apiKey, err := credential.NewAPIKey()
	if err != nil {
		return nil, err
	}

	o := &domain.Owner{
		Name:         name,
		Username:     username,
		APIKey:       apiKey,
		PasswordHash: credential.HashPassword(password),
	}
	if err := s.owners.Create(ctx, o); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return o, nil
}

// List returns all owners with credentials withheld.
func (s *Service) List(ctx context.Context) ([]domain.OwnerSummary, error) {
	return s.owners.ListSummaries(ctx)
}

// isUniqueViolation covers both backends: code 23505 on postgres, the
// driver's constraint message on sqlite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
