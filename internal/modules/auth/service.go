package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"cinelist/internal/domain"
	"cinelist/internal/pkg/credential"

	"gorm.io/gorm"
)

// Service contains the owner authentication logic.
type Service struct {
	owners OwnerReader
}

func NewService(owners OwnerReader) *Service {
	return &Service{owners: owners}
}

// Login resolves a username/password pair to the owner's account, API key
// included. Unknown usernames and wrong passwords collapse into the same
// error so the response does not reveal which half failed.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Owner, error) {
	owner, err := s.owners.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	digest := credential.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(owner.PasswordHash), []byte(digest)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return owner, nil
}

// AuthenticateByKey resolves an X-API-Key value to its owner.
func (s *Service) AuthenticateByKey(ctx context.Context, apiKey string) (*domain.Owner, error) {
	owner, err := s.owners.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAPIKey
		}
		return nil, err
	}
	return owner, nil
}
