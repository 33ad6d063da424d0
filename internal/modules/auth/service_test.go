package auth

import (
	"context"
	"testing"

	"cinelist/internal/domain"
	"cinelist/internal/pkg/credential"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockOwnerReader struct {
	mock.Mock
}

func (m *mockOwnerReader) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Owner, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *mockOwnerReader) GetByUsername(ctx context.Context, username string) (*domain.Owner, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func TestService_Login_Success(t *testing.T) {
	owners := new(mockOwnerReader)
	stored := &domain.Owner{
		ID:           10,
		Name:         "admin",
		Username:     "admin",
		APIKey:       "key-10",
		PasswordHash: credential.HashPassword("secret"),
	}
	owners.On("GetByUsername", mock.Anything, "admin").Return(stored, nil)

	service := NewService(owners)
	owner, err := service.Login(context.Background(), "admin", "secret")

	assert.NoError(t, err)
	assert.Equal(t, int64(10), owner.ID)
	assert.Equal(t, "key-10", owner.APIKey)
}

func TestService_Login_WrongPassword(t *testing.T) {
	owners := new(mockOwnerReader)
	stored := &domain.Owner{
		ID:           10,
		Username:     "admin",
		PasswordHash: credential.HashPassword("secret"),
	}
	owners.On("GetByUsername", mock.Anything, "admin").Return(stored, nil)

	service := NewService(owners)
	_, err := service.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUsername(t *testing.T) {
	owners := new(mockOwnerReader)
	owners.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(owners)
	_, err := service.Login(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_AuthenticateByKey(t *testing.T) {
	owners := new(mockOwnerReader)
	stored := &domain.Owner{ID: 3, Name: "admin", APIKey: "valid-key"}
	owners.On("GetByAPIKey", mock.Anything, "valid-key").Return(stored, nil)
	owners.On("GetByAPIKey", mock.Anything, "bogus").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(owners)

	owner, err := service.AuthenticateByKey(context.Background(), "valid-key")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), owner.ID)

	_, err = service.AuthenticateByKey(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}
