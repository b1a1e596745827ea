package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/infrastructure/auth"
	"github.com/bizdesk/backend/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestAuthService(repo identity.UserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-for-signing-tokens!!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bizdesk-test",
	})
	return NewAuthService(repo, jwtService, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		repo.On("ExistsByUsername", ctx, "admin").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := service.Register(ctx, RegisterInput{Username: "admin", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Username)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		repo.On("ExistsByUsername", ctx, "admin").Return(true, nil)

		_, err := service.Register(ctx, RegisterInput{Username: "admin", Password: "s3cret-pass"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_USERNAME", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	newUser := func(t *testing.T) *identity.User {
		t.Helper()
		user, err := identity.NewUser("admin", "s3cret-pass")
		require.NoError(t, err)
		return user
	}

	t.Run("returns tokens for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)
		user := newUser(t)

		repo.On("FindByUsername", ctx, "admin").Return(user, nil)

		result, err := service.Login(ctx, LoginInput{Username: "admin", Password: "s3cret-pass"})
		require.NoError(t, err)

		assert.Equal(t, user.ID, result.User.ID)
		assert.NotEmpty(t, result.Tokens.AccessToken)
		assert.NotEmpty(t, result.Tokens.RefreshToken)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)
		user := newUser(t)

		repo.On("FindByUsername", ctx, "admin").Return(user, nil)

		_, err := service.Login(ctx, LoginInput{Username: "admin", Password: "wrong-pass"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("rejects unknown username with the same error", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		repo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)

		_, err := service.Login(ctx, LoginInput{Username: "ghost", Password: "whatever-pass"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("issues new pair from valid refresh token", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		user, err := identity.NewUser("admin", "s3cret-pass")
		require.NoError(t, err)

		repo.On("FindByUsername", ctx, "admin").Return(user, nil)
		result, err := service.Login(ctx, LoginInput{Username: "admin", Password: "s3cret-pass"})
		require.NoError(t, err)

		repo.On("FindByID", ctx, user.ID).Return(user, nil)

		tokens, err := service.Refresh(ctx, RefreshInput{RefreshToken: result.Tokens.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		_, err := service.Refresh(ctx, RefreshInput{RefreshToken: "garbage"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REFRESH_TOKEN", domainErr.Code)
	})
}
