package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	svc := New(repo, hashService, jwtService)
	t.Cleanup(ctrl.Finish)

	return svc, repo, hashService, jwtService
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		svc, repo, hashService, _ := NewMock(t)
		repo.EXPECT().FindByLogin(ctx, "gopher").Return(nil, nil)
		hashService.EXPECT().HashPassword("password123").Return("hashed", nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
				assert.NotEmpty(t, u.ID)
				assert.Equal(t, "gopher", u.Login)
				assert.Equal(t, "hashed", u.PasswordHash)
				return u, nil
			})

		user, err := svc.Register(ctx, "gopher", "password123")
		assert.NoError(t, err)
		assert.Equal(t, "gopher", user.Login)
		assert.Zero(t, user.Coin)
	})

	t.Run("Login already taken", func(t *testing.T) {
		svc, repo, _, _ := NewMock(t)
		repo.EXPECT().FindByLogin(ctx, "gopher").Return(&domain.User{ID: "u-1", Login: "gopher"}, nil)

		user, err := svc.Register(ctx, "gopher", "password123")
		assert.ErrorIs(t, err, ErrLoginTaken)
		assert.Nil(t, user)
	})

	t.Run("Hash error", func(t *testing.T) {
		svc, repo, hashService, _ := NewMock(t)
		repo.EXPECT().FindByLogin(ctx, "gopher").Return(nil, nil)
		hashService.EXPECT().HashPassword("").Return("", errors.New("password cannot be empty"))

		user, err := svc.Register(ctx, "gopher", "")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, repo, _, _ := NewMock(t)
		repo.EXPECT().FindByLogin(ctx, "gopher").Return(nil, errors.New("database error"))

		user, err := svc.Register(ctx, "gopher", "password123")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful authentication", func(t *testing.T) {
		svc, repo, hashService, _ := NewMock(t)
		user := &domain.User{ID: "u-1", Login: "gopher", PasswordHash: "hashed"}
		repo.EXPECT().FindByLogin(ctx, "gopher").Return(user, nil)
		hashService.EXPECT().ComparePassword("hashed", "password123").Return(true)

		result, err := svc.Authenticate(ctx, "gopher", "password123")
		assert.NoError(t, err)
		assert.Equal(t, user, result)
	})

	t.Run("Unknown login", func(t *testing.T) {
		svc, repo, _, _ := NewMock(t)
		repo.EXPECT().FindByLogin(ctx, "nobody").Return(nil, nil)

		result, err := svc.Authenticate(ctx, "nobody", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, result)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, repo, hashService, _ := NewMock(t)
		user := &domain.User{ID: "u-1", Login: "gopher", PasswordHash: "hashed"}
		repo.EXPECT().FindByLogin(ctx, "gopher").Return(user, nil)
		hashService.EXPECT().ComparePassword("hashed", "wrong").Return(false)

		result, err := svc.Authenticate(ctx, "gopher", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, result)
	})
}

func TestService_GenerateToken(t *testing.T) {
	t.Run("Successful generation", func(t *testing.T) {
		svc, _, _, jwtService := NewMock(t)
		jwtService.EXPECT().GenerateJWT("u-1", gomock.Any()).Return("token", nil)

		token, err := svc.GenerateToken("u-1")
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Generation error", func(t *testing.T) {
		svc, _, _, jwtService := NewMock(t)
		jwtService.EXPECT().GenerateJWT("u-1", gomock.Any()).Return("", errors.New("signing error"))

		token, err := svc.GenerateToken("u-1")
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
