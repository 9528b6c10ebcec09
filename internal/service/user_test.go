package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/thisistony/aucklandeats-meetup/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_LoginOrProvision_NewUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "kiwi_foodie").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.LoginOrProvision(context.Background(), "kiwi_foodie")

	require.NoError(t, err)
	assert.Equal(t, "kiwi_foodie", user.Username)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_LoginOrProvision_ExistingUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	existing := &domain.User{ID: "u1", Username: "kiwi_foodie", CreatedAt: time.Now()}
	repo.EXPECT().GetByUsername(mock.Anything, "kiwi_foodie").Return(existing, nil)

	user, err := svc.LoginOrProvision(context.Background(), "kiwi_foodie")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_LoginOrProvision_SameHandleSameUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "kiwi_foodie").Return(nil, domain.ErrUserNotFound).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	first, err := svc.LoginOrProvision(context.Background(), "kiwi_foodie")
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(mock.Anything, "kiwi_foodie").Return(first, nil).Once()

	second, err := svc.LoginOrProvision(context.Background(), "kiwi_foodie")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUserService_LoginOrProvision_InvalidFormat(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	for _, username := range []string{"", "ab", "has space", "way_too_long_for_a_reddit_handle", "bad!char"} {
		_, err := svc.LoginOrProvision(context.Background(), username)
		require.Error(t, err, "username %q", username)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestUserService_LoginOrProvision_CreateRace(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	winner := &domain.User{ID: "u1", Username: "kiwi_foodie"}

	repo.EXPECT().GetByUsername(mock.Anything, "kiwi_foodie").Return(nil, domain.ErrUserNotFound).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken).Once()
	repo.EXPECT().GetByUsername(mock.Anything, "kiwi_foodie").Return(winner, nil).Once()

	user, err := svc.LoginOrProvision(context.Background(), "kiwi_foodie")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_LoginOrProvision_LookupError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "kiwi_foodie").Return(nil, errors.New("db down"))

	_, err := svc.LoginOrProvision(context.Background(), "kiwi_foodie")

	require.Error(t, err)
}

func TestUserService_GetByID(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	user, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}
