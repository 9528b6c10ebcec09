package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/thisistony/aucklandeats-meetup/internal/service/ports"
)

// usernameRe matches the reddit handle format accepted at login. No secret
// is ever verified: login is find-or-create on the claimed handle.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// LoginOrProvision resolves a claimed handle to its user record, creating
// one on first sight. Calling it twice with the same handle yields the
// same user id.
func (s *UserService) LoginOrProvision(ctx context.Context, username string) (*domain.User, error) {
	if !usernameRe.MatchString(username) {
		return nil, fmt.Errorf("%w: invalid username format", domain.ErrValidation)
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user = &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.repo.Create(ctx, user); err != nil {
		// Two first logins racing on the same handle: the unique key
		// decides, the loser reads the winner's row.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return s.repo.GetByUsername(ctx, username)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
