package service

import (
	"context"
	"errors"
	"sync"

	"innovated/internal/model"
	"innovated/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
)

type AuthService interface {
	// Login verifies a username/password pair and returns the matching
	// user, or ErrInvalidCredentials
	Login(ctx context.Context, username, password string) (*model.User, error)
	// Register creates a new user unless the username is already taken
	Register(ctx context.Context, u *model.User) (*model.User, error)
}

type authService struct {
	storage repository.Storage

	// registerMu serializes the username check with the insert. The
	// storage layer itself enforces no uniqueness, so without this two
	// concurrent registrations could both observe the name as free.
	registerMu sync.Mutex
}

func NewAuthService(storage repository.Storage) AuthService {
	return &authService{storage: storage}
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	// Demo flow: passwords are stored and compared in plain form, no
	// tokens are issued on success.
	if u == nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *authService) Register(ctx context.Context, u *model.User) (*model.User, error) {
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	existing, err := s.storage.GetUserByUsername(ctx, u.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	// Only the username is checked for duplicates; two accounts may share
	// an email address.
	return s.storage.CreateUser(ctx, u)
}
