package application

import (
	"errors"
	"time"

	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/config"
	"github.com/issuehub/issuehub/internal/domain/user"
	"github.com/issuehub/issuehub/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Signup registers a new account. The stored record carries only the
// bcrypt hash, never the plaintext.
func (s *UserService) Signup(input user.SignupInput) (*user.User, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
	}

	if err := s.Repos.User.CreateUser(u); err != nil {
		// Concurrent signup with the same email: the unique constraint
		// is the final arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return u, nil
}

// Login verifies the credentials and issues a bearer token whose
// subject is the user's email.
func (s *UserService) Login(email, password string) (string, *user.User, error) {
	u, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	lifetime := time.Duration(config.TokenLifetimeMin) * time.Minute
	token, err := middleware.GenerateToken(u.Email, lifetime)
	if err != nil {
		return "", nil, err
	}

	return token, &u, nil
}

// ResolveSubject maps a verified token subject to its user record.
func (s *UserService) ResolveSubject(email string) (*user.User, error) {
	u, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	return &u, nil
}
