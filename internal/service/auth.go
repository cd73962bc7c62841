package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/repository"
)

// at least 10 characters with a letter, a digit and a symbol
const passwordPolicyPattern = `^(?=.*[A-Za-z])(?=.*\d)(?=.*[^A-Za-z\d]).{10,}$`

var passwordPolicy = regexp2.MustCompile(passwordPolicyPattern, regexp2.None)

var (
	ErrAdminUsernameExists = repository.ErrAdminUsernameExists
	ErrAdminNotFound       = repository.ErrAdminNotFound
	ErrWrongPassword       = errors.New("wrong password")
	ErrWeakPassword        = errors.New("the password must be at least 10 characters and contain a letter, a number and a symbol")
	ErrInvalidUsername     = errors.New("username is required")
)

type AdminRepository interface {
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	FindByID(ctx context.Context, id uint) (domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (domain.Admin, error)
}

type AuthService struct {
	repo AdminRepository
}

func NewAuthService(repo AdminRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func CheckPasswordPolicy(password string) error {
	ok, err := passwordPolicy.MatchString(password)
	if err != nil {
		return fmt.Errorf("passwordPolicy.MatchString -> %w", err)
	}
	if !ok {
		return ErrWeakPassword
	}

	return nil
}

func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (domain.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Admin{}, ErrInvalidUsername
	}

	if err := CheckPasswordPolicy(password); err != nil {
		return domain.Admin{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Admin{
		Username: username,
		Password: string(hash),
	})
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Admin, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Admin{}, ErrAdminNotFound
		}

		return domain.Admin{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return domain.Admin{}, ErrWrongPassword
	}

	return admin, nil
}

func (s *AuthService) GetAdmin(ctx context.Context, id uint) (domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return admin, nil
}
