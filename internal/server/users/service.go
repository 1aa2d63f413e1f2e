package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/common"
	"github.com/dmitrijs2005/gophadmin/internal/server/auth"
	"github.com/dmitrijs2005/gophadmin/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

// SignupInput is what POST /signup accepts.
type SignupInput struct {
	Username      string
	Email         string
	Password      string
	SuperAdminKey string
}

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	superAdminKey               []byte
	accessTokenValidityDuration time.Duration
	now                         func() time.Time
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		superAdminKey:               []byte(cfg.SuperAdminKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		now:                         time.Now,
	}
}

// Signup creates an admin account. The super admin key is checked first,
// so a wrong key is reported even for otherwise invalid input.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*User, error) {
	if subtle.ConstantTimeCompare([]byte(in.SuperAdminKey), s.superAdminKey) != 1 {
		return nil, common.ErrorForbidden
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		UserName:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         RoleAdmin,
		Status:       StatusActive,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}
	return user, nil
}

// Login checks an admin's password and returns a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email, RoleAdmin)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", common.ErrorUnauthorized
	}

	return auth.GenerateToken(user.ID, auth.RoleAdmin, s.jwtSecret, s.accessTokenValidityDuration)
}

// AddUser stores a regular (non-admin) account. It backs the demo seed.
func (s *Service) AddUser(ctx context.Context, username, email string, status Status, createdAt time.Time) (*User, error) {
	if !status.Valid() {
		return nil, common.ErrorInvalidStatus
	}
	return s.repo.Create(ctx, &User{
		UserName:  username,
		Email:     email,
		Role:      RoleUser,
		Status:    status,
		CreatedAt: createdAt.UTC(),
	})
}

// List returns every non-admin account in creation order.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*User, 0, len(all))
	for _, u := range all {
		if u.Role != RoleAdmin {
			list = append(list, u)
		}
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role == RoleAdmin {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return common.ErrorInvalidStatus
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Authorize validates a bearer token and returns the admin id it carries.
func (s *Service) Authorize(token string) (string, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}
	if claims.Role != auth.RoleAdmin {
		return "", common.ErrorForbidden
	}
	return claims.Subject, nil
}
