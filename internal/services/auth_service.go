package services

import (
	"context"
	"errors"
	"time"

	"delivery_admin/internal/models"
	"delivery_admin/internal/redis"
	"delivery_admin/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.Admin, error)
	SignIn(ctx context.Context, email, password string) (string, *models.Admin, error)
	SignOut(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (*redis.SessionData, error)
}

type authService struct {
	adminRepo  repository.AdminRepository
	sessions   *redis.Client
	sessionTTL time.Duration
}

func NewAuthService(adminRepo repository.AdminRepository, sessions *redis.Client, sessionTTL time.Duration) AuthService {
	return &authService{adminRepo: adminRepo, sessions: sessions, sessionTTL: sessionTTL}
}

func (s *authService) Register(ctx context.Context, email, password string) (*models.Admin, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	existing, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(models.BranchAdmin),
		IsActive:     true,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// SignIn verifies the password and issues a session token stored in
// redis. A wrong email and a wrong password are indistinguishable to
// the caller.
func (s *authService) SignIn(ctx context.Context, email, password string) (string, *models.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if admin == nil || !admin.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		AdminID:   admin.ID,
		Email:     admin.Email,
		Role:      admin.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *authService) Session(ctx context.Context, token string) (*redis.SessionData, error) {
	return s.sessions.GetSession(token)
}
