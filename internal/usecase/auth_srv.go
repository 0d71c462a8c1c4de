package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/internal/data/repository"
	"github.com/monnybrand/the-shots-system/internal/dto/request"
	"github.com/monnybrand/the-shots-system/internal/dto/response"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
}

type authService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewAuthService(users repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		users: users,
		log:   log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Passwords never hit the store in plaintext
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// Every self-registered account is a client; admins are provisioned
	// directly in the store.
	user := &entity.User{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleClient,
	}

	// The unique constraint on email is the source of truth for
	// duplicates; no racy pre-check.
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			s.log.Warn("Duplicate registration attempt", zap.String("email", req.Email))
			return nil, fmt.Errorf("email already exists")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.RegisterResponse{UserID: user.ID}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// Same answer for unknown email and wrong password
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid email or password")
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return response.UserToResponse(user), nil
}
