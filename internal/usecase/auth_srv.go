package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// badCredentialsMessage is shared by unknown-user and wrong-password failures.
const badCredentialsMessage = "username or password is incorrect"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    TokenIssuer
	passwords PasswordHasher
	log       *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens TokenIssuer,
	passwords PasswordHasher,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		passwords: passwords,
		log:       log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if err := validationError(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists")
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id: %w", err)
	}

	user := &entity.User{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		PasswordHash: hash,
	}

	// A concurrent register can still lose the race; the repository
	// reports the unique violation as a conflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.String("user_id", id.String()), zap.String("username", user.Username))
	return &response.RegisterResponse{ID: id.String()}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		s.log.Warn("Login for unknown username", zap.String("username", req.Username))
		return nil, apperror.Auth(badCredentialsMessage)
	}

	if !s.passwords.VerifyPassword(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperror.Auth(badCredentialsMessage)
	}

	token, expiresAt, err := s.tokens.IssueToken(user.ID.String())
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Truncate(time.Second),
	}, nil
}
