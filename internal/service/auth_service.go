package service

import (
	"context"
	"errors"
	"os"
	"time"

	"parking/internal/middleware"
	"parking/internal/model"
	"parking/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors the handlers map to HTTP statuses. Credential and
// password mismatches share one error so responses cannot be used to
// enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive user")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
)

// DTOs for request validation
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"rol" binding:"omitempty,oneof=admin empleado"`
}

// UserResponse returns a user without exposing the password hash.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"nombre"`
	Email string    `json:"email"`
	Role  string    `json:"rol"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthService defines authentication business logic.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
}

type authService struct {
	repo repository.UserRepository
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(repo repository.UserRepository) AuthService {
	return &authService{repo: repo}
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrInactiveUser
	}

	tokenString, err := generateToken(user)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: tokenString,
		User:  toUserResponse(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	role := req.Role
	if role == "" {
		role = model.RoleEmployee
	}
	if role != model.RoleAdmin && role != model.RoleEmployee {
		return nil, ErrInvalidRole
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
		Active:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

// generateToken issues an HS256 token with a fixed expiry embedding the
// user's identity and role.
func generateToken(user *model.User) (string, error) {
	expiry := 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRE"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			expiry = parsed
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":     user.ID.String(),
		"email":  user.Email,
		"rol":    user.Role,
		"nombre": user.Name,
		"exp":    time.Now().Add(expiry).Unix(),
	})

	return token.SignedString(middleware.GetJWTSecret())
}
