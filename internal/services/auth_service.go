package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
	"resto_pos_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrUnknownRole        = errors.New("unknown role")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserRequest DTO
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
	Role     string `json:"role"` // "admin" or "staff"; defaults to staff
}

// AuthResponse DTO
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
}

// --- AuthService Interface ---
type AuthService interface {
	RegisterUser(req RegisterUserRequest) (*models.User, error)
	LoginUser(req LoginRequest) (*AuthResponse, error)
	GetUserProfile(userID int64) (*models.User, error)
}

// --- authService Implementation ---
type authService struct {
	userRepo repositories.UserRepository
	db       *sql.DB // Used as SQLExecutor for single repo calls
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repositories.UserRepository, db *sql.DB) AuthService {
	return &authService{userRepo: userRepo, db: db}
}

// RegisterUser handles the business logic for user registration.
func (s *authService) RegisterUser(req RegisterUserRequest) (*models.User, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleStaff
	if req.Role != "" {
		switch strings.ToLower(req.Role) {
		case models.RoleAdmin:
			role = models.RoleAdmin
		case models.RoleStaff:
			role = models.RoleStaff
		default:
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownRole, req.Role)
		}
	}

	user := models.User{
		Username: req.Username,
		Role:     role,
	}
	if req.FullName != "" {
		fullName := req.FullName
		user.FullName = &fullName
	}

	createdUserID, err := s.userRepo.CreateUser(s.db, &user, string(hashedPasswordBytes))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	registeredUser, fetchErr := s.userRepo.FindUserByID(createdUserID)
	if fetchErr != nil {
		// User was created but fetching the full row failed; return what we have.
		user.ID = createdUserID
		user.PasswordHash = ""
		return &user, fmt.Errorf("user registered but failed to retrieve full details: %w", fetchErr)
	}
	registeredUser.PasswordHash = ""
	return registeredUser, nil
}

// LoginUser handles user login and token generation.
func (s *authService) LoginUser(req LoginRequest) (*AuthResponse, error) {
	user, storedHashedPassword, err := s.userRepo.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	user.PasswordHash = ""
	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetUserProfile fetches the profile of the authenticated user.
func (s *authService) GetUserProfile(userID int64) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}
