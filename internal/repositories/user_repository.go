package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resto_pos_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// UserRepository defines the interface for user account database operations.
type UserRepository interface {
	CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error)
	FindUserByUsername(username string) (*models.User, string, error) // Returns User, HashedPassword, Error
	FindUserByID(userID int64) (*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts a new user. It expects an SQLExecutor which can be a
// *sql.DB or *sql.Tx. IsActive defaults to true for new accounts.
func (r *userRepository) CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	query := `INSERT INTO users (username, password_hash, full_name, role, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	currentTime := time.Now()
	role := user.Role
	if role == "" {
		role = models.RoleStaff
	}

	var userID int64
	err := executor.QueryRow(query,
		user.Username,
		hashedPassword,
		user.FullName, // Can be nil
		role,
		true,
		currentTime,
		currentTime,
	).Scan(&userID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return userID, nil
}

// FindUserByUsername retrieves a user by username. It returns the user model,
// their hashed password, and an error if any.
func (r *userRepository) FindUserByUsername(username string) (*models.User, string, error) {
	user := &models.User{}
	var hashedPassword string
	query := `SELECT id, username, password_hash, full_name, role, is_active, created_at, updated_at
	          FROM users
	          WHERE username = $1`

	err := r.db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &hashedPassword, &user.FullName, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding user by username %q: %v", ErrDatabaseError, username, err)
	}
	return user, hashedPassword, nil
}

// FindUserByID retrieves a user by ID. The password hash is not populated.
func (r *userRepository) FindUserByID(userID int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, full_name, role, is_active, created_at, updated_at
	          FROM users
	          WHERE id = $1`

	err := r.db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.FullName, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user by ID %d: %v", ErrDatabaseError, userID, err)
	}
	return user, nil
}
