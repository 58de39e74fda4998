package services

import (
	"testing"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/repositories"
	"resto_pos_backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[string]*models.User
	hashes map[string]string
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*models.User),
		hashes: make(map[string]string),
	}
}

func (f *fakeUserRepo) CreateUser(_ repositories.SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	if _, exists := f.users[user.Username]; exists {
		return 0, repositories.ErrDuplicateKey
	}
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	stored.IsActive = true
	f.users[user.Username] = &stored
	f.hashes[user.Username] = hashedPassword
	return f.nextID, nil
}

func (f *fakeUserRepo) FindUserByUsername(username string) (*models.User, string, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, "", repositories.ErrNotFound
	}
	cp := *user
	return &cp, f.hashes[username], nil
}

func (f *fakeUserRepo) FindUserByID(userID int64) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func TestRegisterUser_DefaultsToStaffRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	user, err := svc.RegisterUser(RegisterUserRequest{Username: "maria", Password: "s3cretpass"})
	require.NoError(t, err)

	assert.Equal(t, models.RoleStaff, user.Role)
	assert.Empty(t, user.PasswordHash)

	// The stored hash must verify against the original password.
	hash := repo.hashes["maria"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cretpass")))
}

func TestRegisterUser_AdminRoleNormalized(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil)

	user, err := svc.RegisterUser(RegisterUserRequest{Username: "boss", Password: "s3cretpass", Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestRegisterUser_UnknownRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil)

	user, err := svc.RegisterUser(RegisterUserRequest{Username: "x", Password: "s3cretpass", Role: "owner"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.RegisterUser(RegisterUserRequest{Username: "maria", Password: "s3cretpass"})
	require.NoError(t, err)

	user, err := svc.RegisterUser(RegisterUserRequest{Username: "maria", Password: "otherpass1"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestLoginUser_Success(t *testing.T) {
	utils.InitJWT("test-secret")
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.RegisterUser(RegisterUserRequest{Username: "maria", Password: "s3cretpass"})
	require.NoError(t, err)

	resp, err := svc.LoginUser(LoginRequest{Username: "maria", Password: "s3cretpass"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "maria", resp.User.Username)
	assert.Empty(t, resp.User.PasswordHash)

	claims, err := utils.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, models.RoleStaff, claims.Role)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	utils.InitJWT("test-secret")
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.RegisterUser(RegisterUserRequest{Username: "maria", Password: "s3cretpass"})
	require.NoError(t, err)

	resp, err := svc.LoginUser(LoginRequest{Username: "maria", Password: "wrongpass"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UnknownUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil)

	resp, err := svc.LoginUser(LoginRequest{Username: "ghost", Password: "whatever1"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_InactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.RegisterUser(RegisterUserRequest{Username: "maria", Password: "s3cretpass"})
	require.NoError(t, err)
	repo.users["maria"].IsActive = false

	resp, err := svc.LoginUser(LoginRequest{Username: "maria", Password: "s3cretpass"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil)

	user, err := svc.GetUserProfile(999)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
