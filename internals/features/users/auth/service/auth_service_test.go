package service

import (
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"newfizzbuzz_backend/internals/configs"
	authHelper "newfizzbuzz_backend/internals/features/users/auth/helper"
	userModel "newfizzbuzz_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))
	return db
}

func setTestSecret(t *testing.T) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestRegisterUserHashesPassword(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotZero(t, user.UserID)
	assert.Equal(t, "alice@example.com", user.UserEmail)
	assert.NotEqual(t, "s3cret-pass", user.UserPassword)
	assert.NoError(t, authHelper.CheckPasswordHash(user.UserPassword, "s3cret-pass"))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "alice@example.com", "first")
	require.NoError(t, err)

	_, err = RegisterUser(db, "alice@example.com", "second")
	assert.Equal(t, ErrEmailTaken, err)
}

func TestLoginUserIssuesToken(t *testing.T) {
	db := newTestDB(t)
	setTestSecret(t)

	registered, err := RegisterUser(db, "bob@example.com", "hunter2pass")
	require.NoError(t, err)

	token, user, err := LoginUser(db, "bob@example.com", "hunter2pass")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, registered.UserID, user.UserID)

	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tk.Method)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprint(registered.UserID), claims["id"])
	assert.Equal(t, "bob@example.com", claims["email"])
	assert.Equal(t, "access", claims["typ"])
}

func TestLoginUserInvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	setTestSecret(t)

	_, err := RegisterUser(db, "carol@example.com", "correct-horse")
	require.NoError(t, err)

	_, _, err = LoginUser(db, "carol@example.com", "wrong-horse")
	assert.Equal(t, ErrInvalidCredentials, err)

	// email tak terdaftar memakai error yang sama
	_, _, err = LoginUser(db, "nobody@example.com", "whatever123")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestIssueAccessTokenRequiresSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = old })

	_, err := IssueAccessToken(&userModel.UserModel{UserID: 1, UserEmail: "x@example.com"})
	assert.Equal(t, ErrMissingJWTSecret, err)
}
