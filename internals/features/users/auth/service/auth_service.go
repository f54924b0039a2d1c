package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"newfizzbuzz_backend/internals/configs"
	authHelper "newfizzbuzz_backend/internals/features/users/auth/helper"
	userModel "newfizzbuzz_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET belum diset")
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", ErrMissingJWTSecret
	}
	return secret, nil
}

/* ==========================
   REGISTER
========================== */

// RegisterUser membuat user baru dengan password ter-hash (bcrypt).
func RegisterUser(db *gorm.DB, email, password string) (*userModel.UserModel, error) {
	var existing userModel.UserModel
	err := db.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserEmail:    email,
		UserPassword: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

/* ==========================
   LOGIN
========================== */

// LoginUser memverifikasi kredensial dan menerbitkan access token.
// Kredensial salah (email tak terdaftar ATAU password salah) mengembalikan
// satu error yang sama.
func LoginUser(db *gorm.DB, email, password string) (string, *userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := IssueAccessToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

/* ==========================
   TOKEN
========================== */

// IssueAccessToken menandatangani token HS256 dengan claim user id
// yang dikonsumsi auth middleware.
func IssueAccessToken(user *userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := nowUTC()
	idStr := strconv.FormatUint(uint64(user.UserID), 10)
	claims := jwt.MapClaims{
		"typ":   "access",
		"sub":   idStr,
		"id":    idStr,
		"email": user.UserEmail,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
