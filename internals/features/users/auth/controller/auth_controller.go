package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDto "newfizzbuzz_backend/internals/features/users/auth/dto"
	authService "newfizzbuzz_backend/internals/features/users/auth/service"
	userDto "newfizzbuzz_backend/internals/features/users/user/dto"
	helper "newfizzbuzz_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var input authDto.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()
	if err := input.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password (min 8 chars) are required")
	}

	user, err := authService.RegisterUser(ctrl.DB, input.Email, input.Password)
	if err != nil {
		if err == authService.ErrEmailTaken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User registered successfully", userDto.ToUserResponse(user))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var input authDto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()
	if err := input.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	token, user, err := authService.LoginUser(ctrl.DB, input.Email, input.Password)
	if err != nil {
		if err == authService.ErrInvalidCredentials {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] login:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"user":         userDto.ToUserResponse(user),
	})
}
