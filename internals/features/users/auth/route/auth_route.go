package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "newfizzbuzz_backend/internals/features/users/auth/controller"
	middlewares "newfizzbuzz_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	grp := api.Group("/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
