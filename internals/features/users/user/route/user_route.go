package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "newfizzbuzz_backend/internals/features/users/user/controller"
	authMiddleware "newfizzbuzz_backend/internals/middlewares/auth"
)

// UserRoutes: profil hanya untuk request ber-token.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	api.Get("/user/:id", authMiddleware.AuthMiddleware(), ctrl.GetUserByID)
}
