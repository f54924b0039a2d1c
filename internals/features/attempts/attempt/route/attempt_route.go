package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "newfizzbuzz_backend/internals/features/attempts/attempt/controller"
	authMiddleware "newfizzbuzz_backend/internals/middlewares/auth"
)

// AttemptPublicRoutes: route spesifik didaftarkan sebelum "/attempt/:id".
func AttemptPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attemptController.NewAttemptController(db)

	api.Post("/attempt/submit-answer", ctrl.SubmitAnswer)
	api.Get("/attempt/user/:userId/quiz/:quizId", ctrl.GetAttemptsByUserOnQuiz)
	api.Get("/attempt/user/:userId", ctrl.GetAttemptsByUser)
	api.Get("/attempt/quiz/:quizId", ctrl.GetAttemptsByQuiz)
	api.Get("/attempt/:id", ctrl.GetAttemptByID)
}

// AttemptPrivateRoutes: auth per-route, bukan group-level.
func AttemptPrivateRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attemptController.NewAttemptController(db)

	api.Post("/attempt/start", authMiddleware.AuthMiddleware(), ctrl.StartNewAttempt)
}
