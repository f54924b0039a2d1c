package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "newfizzbuzz_backend/internals/features/quizzes/quiz/controller"
	authMiddleware "newfizzbuzz_backend/internals/middlewares/auth"
)

// QuizPublicRoutes: read-only, tanpa auth wajib.
// Urutan registrasi penting: "/quiz/user/:id?" harus lebih dulu dari "/quiz/:id".
func QuizPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)

	api.Get("/quiz/user/:id?", authMiddleware.AuthOptional(), ctrl.GetUserQuizzes)
	api.Get("/quiz/:id", ctrl.GetQuiz)
	api.Get("/quiz", ctrl.GetAllQuizzes)
}

// QuizPrivateRoutes: mutasi, author-only (dicek di service).
// Auth dipasang per-route supaya tidak membayangi route public se-prefix.
func QuizPrivateRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)
	auth := authMiddleware.AuthMiddleware()

	api.Post("/quiz", auth, ctrl.CreateQuiz)
	api.Put("/quiz/:id", auth, ctrl.UpdateQuiz)
	api.Delete("/quiz/:id", auth, ctrl.DeleteQuiz)
}
