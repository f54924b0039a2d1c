// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptRoute "newfizzbuzz_backend/internals/features/attempts/attempt/route"
	quizRoute "newfizzbuzz_backend/internals/features/quizzes/quiz/route"
	authRoute "newfizzbuzz_backend/internals/features/users/auth/route"
	userRoute "newfizzbuzz_backend/internals/features/users/user/route"
)

var startTime time.Time

// SetupRoutes memasang semua route di bawah /api. Auth TIDAK dipasang di
// level group: Group("/api", handler) di fiber berlaku sebagai Use untuk
// SEMUA request berprefix /api, termasuk route public. Endpoint yang butuh
// auth memasang AuthMiddleware per-route di file route masing-masing.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Mounting Quiz routes...")
	quizRoute.QuizPublicRoutes(api, db)
	quizRoute.QuizPrivateRoutes(api, db)

	log.Println("[INFO] Mounting Attempt routes...")
	attemptRoute.AttemptPublicRoutes(api, db)
	attemptRoute.AttemptPrivateRoutes(api, db)
}
