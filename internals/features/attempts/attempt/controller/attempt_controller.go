package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptDto "newfizzbuzz_backend/internals/features/attempts/attempt/dto"
	attemptService "newfizzbuzz_backend/internals/features/attempts/attempt/service"
	helper "newfizzbuzz_backend/internals/helpers"
)

type AttemptController struct {
	DB *gorm.DB
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{DB: db}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// POST /api/attempt/start
func (ctrl *AttemptController) StartNewAttempt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input attemptDto.StartAttemptRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "quiz_id and time_limit (seconds) are required")
	}

	attempt, err := attemptService.CreateAttempt(ctrl.DB, input.QuizID, userID, input.TimeLimit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while starting the attempt")
	}

	questions := make([]attemptDto.StartAttemptQuestion, 0, len(attempt.AttemptAnswers))
	for _, a := range attempt.AttemptAnswers {
		questions = append(questions, attemptDto.StartAttemptQuestion{
			ID:     a.AttemptAnswerQuestionID,
			Number: int(a.AttemptAnswerQuestionID),
		})
	}

	return helper.JsonOK(c, "Attempt started", attemptDto.StartAttemptResponse{
		AttemptID: attempt.AttemptID,
		Questions: questions,
	})
}

// POST /api/attempt/submit-answer
func (ctrl *AttemptController) SubmitAnswer(c *fiber.Ctx) error {
	var input attemptDto.SubmitAnswerRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attempt_id, quiz_id and quiz_question_id are required")
	}

	// id soal == angkanya (seed 1..100)
	isCorrect, err := attemptService.IsAnswerCorrect(ctrl.DB, int(input.QuizQuestionID), input.QuizID, input.Answer)
	if err != nil {
		log.Println("[ERROR] grade answer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to grade answer")
	}

	if err := attemptService.RecordAttemptAnswer(ctrl.DB, input.AttemptID, input.QuizQuestionID, input.Answer, isCorrect); err != nil {
		if err == attemptService.ErrAttemptNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt not found")
		}
		log.Println("[ERROR] record answer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record answer")
	}

	// Bookkeeping TotalQuestions di API layer, terpisah dari RecordAttemptAnswer.
	if err := attemptService.RecountAnsweredQuestions(ctrl.DB, input.AttemptID); err != nil {
		log.Println("[WARN] recount answered questions:", err)
	}

	return helper.JsonOK(c, "Answer recorded", fiber.Map{
		"is_correct": isCorrect,
	})
}

// GET /api/attempt/:id
func (ctrl *AttemptController) GetAttemptByID(c *fiber.Ctx) error {
	attemptID, err := parseUintParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attempt ID")
	}

	attempt, err := attemptService.GetAttemptByID(ctrl.DB, attemptID)
	if err != nil {
		if err == attemptService.ErrAttemptNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempt")
	}

	return helper.JsonOK(c, "ok", attemptDto.ToAttemptResponse(attempt))
}

// GET /api/attempt/user/:userId
func (ctrl *AttemptController) GetAttemptsByUser(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	attempts, err := attemptService.GetAttemptsByUser(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}
	if len(attempts) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No attempts found")
	}

	return helper.JsonList(c, "ok", attemptDto.ToAttemptResponses(attempts), nil)
}

// GET /api/attempt/user/:userId/quiz/:quizId
func (ctrl *AttemptController) GetAttemptsByUserOnQuiz(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	quizID, err := parseUintParam(c, "quizId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	attempts, err := attemptService.GetAttemptsByUserOnQuiz(ctrl.DB, userID, quizID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}
	if len(attempts) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No attempts found for this user on this quiz")
	}

	return helper.JsonList(c, "ok", attemptDto.ToAttemptResponses(attempts), nil)
}

// GET /api/attempt/quiz/:quizId
func (ctrl *AttemptController) GetAttemptsByQuiz(c *fiber.Ctx) error {
	quizID, err := parseUintParam(c, "quizId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	attempts, err := attemptService.GetAttemptsByQuiz(ctrl.DB, quizID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}
	if len(attempts) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No attempts found for this quiz")
	}

	return helper.JsonList(c, "ok", attemptDto.ToAttemptResponses(attempts), nil)
}
