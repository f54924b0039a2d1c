package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizDto "newfizzbuzz_backend/internals/features/quizzes/quiz/dto"
	quizService "newfizzbuzz_backend/internals/features/quizzes/quiz/service"
	helper "newfizzbuzz_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

func parseQuizID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid quiz id")
	}
	return uint(id), nil
}

func toRuleInputs(rules []quizDto.CreateRuleRequest) []quizService.RuleInput {
	out := make([]quizService.RuleInput, 0, len(rules))
	for _, r := range rules {
		out = append(out, quizService.RuleInput{Divisor: r.Divisor, Word: r.Word})
	}
	return out
}

// POST /api/quiz
func (ctrl *QuizController) CreateQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input quizDto.CreateQuizRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()
	if err := input.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title is required; each rule needs a positive divisor and a word")
	}

	quiz, err := quizService.CreateQuiz(ctrl.DB, input.Title, userID, toRuleInputs(input.Rules))
	if err != nil {
		var dup *quizService.DuplicateDivisorError
		if errors.As(err, &dup) {
			return helper.JsonError(c, fiber.StatusBadRequest, dup.Error())
		}
		log.Println("[ERROR] create quiz:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "An error occurred while saving the quiz")
	}

	return helper.JsonCreated(c, "Quiz created successfully", quizDto.ToQuizResponse(quiz))
}

// GET /api/quiz/:id
func (ctrl *QuizController) GetQuiz(c *fiber.Ctx) error {
	quizID, err := parseQuizID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	quiz, err := quizService.GetQuiz(ctrl.DB, quizID)
	if err != nil {
		if err == quizService.ErrQuizNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	return helper.JsonOK(c, "ok", quizDto.ToQuizResponse(quiz))
}

// GET /api/quiz
func (ctrl *QuizController) GetAllQuizzes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	quizzes, total, err := quizService.GetAllQuizzes(ctrl.DB, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quizzes")
	}

	return helper.JsonList(c, "ok", quizDto.ToQuizResponses(quizzes),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/quiz/user/:id?
// Tanpa :id, author diambil dari token (via AuthOptional).
func (ctrl *QuizController) GetUserQuizzes(c *fiber.Ctx) error {
	var authorID uint
	if idStr := c.Params("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil || id == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
		}
		authorID = uint(id)
	} else {
		id, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		authorID = id
	}

	quizzes, err := quizService.GetQuizzesByAuthor(ctrl.DB, authorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quizzes")
	}
	if len(quizzes) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No quizzes found for this user")
	}

	return helper.JsonList(c, "ok", quizDto.ToQuizResponses(quizzes), nil)
}

// PUT /api/quiz/:id
func (ctrl *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := parseQuizID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input quizDto.CreateQuizRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()
	if err := input.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title is required; each rule needs a positive divisor and a word")
	}

	if err := quizService.UpdateQuiz(ctrl.DB, quizID, input.Title, userID, toRuleInputs(input.Rules)); err != nil {
		var dup *quizService.DuplicateDivisorError
		switch {
		case err == quizService.ErrQuizNotFound:
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		case err == quizService.ErrNotQuizAuthor:
			return helper.JsonError(c, fiber.StatusUnauthorized, "You are not authorized to update this quiz")
		case errors.As(err, &dup):
			return helper.JsonError(c, fiber.StatusBadRequest, dup.Error())
		default:
			log.Println("[ERROR] update quiz:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update quiz")
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/quiz/:id
func (ctrl *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := parseQuizID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := quizService.DeleteQuiz(ctrl.DB, quizID, userID); err != nil {
		switch err {
		case quizService.ErrQuizNotFound:
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		case quizService.ErrNotQuizAuthor:
			return helper.JsonError(c, fiber.StatusUnauthorized, "You are not authorized to delete this quiz")
		default:
			log.Println("[ERROR] delete quiz:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete quiz")
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
