package dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	attemptModel "newfizzbuzz_backend/internals/features/attempts/attempt/model"
	quizDto "newfizzbuzz_backend/internals/features/quizzes/quiz/dto"
)

var validate = validator.New()

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type StartAttemptRequest struct {
	QuizID    uint `json:"quiz_id" validate:"required,gt=0"`
	TimeLimit int  `json:"time_limit" validate:"required,gt=0"` // detik
}

func (r *StartAttemptRequest) Validate() error {
	return validate.Struct(r)
}

type SubmitAnswerRequest struct {
	AttemptID      uint   `json:"attempt_id" validate:"required,gt=0"`
	QuizID         uint   `json:"quiz_id" validate:"required,gt=0"`
	QuizQuestionID uint   `json:"quiz_question_id" validate:"required,gt=0"`
	Answer         string `json:"answer"`
}

func (r *SubmitAnswerRequest) Validate() error {
	return validate.Struct(r)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// StartAttemptQuestion: urutan soal yang disajikan ke client
// (urutan list = hasil shuffle saat attempt dibuat).
type StartAttemptQuestion struct {
	ID     uint `json:"id"`
	Number int  `json:"number"`
}

type StartAttemptResponse struct {
	AttemptID uint                   `json:"attempt_id"`
	Questions []StartAttemptQuestion `json:"questions"`
}

type AttemptAnswerResponse struct {
	AttemptAnswerID uint   `json:"attempt_answer_id"`
	QuizQuestionID  uint   `json:"quiz_question_id"`
	Answer          string `json:"answer"`
	IsCorrect       bool   `json:"is_correct"`
}

type AttemptResponse struct {
	AttemptID      uint                    `json:"attempt_id"`
	UserID         uint                    `json:"user_id"`
	QuizID         uint                    `json:"quiz_id"`
	StartedAt      time.Time               `json:"started_at"`
	CorrectCount   int                     `json:"correct_count"`
	TotalQuestions int                     `json:"total_questions"`
	TimeLimit      int                     `json:"time_limit"`
	Quiz           *quizDto.QuizResponse   `json:"quiz,omitempty"`
	Answers        []AttemptAnswerResponse `json:"answers"`
}

func ToAttemptResponse(m *attemptModel.AttemptModel) AttemptResponse {
	answers := make([]AttemptAnswerResponse, 0, len(m.AttemptAnswers))
	for _, a := range m.AttemptAnswers {
		answers = append(answers, AttemptAnswerResponse{
			AttemptAnswerID: a.AttemptAnswerID,
			QuizQuestionID:  a.AttemptAnswerQuestionID,
			Answer:          a.AttemptAnswerText,
			IsCorrect:       a.AttemptAnswerIsCorrect,
		})
	}
	var quiz *quizDto.QuizResponse
	if m.Quiz != nil {
		q := quizDto.ToQuizResponse(m.Quiz)
		quiz = &q
	}
	return AttemptResponse{
		AttemptID:      m.AttemptID,
		UserID:         m.AttemptUserID,
		QuizID:         m.AttemptQuizID,
		StartedAt:      m.AttemptStartedAt,
		CorrectCount:   m.AttemptCorrectCount,
		TotalQuestions: m.AttemptTotalQuestions,
		TimeLimit:      m.AttemptTimeLimit,
		Quiz:           quiz,
		Answers:        answers,
	}
}

func ToAttemptResponses(ms []attemptModel.AttemptModel) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToAttemptResponse(&ms[i]))
	}
	return out
}
