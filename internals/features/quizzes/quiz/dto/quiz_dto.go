package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	quizModel "newfizzbuzz_backend/internals/features/quizzes/quiz/model"
)

var validate = validator.New()

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateRuleRequest struct {
	Divisor int    `json:"divisor" validate:"required,gt=0"`
	Word    string `json:"word" validate:"required,min=1,max=100"`
}

// CreateQuizRequest dipakai untuk create maupun full-update (rule set diganti utuh).
type CreateQuizRequest struct {
	Title string              `json:"title" validate:"required,min=1,max=255"`
	Rules []CreateRuleRequest `json:"rules" validate:"dive"`
}

func (r *CreateQuizRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	for i := range r.Rules {
		r.Rules[i].Word = strings.TrimSpace(r.Rules[i].Word)
	}
}

func (r *CreateQuizRequest) Validate() error {
	return validate.Struct(r)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type RuleResponse struct {
	RuleID  uint   `json:"rule_id"`
	Divisor int    `json:"divisor"`
	Word    string `json:"word"`
}

type QuizResponse struct {
	QuizID   uint           `json:"quiz_id"`
	Title    string         `json:"title"`
	AuthorID uint           `json:"author_id"`
	Rules    []RuleResponse `json:"rules"`
}

func ToQuizResponse(m *quizModel.QuizModel) QuizResponse {
	rules := make([]RuleResponse, 0, len(m.Rules))
	for _, r := range m.Rules {
		rules = append(rules, RuleResponse{
			RuleID:  r.RuleID,
			Divisor: r.RuleDivisor,
			Word:    r.RuleWord,
		})
	}
	return QuizResponse{
		QuizID:   m.QuizID,
		Title:    m.QuizTitle,
		AuthorID: m.QuizAuthorID,
		Rules:    rules,
	}
}

func ToQuizResponses(ms []quizModel.QuizModel) []QuizResponse {
	out := make([]QuizResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToQuizResponse(&ms[i]))
	}
	return out
}
