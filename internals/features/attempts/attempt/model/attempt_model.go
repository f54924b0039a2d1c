package model

import (
	"time"

	quizModel "newfizzbuzz_backend/internals/features/quizzes/quiz/model"
)

// AttemptModel merepresentasikan satu sesi pengerjaan quiz oleh user.
// Tidak ada kolom status selesai: completion disimpulkan oleh client
// (semua soal terjawab atau waktu habis).
type AttemptModel struct {
	AttemptID     uint `gorm:"column:attempt_id;primaryKey;autoIncrement" json:"attempt_id"`
	AttemptUserID uint `gorm:"column:attempt_user_id;not null;index" json:"attempt_user_id"`
	AttemptQuizID uint `gorm:"column:attempt_quiz_id;not null;index" json:"attempt_quiz_id"`

	// TotalQuestions adalah running count soal yang SUDAH dijawab
	// (dihitung ulang oleh API layer), bukan kapasitas.
	AttemptCorrectCount   int `gorm:"column:attempt_correct_count;not null;default:0" json:"attempt_correct_count"`
	AttemptTotalQuestions int `gorm:"column:attempt_total_questions;not null;default:0" json:"attempt_total_questions"`
	AttemptTimeLimit      int `gorm:"column:attempt_time_limit;not null" json:"attempt_time_limit"`

	AttemptStartedAt time.Time `gorm:"column:attempt_started_at;autoCreateTime" json:"attempt_started_at"`

	Quiz           *quizModel.QuizModel `gorm:"foreignKey:AttemptQuizID;references:QuizID" json:"quiz,omitempty"`
	AttemptAnswers []AttemptAnswerModel `gorm:"foreignKey:AttemptAnswerAttemptID;references:AttemptID" json:"attempt_answers"`
}

func (AttemptModel) TableName() string {
	return "attempts"
}
