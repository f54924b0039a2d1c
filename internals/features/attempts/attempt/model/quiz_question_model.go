package model

// QuizQuestionModel: data referensi tetap, 100 baris (id == number, 1..100),
// dipakai bersama oleh semua quiz.
type QuizQuestionModel struct {
	QuizQuestionID     uint `gorm:"column:quiz_question_id;primaryKey" json:"quiz_question_id"`
	QuizQuestionNumber int  `gorm:"column:quiz_question_number;not null" json:"quiz_question_number"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}
