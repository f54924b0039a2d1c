package model

// AttemptAnswerModel: satu jawaban user untuk satu soal dalam satu attempt.
// Disemai 100 baris kosong saat attempt dibuat; submit jawaban menambah baris
// baru (append, bukan upsert).
type AttemptAnswerModel struct {
	AttemptAnswerID         uint   `gorm:"column:attempt_answer_id;primaryKey;autoIncrement" json:"attempt_answer_id"`
	AttemptAnswerAttemptID  uint   `gorm:"column:attempt_answer_attempt_id;not null;index" json:"attempt_answer_attempt_id"`
	AttemptAnswerQuestionID uint   `gorm:"column:attempt_answer_question_id;not null;index" json:"attempt_answer_question_id"`
	AttemptAnswerText       string `gorm:"column:attempt_answer_text;type:text;not null;default:''" json:"attempt_answer_text"`
	AttemptAnswerIsCorrect  bool   `gorm:"column:attempt_answer_is_correct;not null;default:false" json:"attempt_answer_is_correct"`
}

func (AttemptAnswerModel) TableName() string {
	return "attempt_answers"
}
