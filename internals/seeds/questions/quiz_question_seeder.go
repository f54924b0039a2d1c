package questions

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attemptModel "newfizzbuzz_backend/internals/features/attempts/attempt/model"
)

// SeedQuizQuestions menyemai 100 soal referensi (id == number, 1..100).
// Idempotent: aman dipanggil setiap boot.
func SeedQuizQuestions(db *gorm.DB) error {
	rows := make([]attemptModel.QuizQuestionModel, 0, 100)
	for i := 1; i <= 100; i++ {
		rows = append(rows, attemptModel.QuizQuestionModel{
			QuizQuestionID:     uint(i),
			QuizQuestionNumber: i,
		})
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&rows, 100).Error; err != nil {
		return err
	}
	log.Println("✅ Quiz questions seeded.")
	return nil
}
