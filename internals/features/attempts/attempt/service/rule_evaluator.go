package service

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	quizModel "newfizzbuzz_backend/internals/features/quizzes/quiz/model"
)

// CorrectAnswerForNumber menghitung jawaban benar untuk satu angka.
// Rules dievaluasi persis dalam urutan yang diberikan caller (konvensi repo:
// divisor naik); setiap rule yang divisor-nya membagi habis angka menyumbang
// word-nya, digabung tanpa pemisah. Tanpa rule yang cocok, jawabannya adalah
// angka itu sendiri dalam bentuk string desimal.
func CorrectAnswerForNumber(number int, rules []quizModel.RuleModel) string {
	var b strings.Builder
	for _, r := range rules {
		if r.RuleDivisor > 0 && number%r.RuleDivisor == 0 {
			b.WriteString(r.RuleWord)
		}
	}
	if b.Len() == 0 {
		return strconv.Itoa(number)
	}
	return b.String()
}

// GetQuizRules memuat rules sebuah quiz urut divisor naik.
func GetQuizRules(db *gorm.DB, quizID uint) ([]quizModel.RuleModel, error) {
	var rules []quizModel.RuleModel
	err := db.Where("rule_quiz_id = ?", quizID).
		Order("rule_divisor ASC").
		Find(&rules).Error
	return rules, err
}

// IsAnswerCorrect membandingkan jawaban user dengan jawaban hasil evaluasi
// rules quiz. Perbandingan case-insensitive (byte-wise, bukan locale-aware).
func IsAnswerCorrect(db *gorm.DB, number int, quizID uint, answer string) (bool, error) {
	rules, err := GetQuizRules(db, quizID)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(CorrectAnswerForNumber(number, rules), answer), nil
}
