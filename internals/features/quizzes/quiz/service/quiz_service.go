package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	attemptModel "newfizzbuzz_backend/internals/features/attempts/attempt/model"
	quizModel "newfizzbuzz_backend/internals/features/quizzes/quiz/model"
)

var (
	ErrQuizNotFound  = errors.New("quiz not found")
	ErrNotQuizAuthor = errors.New("you are not authorized to modify this quiz")
)

// DuplicateDivisorError menyebut divisor yang bermasalah supaya pesan ke user jelas.
type DuplicateDivisorError struct {
	Divisors []int
}

func (e *DuplicateDivisorError) Error() string {
	parts := make([]string, 0, len(e.Divisors))
	for _, d := range e.Divisors {
		parts = append(parts, fmt.Sprint(d))
	}
	return "Rules contain duplicate numbers: " + strings.Join(parts, ", ")
}

// RuleInput: pasangan (divisor, word) dari request, lepas dari transport layer.
type RuleInput struct {
	Divisor int
	Word    string
}

// findDuplicateDivisors mengembalikan divisor yang muncul lebih dari sekali,
// urut sesuai kemunculan pertama.
func findDuplicateDivisors(rules []RuleInput) []int {
	seen := make(map[int]int, len(rules))
	dups := make([]int, 0)
	for _, r := range rules {
		seen[r.Divisor]++
		if seen[r.Divisor] == 2 {
			dups = append(dups, r.Divisor)
		}
	}
	return dups
}

/* ====================== CREATE ====================== */

func CreateQuiz(db *gorm.DB, title string, authorID uint, rules []RuleInput) (*quizModel.QuizModel, error) {
	if dups := findDuplicateDivisors(rules); len(dups) > 0 {
		return nil, &DuplicateDivisorError{Divisors: dups}
	}

	quiz := quizModel.QuizModel{
		QuizTitle:    title,
		QuizAuthorID: authorID,
		Rules:        make([]quizModel.RuleModel, 0, len(rules)),
	}
	for _, r := range rules {
		quiz.Rules = append(quiz.Rules, quizModel.RuleModel{
			RuleDivisor: r.Divisor,
			RuleWord:    r.Word,
		})
	}

	if err := db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

/* ====================== READ ====================== */

// GetQuiz memuat quiz beserta rules, urut divisor naik (urutan evaluasi yang
// dipakai rule evaluator).
func GetQuiz(db *gorm.DB, quizID uint) (*quizModel.QuizModel, error) {
	var quiz quizModel.QuizModel
	err := db.Preload("Rules", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("rule_divisor ASC")
	}).First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func GetQuizzesByAuthor(db *gorm.DB, authorID uint) ([]quizModel.QuizModel, error) {
	var quizzes []quizModel.QuizModel
	err := db.Preload("Rules", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("rule_divisor ASC")
	}).Where("quiz_author_id = ?", authorID).
		Order("quiz_id DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func GetAllQuizzes(db *gorm.DB, offset, limit int) ([]quizModel.QuizModel, int64, error) {
	var total int64
	if err := db.Model(&quizModel.QuizModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quizzes []quizModel.QuizModel
	q := db.Preload("Rules", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("rule_divisor ASC")
	}).Order("quiz_id DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&quizzes).Error; err != nil {
		return nil, 0, err
	}
	return quizzes, total, nil
}

/* ====================== UPDATE ====================== */

// UpdateQuiz mengganti judul dan seluruh rule set milik quiz.
// Divisor baru dicek terhadap request itu sendiri DAN terhadap rules yang
// masih tersimpan sebelum penggantian.
func UpdateQuiz(db *gorm.DB, quizID uint, title string, authorID uint, rules []RuleInput) error {
	quiz, err := GetQuiz(db, quizID)
	if err != nil {
		return err
	}
	if quiz.QuizAuthorID != authorID {
		return ErrNotQuizAuthor
	}

	if dups := findDuplicateDivisors(rules); len(dups) > 0 {
		return &DuplicateDivisorError{Divisors: dups}
	}

	existing := make(map[int]struct{}, len(quiz.Rules))
	for _, r := range quiz.Rules {
		existing[r.RuleDivisor] = struct{}{}
	}
	for _, r := range rules {
		if _, ok := existing[r.Divisor]; ok {
			return &DuplicateDivisorError{Divisors: []int{r.Divisor}}
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rule_quiz_id = ?", quiz.QuizID).
			Delete(&quizModel.RuleModel{}).Error; err != nil {
			return err
		}
		newRules := make([]quizModel.RuleModel, 0, len(rules))
		for _, r := range rules {
			newRules = append(newRules, quizModel.RuleModel{
				RuleQuizID:  quiz.QuizID,
				RuleDivisor: r.Divisor,
				RuleWord:    r.Word,
			})
		}
		if len(newRules) > 0 {
			if err := tx.Create(&newRules).Error; err != nil {
				return err
			}
		}
		return tx.Model(&quizModel.QuizModel{}).
			Where("quiz_id = ?", quiz.QuizID).
			Update("quiz_title", title).Error
	})
}

/* ====================== DELETE ====================== */

// DeleteQuiz menghapus quiz beserta rules, attempts, dan attempt answers-nya.
func DeleteQuiz(db *gorm.DB, quizID uint, authorID uint) error {
	var quiz quizModel.QuizModel
	if err := db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return err
	}
	if quiz.QuizAuthorID != authorID {
		return ErrNotQuizAuthor
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var attemptIDs []uint
		if err := tx.Model(&attemptModel.AttemptModel{}).
			Where("attempt_quiz_id = ?", quiz.QuizID).
			Pluck("attempt_id", &attemptIDs).Error; err != nil {
			return err
		}
		if len(attemptIDs) > 0 {
			if err := tx.Where("attempt_answer_attempt_id IN ?", attemptIDs).
				Delete(&attemptModel.AttemptAnswerModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("attempt_quiz_id = ?", quiz.QuizID).
				Delete(&attemptModel.AttemptModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("rule_quiz_id = ?", quiz.QuizID).
			Delete(&quizModel.RuleModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quizModel.QuizModel{}, quiz.QuizID).Error
	})
}
