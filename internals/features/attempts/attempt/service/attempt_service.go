package service

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	attemptModel "newfizzbuzz_backend/internals/features/attempts/attempt/model"
	quizService "newfizzbuzz_backend/internals/features/quizzes/quiz/service"
)

var (
	ErrAttemptNotFound = errors.New("Attempt not found")

	// ErrStartAttempt: pesan tunggal untuk semua kegagalan saat memulai attempt
	// (quiz tidak ada maupun kegagalan persist); detail internal tidak bocor ke caller.
	ErrStartAttempt = errors.New("an error occurred while starting the attempt")
)

// Jumlah soal tetap per attempt: angka 1..100.
const QuestionCount = 100

/* ====================== CREATE ====================== */

// CreateAttempt membuat attempt baru untuk sebuah quiz: mengacak angka 1..100
// (sumber random baru per pemanggilan) dan menyemai 100 baris jawaban kosong.
// Urutan baris jawaban = urutan penyajian soal ke client.
// TotalQuestions mulai dari 0 (running count soal terjawab, bukan kapasitas).
func CreateAttempt(db *gorm.DB, quizID, userID uint, timeLimit int) (*attemptModel.AttemptModel, error) {
	if _, err := quizService.GetQuiz(db, quizID); err != nil {
		log.Printf("[ERROR] start attempt: %v", err)
		return nil, ErrStartAttempt
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	numbers := make([]int, QuestionCount)
	for i := range numbers {
		numbers[i] = i + 1
	}
	rng.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})

	attempt := attemptModel.AttemptModel{
		AttemptUserID:         userID,
		AttemptQuizID:         quizID,
		AttemptTimeLimit:      timeLimit,
		AttemptCorrectCount:   0,
		AttemptTotalQuestions: 0,
		AttemptAnswers:        make([]attemptModel.AttemptAnswerModel, 0, QuestionCount),
	}
	for _, n := range numbers {
		attempt.AttemptAnswers = append(attempt.AttemptAnswers, attemptModel.AttemptAnswerModel{
			AttemptAnswerQuestionID: uint(n), // id soal == angkanya
			AttemptAnswerText:       "",
			AttemptAnswerIsCorrect:  false,
		})
	}

	if err := db.Create(&attempt).Error; err != nil {
		log.Printf("[ERROR] start attempt: %v", err)
		return nil, ErrStartAttempt
	}
	return &attempt, nil
}

/* ====================== RECORD ANSWER ====================== */

// RecordAttemptAnswer menambahkan baris jawaban baru (append, bukan overwrite
// baris placeholder) lalu menghitung ulang CorrectCount dari seluruh baris
// jawaban attempt tersebut.
func RecordAttemptAnswer(db *gorm.DB, attemptID, quizQuestionID uint, answer string, isCorrect bool) error {
	var attempt attemptModel.AttemptModel
	if err := db.First(&attempt, attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttemptNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		row := attemptModel.AttemptAnswerModel{
			AttemptAnswerAttemptID:  attempt.AttemptID,
			AttemptAnswerQuestionID: quizQuestionID,
			AttemptAnswerText:       answer,
			AttemptAnswerIsCorrect:  isCorrect,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		var correct int64
		if err := tx.Model(&attemptModel.AttemptAnswerModel{}).
			Where("attempt_answer_attempt_id = ? AND attempt_answer_is_correct = ?", attempt.AttemptID, true).
			Count(&correct).Error; err != nil {
			return err
		}
		return tx.Model(&attemptModel.AttemptModel{}).
			Where("attempt_id = ?", attempt.AttemptID).
			Update("attempt_correct_count", int(correct)).Error
	})
}

// RecountAnsweredQuestions menghitung ulang TotalQuestions sebagai jumlah
// baris jawaban yang teksnya tidak kosong, lalu mem-persist hasilnya.
// Dipanggil API layer setelah tiap submit (bookkeeping terpisah dari
// RecordAttemptAnswer, dipertahankan dari desain asli).
func RecountAnsweredQuestions(db *gorm.DB, attemptID uint) error {
	var answered int64
	if err := db.Model(&attemptModel.AttemptAnswerModel{}).
		Where("attempt_answer_attempt_id = ? AND attempt_answer_text <> ''", attemptID).
		Count(&answered).Error; err != nil {
		return err
	}
	return db.Model(&attemptModel.AttemptModel{}).
		Where("attempt_id = ?", attemptID).
		Update("attempt_total_questions", int(answered)).Error
}

/* ====================== READ ====================== */

func preloadAnswers(db *gorm.DB) *gorm.DB {
	return db.Preload("AttemptAnswers", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("attempt_answer_id ASC")
	})
}

// GetAttemptByID memuat attempt beserta jawaban dan quiz-nya.
func GetAttemptByID(db *gorm.DB, attemptID uint) (*attemptModel.AttemptModel, error) {
	var attempt attemptModel.AttemptModel
	err := preloadAnswers(db).
		Preload("Quiz").
		Preload("Quiz.Rules", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("rule_divisor ASC")
		}).
		First(&attempt, attemptID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

func GetAttemptsByUser(db *gorm.DB, userID uint) ([]attemptModel.AttemptModel, error) {
	var attempts []attemptModel.AttemptModel
	err := preloadAnswers(db).
		Where("attempt_user_id = ?", userID).
		Order("attempt_started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func GetAttemptsByUserOnQuiz(db *gorm.DB, userID, quizID uint) ([]attemptModel.AttemptModel, error) {
	var attempts []attemptModel.AttemptModel
	err := preloadAnswers(db).
		Where("attempt_user_id = ? AND attempt_quiz_id = ?", userID, quizID).
		Order("attempt_started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func GetAttemptsByQuiz(db *gorm.DB, quizID uint) ([]attemptModel.AttemptModel, error) {
	var attempts []attemptModel.AttemptModel
	err := preloadAnswers(db).
		Where("attempt_quiz_id = ?", quizID).
		Order("attempt_started_at DESC").
		Find(&attempts).Error
	return attempts, err
}
