package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attemptModel "newfizzbuzz_backend/internals/features/attempts/attempt/model"
	quizModel "newfizzbuzz_backend/internals/features/quizzes/quiz/model"
	quizService "newfizzbuzz_backend/internals/features/quizzes/quiz/service"
	userModel "newfizzbuzz_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&quizModel.QuizModel{},
		&quizModel.RuleModel{},
		&attemptModel.QuizQuestionModel{},
		&attemptModel.AttemptModel{},
		&attemptModel.AttemptAnswerModel{},
	))
	return db
}

func createFizzBuzzQuiz(t *testing.T, db *gorm.DB, authorID uint) *quizModel.QuizModel {
	t.Helper()
	quiz, err := quizService.CreateQuiz(db, "Classic FizzBuzz", authorID, []quizService.RuleInput{
		{Divisor: 3, Word: "Fizz"},
		{Divisor: 5, Word: "Buzz"},
	})
	require.NoError(t, err)
	return quiz
}

func TestCreateAttemptSeedsHundredAnswers(t *testing.T) {
	db := newTestDB(t)
	quiz := createFizzBuzzQuiz(t, db, 1)

	attempt, err := CreateAttempt(db, quiz.QuizID, 7, 30)
	require.NoError(t, err)

	assert.Equal(t, uint(7), attempt.AttemptUserID)
	assert.Equal(t, quiz.QuizID, attempt.AttemptQuizID)
	assert.Equal(t, 30, attempt.AttemptTimeLimit)
	assert.Equal(t, 0, attempt.AttemptTotalQuestions)
	assert.Equal(t, 0, attempt.AttemptCorrectCount)
	require.Len(t, attempt.AttemptAnswers, QuestionCount)

	seen := make(map[uint]bool, QuestionCount)
	for _, a := range attempt.AttemptAnswers {
		assert.Empty(t, a.AttemptAnswerText)
		assert.False(t, a.AttemptAnswerIsCorrect)
		assert.GreaterOrEqual(t, a.AttemptAnswerQuestionID, uint(1))
		assert.LessOrEqual(t, a.AttemptAnswerQuestionID, uint(100))
		seen[a.AttemptAnswerQuestionID] = true
	}
	assert.Len(t, seen, QuestionCount, "question ids must be a permutation of 1..100")
}

func TestCreateAttemptUnknownQuizIsOpaque(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateAttempt(db, 9999, 1, 30)
	require.Error(t, err)
	assert.Equal(t, ErrStartAttempt, err)
	assert.NotContains(t, err.Error(), "quiz")
}

func TestRecordAttemptAnswerUpdatesCorrectCount(t *testing.T) {
	db := newTestDB(t)
	quiz := createFizzBuzzQuiz(t, db, 1)
	attempt, err := CreateAttempt(db, quiz.QuizID, 1, 30)
	require.NoError(t, err)

	require.NoError(t, RecordAttemptAnswer(db, attempt.AttemptID, 3, "Fizz", true))

	var reloaded attemptModel.AttemptModel
	require.NoError(t, db.First(&reloaded, attempt.AttemptID).Error)
	assert.Equal(t, 1, reloaded.AttemptCorrectCount)

	// jawaban salah tidak menambah correct count
	require.NoError(t, RecordAttemptAnswer(db, attempt.AttemptID, 7, "Fizz", false))
	require.NoError(t, db.First(&reloaded, attempt.AttemptID).Error)
	assert.Equal(t, 1, reloaded.AttemptCorrectCount)

	require.NoError(t, RecordAttemptAnswer(db, attempt.AttemptID, 5, "Buzz", true))
	require.NoError(t, db.First(&reloaded, attempt.AttemptID).Error)
	assert.Equal(t, 2, reloaded.AttemptCorrectCount)
}

func TestRecordAttemptAnswerAppendsRows(t *testing.T) {
	db := newTestDB(t)
	quiz := createFizzBuzzQuiz(t, db, 1)
	attempt, err := CreateAttempt(db, quiz.QuizID, 1, 30)
	require.NoError(t, err)

	// submit dua kali untuk soal yang sama: baris baru, bukan overwrite placeholder
	require.NoError(t, RecordAttemptAnswer(db, attempt.AttemptID, 3, "Fizz", true))
	require.NoError(t, RecordAttemptAnswer(db, attempt.AttemptID, 3, "Fizz", true))

	var rows int64
	require.NoError(t, db.Model(&attemptModel.AttemptAnswerModel{}).
		Where("attempt_answer_attempt_id = ?", attempt.AttemptID).
		Count(&rows).Error)
	assert.Equal(t, int64(QuestionCount+2), rows)
}

func TestRecordAttemptAnswerUnknownAttempt(t *testing.T) {
	db := newTestDB(t)

	err := RecordAttemptAnswer(db, 12345, 3, "Fizz", true)
	assert.Equal(t, ErrAttemptNotFound, err)
}

func TestRecountAnsweredQuestions(t *testing.T) {
	db := newTestDB(t)
	quiz := createFizzBuzzQuiz(t, db, 1)
	attempt, err := CreateAttempt(db, quiz.QuizID, 1, 30)
	require.NoError(t, err)

	require.NoError(t, RecordAttemptAnswer(db, attempt.AttemptID, 3, "Fizz", true))
	require.NoError(t, RecordAttemptAnswer(db, attempt.AttemptID, 7, "7", true))
	require.NoError(t, RecountAnsweredQuestions(db, attempt.AttemptID))

	var reloaded attemptModel.AttemptModel
	require.NoError(t, db.First(&reloaded, attempt.AttemptID).Error)
	assert.Equal(t, 2, reloaded.AttemptTotalQuestions)
}

func TestIsAnswerCorrectCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	quiz := createFizzBuzzQuiz(t, db, 1)

	tests := []struct {
		number int
		answer string
		want   bool
	}{
		{3, "Fizz", true},
		{3, "fizz", true},
		{3, "FIZZ", true},
		{3, "Buzz", false},
		{15, "fizzbuzz", true},
		{7, "7", true},
		{7, "Fizz", false},
	}
	for _, tt := range tests {
		got, err := IsAnswerCorrect(db, tt.number, quiz.QuizID, tt.answer)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "number=%d answer=%q", tt.number, tt.answer)
	}
}

func TestGetAttemptByIDLoadsAnswersAndQuiz(t *testing.T) {
	db := newTestDB(t)
	quiz := createFizzBuzzQuiz(t, db, 1)
	attempt, err := CreateAttempt(db, quiz.QuizID, 1, 30)
	require.NoError(t, err)

	got, err := GetAttemptByID(db, attempt.AttemptID)
	require.NoError(t, err)
	assert.Len(t, got.AttemptAnswers, QuestionCount)
	require.NotNil(t, got.Quiz)
	assert.Equal(t, "Classic FizzBuzz", got.Quiz.QuizTitle)
	require.Len(t, got.Quiz.Rules, 2)
	assert.Equal(t, 3, got.Quiz.Rules[0].RuleDivisor)

	_, err = GetAttemptByID(db, 9999)
	assert.Equal(t, ErrAttemptNotFound, err)
}

func TestAttemptListsFilterAndSort(t *testing.T) {
	db := newTestDB(t)
	quizA := createFizzBuzzQuiz(t, db, 1)
	quizB, err := quizService.CreateQuiz(db, "Sevens", 1, []quizService.RuleInput{{Divisor: 7, Word: "Boom"}})
	require.NoError(t, err)

	first, err := CreateAttempt(db, quizA.QuizID, 10, 30)
	require.NoError(t, err)
	second, err := CreateAttempt(db, quizA.QuizID, 10, 60)
	require.NoError(t, err)
	other, err := CreateAttempt(db, quizB.QuizID, 20, 30)
	require.NoError(t, err)

	// pisahkan timestamp supaya urutan DESC terlihat
	base := time.Now().UTC().Add(-time.Hour)
	for i, id := range []uint{first.AttemptID, second.AttemptID, other.AttemptID} {
		require.NoError(t, db.Model(&attemptModel.AttemptModel{}).
			Where("attempt_id = ?", id).
			Update("attempt_started_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	byUser, err := GetAttemptsByUser(db, 10)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, second.AttemptID, byUser[0].AttemptID, "newest attempt first")
	assert.Equal(t, first.AttemptID, byUser[1].AttemptID)

	byUserOnQuiz, err := GetAttemptsByUserOnQuiz(db, 10, quizA.QuizID)
	require.NoError(t, err)
	assert.Len(t, byUserOnQuiz, 2)

	byUserOnQuiz, err = GetAttemptsByUserOnQuiz(db, 20, quizA.QuizID)
	require.NoError(t, err)
	assert.Empty(t, byUserOnQuiz)

	byQuiz, err := GetAttemptsByQuiz(db, quizB.QuizID)
	require.NoError(t, err)
	require.Len(t, byQuiz, 1)
	assert.Equal(t, other.AttemptID, byQuiz[0].AttemptID)
}
