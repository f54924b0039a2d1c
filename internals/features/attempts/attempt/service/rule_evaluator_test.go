package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	quizModel "newfizzbuzz_backend/internals/features/quizzes/quiz/model"
)

func fizzBuzzRules() []quizModel.RuleModel {
	return []quizModel.RuleModel{
		{RuleDivisor: 3, RuleWord: "Fizz"},
		{RuleDivisor: 5, RuleWord: "Buzz"},
	}
}

func TestCorrectAnswerForNumber(t *testing.T) {
	tests := []struct {
		name   string
		number int
		rules  []quizModel.RuleModel
		want   string
	}{
		{"both divisors match", 15, fizzBuzzRules(), "FizzBuzz"},
		{"no divisor matches", 7, fizzBuzzRules(), "7"},
		{"first divisor matches", 9, fizzBuzzRules(), "Fizz"},
		{"second divisor matches", 10, fizzBuzzRules(), "Buzz"},
		{"smallest input", 1, fizzBuzzRules(), "1"},
		{"no rules at all", 42, nil, "42"},
		{"single custom rule", 14, []quizModel.RuleModel{{RuleDivisor: 7, RuleWord: "Boom"}}, "Boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CorrectAnswerForNumber(tt.number, tt.rules))
		})
	}
}

func TestCorrectAnswerForNumberRespectsCallerOrder(t *testing.T) {
	reversed := []quizModel.RuleModel{
		{RuleDivisor: 5, RuleWord: "Buzz"},
		{RuleDivisor: 3, RuleWord: "Fizz"},
	}
	assert.Equal(t, "BuzzFizz", CorrectAnswerForNumber(15, reversed))
}

func TestCorrectAnswerForNumberFallbackIffNoMatch(t *testing.T) {
	// jawaban == bentuk desimal angka  <=>  tidak ada divisor yang membagi habis
	for n := 1; n <= 100; n++ {
		got := CorrectAnswerForNumber(n, fizzBuzzRules())
		if n%3 == 0 || n%5 == 0 {
			assert.NotEqual(t, strconv.Itoa(n), got, "number %d", n)
		} else {
			assert.Equal(t, strconv.Itoa(n), got, "number %d", n)
		}
	}
}
