package model

import (
	"time"
)

// QuizModel merepresentasikan tabel quizzes di database
type QuizModel struct {
	QuizID       uint   `gorm:"column:quiz_id;primaryKey;autoIncrement" json:"quiz_id"`
	QuizTitle    string `gorm:"column:quiz_title;size:255;not null" json:"quiz_title"`
	QuizAuthorID uint   `gorm:"column:quiz_author_id;not null;index" json:"quiz_author_id"`

	Rules []RuleModel `gorm:"foreignKey:RuleQuizID;references:QuizID" json:"rules"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
