package model

// RuleModel: satu aturan substitusi (divisor → word) milik sebuah quiz.
// Divisor unik per quiz (composite unique index).
type RuleModel struct {
	RuleID      uint   `gorm:"column:rule_id;primaryKey;autoIncrement" json:"rule_id"`
	RuleQuizID  uint   `gorm:"column:rule_quiz_id;not null;uniqueIndex:uq_rules_quiz_divisor" json:"rule_quiz_id"`
	RuleDivisor int    `gorm:"column:rule_divisor;not null;uniqueIndex:uq_rules_quiz_divisor" json:"rule_divisor"`
	RuleWord    string `gorm:"column:rule_word;size:100;not null" json:"rule_word"`
}

func (RuleModel) TableName() string {
	return "rules"
}
