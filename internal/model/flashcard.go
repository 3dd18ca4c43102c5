package model

import "time"

type Flashcard struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string          `gorm:"not null" json:"question"`
	Answer     string          `gorm:"not null" json:"answer"`
	QSearch    string          `gorm:"column:question_search;not null;default:''" json:"-"` // Case folded Question
	ASearch    string          `gorm:"column:answer_search;not null;default:''" json:"-"`   // Case folded Answer
	Topic      *string         `json:"topic"`
	Status     FlashcardStatus `gorm:"not null;default:'new';size:16" json:"status"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	LanguageID uint            `gorm:"not null" json:"language_id"`
	Language   *Language       `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  *time.Time      `gorm:"autoUpdateTime:false" json:"updated_at"` // Only set once the card is mutated
}
