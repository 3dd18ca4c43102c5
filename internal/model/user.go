// Package model defines database models
package model

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"not null;index" json:"full_name"` // Login handle, unique by contract only
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"column:password_hash;not null" json:"-"`

	Flashcards []Flashcard `gorm:"foreignKey:UserID" json:"flashcards,omitempty"`
}
