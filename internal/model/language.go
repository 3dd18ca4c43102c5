package model

type Language struct {
	ID   uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Code string  `gorm:"uniqueIndex;not null;size:16" json:"code"`
	Name *string `json:"name"`
}
