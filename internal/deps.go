package internal

import (
	"linguaai/flashcards-api/config"
	"linguaai/flashcards-api/internal/repository"
	"linguaai/flashcards-api/internal/service"
	"linguaai/flashcards-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Repo   *repository.Repository
	Hasher *security.Hasher
	Tokens *security.TokenService
	Chat   *service.Chat
}
