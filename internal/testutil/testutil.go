// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"testing"

	"linguaai/flashcards-api/db"
	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB creates a migrated in-memory SQLite database.
// A single connection keeps every query on the same in-memory database
func NewTestDB(t *testing.T) (*gorm.DB, *repository.Repository) {
	t.Helper()

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := g.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, db.Migrate(g))

	return g, repository.New(g)
}

// NewTestUser inserts a user with an unusable password hash.
func NewTestUser(t *testing.T, repo *repository.Repository, fullName string) *model.User {
	t.Helper()

	u := &model.User{
		FullName: fullName,
		Email:    fullName + "@example.com",
		Password: "x",
	}
	require.NoError(t, repo.Users.Create(context.Background(), u))

	return u
}

// NewTestLanguage registers code.
func NewTestLanguage(t *testing.T, repo *repository.Repository, code string) *model.Language {
	t.Helper()

	l, err := repo.Languages.GetOrCreate(context.Background(), code, nil)
	require.NoError(t, err)

	return l
}

// NewTestFlashcard creates a card owned by userID in language code.
func NewTestFlashcard(t *testing.T, repo *repository.Repository, userID uint, code, question, answer string) *model.Flashcard {
	t.Helper()

	f, err := repo.Flashcards.Create(context.Background(), userID, repository.NewFlashcard{
		Question:     question,
		Answer:       answer,
		LanguageCode: code,
	})
	require.NoError(t, err)

	return f
}
