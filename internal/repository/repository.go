// Package repository wraps every query the service runs against the
// relational store. Flashcard methods take the caller's user id explicitly
// and put it in the WHERE clause of every statement
package repository

import (
	"errors"
	"strings"

	"linguaai/flashcards-api/internal/errs"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

type Repository struct {
	Users      *UserStore
	Languages  *LanguageStore
	Flashcards *FlashcardStore
}

func New(db *gorm.DB) *Repository {
	langs := &LanguageStore{db: db}

	return &Repository{
		Users:      &UserStore{db: db},
		Languages:  langs,
		Flashcards: &FlashcardStore{db: db, langs: langs},
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}

	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// fold is the form question and answer are searched in. SQL LOWER only
// handles ASCII on SQLite so folding happens here on write and on search
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsPattern builds a LIKE pattern matching the folded s anywhere
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(fold(s)) + "%"
}
