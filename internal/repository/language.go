package repository

import (
	"context"
	"fmt"
	"strings"

	"linguaai/flashcards-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LanguageStore struct {
	db *gorm.DB
}

// NormalizeCode is the canonical form codes are stored and looked up in
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// GetOrCreate returns the language registered under code, creating it when
// missing. An existing record is returned untouched even if name differs
func (s *LanguageStore) GetOrCreate(ctx context.Context, code string, name *string) (*model.Language, error) {
	code = NormalizeCode(code)

	l := model.Language{Code: code, Name: name}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&l).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to create language, %w", err)
	}

	found, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return found, nil
}

// FindByCode returns errs.ErrNotFound when no language uses code
func (s *LanguageStore) FindByCode(ctx context.Context, code string) (*model.Language, error) {
	var l model.Language

	err := s.db.WithContext(ctx).
		Where("code = ?", NormalizeCode(code)).
		First(&l).
		Error
	if err != nil {
		return nil, notFound(err)
	}

	return &l, nil
}

func (s *LanguageStore) List(ctx context.Context) ([]model.Language, error) {
	langs := []model.Language{}

	if err := s.db.WithContext(ctx).Order("code").Find(&langs).Error; err != nil {
		return nil, fmt.Errorf("failed to list languages, %w", err)
	}

	return langs, nil
}
