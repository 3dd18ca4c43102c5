package repository

import (
	"context"
	"errors"
	"fmt"

	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/model"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

// Create inserts u. A taken email comes back as errs.ErrAlreadyExists, also
// when a concurrent registration wins the race to the unique index. The
// connection must be opened with TranslateError for that
func (s *UserStore) Create(ctx context.Context, u *model.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %w", errs.ErrAlreadyExists)
		}

		return fmt.Errorf("failed to create user, %w", err)
	}

	return nil
}

func (s *UserStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, "email = ?", email)
}

func (s *UserStore) FullNameTaken(ctx context.Context, fullName string) (bool, error) {
	return s.exists(ctx, "full_name = ?", fullName)
}

// FindByFullName returns the oldest user carrying fullName
func (s *UserStore) FindByFullName(ctx context.Context, fullName string) (*model.User, error) {
	var u model.User

	err := s.db.WithContext(ctx).
		Where("full_name = ?", fullName).
		Order("id").
		First(&u).
		Error
	if err != nil {
		return nil, notFound(err)
	}

	return &u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User

	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}

	return &u, nil
}

// WithFlashcards loads the user together with every card they own
func (s *UserStore) WithFlashcards(ctx context.Context, id uint) (*model.User, error) {
	var u model.User

	err := s.db.WithContext(ctx).
		Preload("Flashcards", func(db *gorm.DB) *gorm.DB {
			return db.Order("flashcards.id")
		}).
		Preload("Flashcards.Language").
		First(&u, id).
		Error
	if err != nil {
		return nil, notFound(err)
	}

	return &u, nil
}

func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}

	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users, %w", err)
	}

	return users, nil
}

func (s *UserStore) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var n int64

	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where(query, args...).
		Count(&n).
		Error
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
