package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/model"

	"gorm.io/gorm"
)

const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 10
)

type FlashcardStore struct {
	db    *gorm.DB
	langs *LanguageStore
}

type NewFlashcard struct {
	Question     string
	Answer       string
	Topic        *string
	LanguageCode string
}

type FlashcardChanges struct {
	Question string
	Answer   string
	Status   model.FlashcardStatus
}

type ListOpts struct {
	Skip   int
	Limit  int
	Search string
}

type Page struct {
	Items []model.Flashcard `json:"items"`
	Total int64             `json:"total"`
	Skip  int               `json:"skip"`
	Limit int               `json:"limit"`
}

// Filter narrows Query to a subset of an owner's cards
type Filter struct {
	Statuses    []model.FlashcardStatus
	NotStatuses []model.FlashcardStatus
	NewestFirst bool
	Limit       int
}

func (s *FlashcardStore) owned(ctx context.Context, userID uint) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.Flashcard{}).
		Where("flashcards.user_id = ?", userID)
}

// Create stores a new card owned by userID with status new. The language
// must already be registered
func (s *FlashcardStore) Create(ctx context.Context, userID uint, in NewFlashcard) (*model.Flashcard, error) {
	lang, err := s.langs.FindByCode(ctx, in.LanguageCode)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrLanguageNotFound
		}

		return nil, fmt.Errorf("failed to resolve language, %w", err)
	}

	f := model.Flashcard{
		Question:   in.Question,
		Answer:     in.Answer,
		QSearch:    fold(in.Question),
		ASearch:    fold(in.Answer),
		Topic:      in.Topic,
		Status:     model.StatusNew,
		UserID:     userID,
		LanguageID: lang.ID,
	}

	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, fmt.Errorf("failed to create flashcard, %w", err)
	}

	f.Language = lang
	return &f, nil
}

// List returns one page of the owner's cards in id order together with the
// number of matching cards before pagination
func (s *FlashcardStore) List(ctx context.Context, userID uint, o ListOpts) (*Page, error) {
	if o.Skip < 0 {
		return nil, fmt.Errorf("skip can't be negative, %w", errs.ErrValidation)
	}

	if o.Limit < MinLimit || o.Limit > MaxLimit {
		return nil, fmt.Errorf("limit must be between %d and %d, %w", MinLimit, MaxLimit, errs.ErrValidation)
	}

	q := s.owned(ctx, userID)
	if o.Search != "" {
		p := containsPattern(o.Search)
		q = q.Where(`(flashcards.question_search LIKE ? ESCAPE '\' OR flashcards.answer_search LIKE ? ESCAPE '\')`, p, p)
	}

	page := &Page{
		Items: []model.Flashcard{},
		Skip:  o.Skip,
		Limit: o.Limit,
	}

	if err := q.Session(&gorm.Session{}).Count(&page.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count flashcards, %w", err)
	}

	err := q.
		Preload("Language").
		Order("flashcards.id").
		Offset(o.Skip).
		Limit(o.Limit).
		Find(&page.Items).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards, %w", err)
	}

	return page, nil
}

// Get returns the card only when userID owns it
func (s *FlashcardStore) Get(ctx context.Context, userID, id uint) (*model.Flashcard, error) {
	var f model.Flashcard

	err := s.owned(ctx, userID).
		Preload("Language").
		Where("flashcards.id = ?", id).
		First(&f).
		Error
	if err != nil {
		return nil, notFound(err)
	}

	return &f, nil
}

// Update overwrites question, answer and status of an owned card and stamps
// the update time
func (s *FlashcardStore) Update(ctx context.Context, userID, id uint, c FlashcardChanges) (*model.Flashcard, error) {
	if !c.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q, %w", c.Status, errs.ErrValidation)
	}

	now := time.Now()

	res := s.owned(ctx, userID).
		Where("flashcards.id = ?", id).
		Updates(map[string]any{
			"question":        c.Question,
			"answer":          c.Answer,
			"question_search": fold(c.Question),
			"answer_search":   fold(c.Answer),
			"status":          c.Status,
			"updated_at":      now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update flashcard, %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return nil, errs.ErrNotFound
	}

	return s.Get(ctx, userID, id)
}

// Delete removes an owned card. Deleting twice yields errs.ErrNotFound
func (s *FlashcardStore) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Flashcard{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete flashcard, %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// Query returns owned cards matching f, used by the chat intents
func (s *FlashcardStore) Query(ctx context.Context, userID uint, f Filter) ([]model.Flashcard, error) {
	q := s.owned(ctx, userID)

	if len(f.Statuses) > 0 {
		q = q.Where("flashcards.status IN ?", f.Statuses)
	}

	if len(f.NotStatuses) > 0 {
		q = q.Where("flashcards.status NOT IN ?", f.NotStatuses)
	}

	if f.NewestFirst {
		q = q.Order("flashcards.created_at desc").Order("flashcards.id desc")
	} else {
		q = q.Order("flashcards.id")
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	cards := []model.Flashcard{}
	if err := q.Preload("Language").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to query flashcards, %w", err)
	}

	return cards, nil
}

// CountByStatus returns how many cards the owner has in each status
func (s *FlashcardStore) CountByStatus(ctx context.Context, userID uint) (map[model.FlashcardStatus]int64, error) {
	type row struct {
		Status model.FlashcardStatus
		N      int64
	}

	var rows []row

	err := s.owned(ctx, userID).
		Select("flashcards.status AS status, COUNT(*) AS n").
		Group("flashcards.status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to count flashcards by status, %w", err)
	}

	counts := make(map[model.FlashcardStatus]int64, len(model.Statuses))
	for _, st := range model.Statuses {
		counts[st] = 0
	}

	for _, r := range rows {
		counts[r.Status] = r.N
	}

	return counts, nil
}
