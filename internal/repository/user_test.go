package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Users.Create(ctx, &model.User{FullName: "Ana", Email: "ana@example.com", Password: "h"}))

	err := repo.Users.Create(ctx, &model.User{FullName: "Ana B", Email: "ana@example.com", Password: "h"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)

	taken, err := repo.Users.EmailTaken(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.Users.FullNameTaken(ctx, "Ana B")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserCreateConcurrentSameEmail(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	const n = 5
	results := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = repo.Users.Create(ctx, &model.User{
				FullName: fmt.Sprintf("Ana %d", i),
				Email:    "ana@example.com",
				Password: "h",
			})
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range results {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	}
	assert.Equal(t, 1, created)

	users, err := repo.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserLookups(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	ana := testutil.NewTestUser(t, repo, "Ana")
	testutil.NewTestUser(t, repo, "Bob")

	got, err := repo.Users.FindByFullName(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, got.ID)

	_, err = repo.Users.FindByFullName(ctx, "Nobody")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = repo.Users.FindByID(ctx, 999)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	users, err := repo.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserWithFlashcards(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	ana := testutil.NewTestUser(t, repo, "Ana")
	bob := testutil.NewTestUser(t, repo, "Bob")
	testutil.NewTestLanguage(t, repo, "en")
	testutil.NewTestFlashcard(t, repo, ana.ID, "en", "one", "1")
	testutil.NewTestFlashcard(t, repo, ana.ID, "en", "two", "2")
	testutil.NewTestFlashcard(t, repo, bob.ID, "en", "three", "3")

	got, err := repo.Users.WithFlashcards(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, got.Flashcards, 2)
	assert.Equal(t, "one", got.Flashcards[0].Question)
	require.NotNil(t, got.Flashcards[0].Language)
	assert.Equal(t, "en", got.Flashcards[0].Language.Code)
}
