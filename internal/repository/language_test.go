package repository_test

import (
	"context"
	"testing"

	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageGetOrCreateIsIdempotent(t *testing.T) {
	g, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	name := "Spanish"

	first, err := repo.Languages.GetOrCreate(ctx, "es", &name)
	require.NoError(t, err)

	other := "Español"
	second, err := repo.Languages.GetOrCreate(ctx, "ES", &other)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.Name)
	assert.Equal(t, "Spanish", *second.Name)

	var n int64
	require.NoError(t, g.Model(model.Language{}).Where("code = ?", "es").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestLanguageFindAndList(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := repo.Languages.FindByCode(ctx, "en")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	testutil.NewTestLanguage(t, repo, "es")
	testutil.NewTestLanguage(t, repo, "en")

	l, err := repo.Languages.FindByCode(ctx, "EN")
	require.NoError(t, err)
	assert.Equal(t, "en", l.Code)
	assert.Nil(t, l.Name)

	langs, err := repo.Languages.List(ctx)
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.Equal(t, "en", langs[0].Code)
	assert.Equal(t, "es", langs[1].Code)
}
