package service

import (
	"context"
	"errors"
	"testing"

	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCards struct {
	cards   []model.Flashcard
	counts  map[model.FlashcardStatus]int64
	filters []repository.Filter
	userIDs []uint
	err     error
}

func (f *fakeCards) Query(_ context.Context, userID uint, fl repository.Filter) ([]model.Flashcard, error) {
	f.filters = append(f.filters, fl)
	f.userIDs = append(f.userIDs, userID)
	return f.cards, f.err
}

func (f *fakeCards) CountByStatus(_ context.Context, userID uint) (map[model.FlashcardStatus]int64, error) {
	f.userIDs = append(f.userIDs, userID)
	return f.counts, f.err
}

type fakeGen struct {
	prompts []string
	reply   string
	err     error
}

func (g *fakeGen) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func TestChat_IntentsWinInOrder(t *testing.T) {
	tests := []struct {
		msg    string
		intent string
		filter repository.Filter
	}{
		{
			msg:    "Show me my LAST 5 UNFINISHED cards",
			intent: "last_unfinished",
			filter: repository.Filter{NotStatuses: []model.FlashcardStatus{model.StatusDone}, NewestFirst: true, Limit: 5},
		},
		{
			msg:    "  list all unfinished please ",
			intent: "all_unfinished",
			filter: repository.Filter{NotStatuses: []model.FlashcardStatus{model.StatusDone}},
		},
		{
			msg:    "Which completed cards do I have?",
			intent: "all_completed",
			filter: repository.Filter{Statuses: []model.FlashcardStatus{model.StatusDone}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.intent, func(t *testing.T) {
			cards := &fakeCards{cards: []model.Flashcard{
				{Question: "hola", Answer: "hello", Status: model.StatusNew},
				{Question: "gato", Answer: "cat", Status: model.StatusInProgress},
			}}
			gen := &fakeGen{}

			r, err := NewChat(cards, gen).Reply(context.Background(), 42, tt.msg)
			require.NoError(t, err)

			assert.Equal(t, SourceIntent, r.Source)
			assert.Equal(t, tt.intent, r.Intent)
			assert.Contains(t, r.Text, "1. hola -> hello (new)")
			assert.Contains(t, r.Text, "2. gato -> cat (inprogress)")
			require.Len(t, cards.filters, 1)
			assert.Equal(t, tt.filter, cards.filters[0])
			assert.Equal(t, []uint{42}, cards.userIDs)
			assert.Empty(t, gen.prompts)
		})
	}
}

func TestChat_PhrasesNeedWholeWordsWithoutNegation(t *testing.T) {
	tests := []struct {
		msg    string
		intent string
	}{
		{msg: "show my not completed cards"},
		{msg: "I finished school, what should I study next?"},
		{msg: "How do I say \"completed\" in Spanish?"},
		{msg: "how many words does Spanish have?"},
		{msg: "Show my unfinished cards", intent: "all_unfinished"},
		{msg: "list ALL DONE", intent: "all_completed"},
		{msg: "how many flashcards?", intent: "status_counts"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			gen := &fakeGen{reply: "generated"}

			r, err := NewChat(&fakeCards{}, gen).Reply(context.Background(), 1, tt.msg)
			require.NoError(t, err)

			if tt.intent == "" {
				assert.Equal(t, SourceGenerator, r.Source)
				assert.Equal(t, "generated", r.Text)
				assert.Equal(t, []string{tt.msg}, gen.prompts)
				return
			}

			assert.Equal(t, SourceIntent, r.Source)
			assert.Equal(t, tt.intent, r.Intent)
			assert.Empty(t, gen.prompts)
		})
	}
}

func TestChat_NoneFound(t *testing.T) {
	r, err := NewChat(&fakeCards{}, &fakeGen{}).Reply(context.Background(), 1, "all completed")
	require.NoError(t, err)
	assert.Equal(t, NoneFound, r.Text)
}

func TestChat_Counts(t *testing.T) {
	cards := &fakeCards{counts: map[model.FlashcardStatus]int64{
		model.StatusNew:        2,
		model.StatusInProgress: 0,
		model.StatusDone:       1,
	}}

	r, err := NewChat(cards, &fakeGen{}).Reply(context.Background(), 1, "How many cards do I have?")
	require.NoError(t, err)
	assert.Equal(t, "You have 3 flashcards:\nnew: 2\ninprogress: 0\ndone: 1", r.Text)
}

func TestChat_FallsBackToGenerator(t *testing.T) {
	cards := &fakeCards{}
	gen := &fakeGen{reply: "¡Hola! means hello."}

	r, err := NewChat(cards, gen).Reply(context.Background(), 1, "  What does ¡Hola! mean? ")
	require.NoError(t, err)

	assert.Equal(t, SourceGenerator, r.Source)
	assert.Equal(t, "¡Hola! means hello.", r.Text)
	assert.Equal(t, []string{"  What does ¡Hola! mean? "}, gen.prompts)
	assert.Empty(t, cards.filters)
}

func TestChat_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewChat(&fakeCards{err: boom}, &fakeGen{}).Reply(context.Background(), 1, "all unfinished")
	assert.ErrorIs(t, err, boom)

	gen := &fakeGen{err: errs.ErrGeneration}
	_, err = NewChat(&fakeCards{}, gen).Reply(context.Background(), 1, "translate cat")
	assert.ErrorIs(t, err, errs.ErrGeneration)
	assert.Len(t, gen.prompts, 1)
}
