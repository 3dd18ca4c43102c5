// Package service contains the chat intent router and its collaborators
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/internal/repository"
)

const NoneFound = "No flashcards found."

const (
	SourceIntent    = "intent"
	SourceGenerator = "generator"
)

type CardQuerier interface {
	Query(ctx context.Context, userID uint, f repository.Filter) ([]model.Flashcard, error)
	CountByStatus(ctx context.Context, userID uint) (map[model.FlashcardStatus]int64, error)
}

type Reply struct {
	Text   string `json:"reply"`
	Source string `json:"source"`
	Intent string `json:"intent,omitempty"`
}

type intent struct {
	name    string
	phrases []string
	title   string
	filter  repository.Filter
	counts  bool
}

// Order matters, the first intent with a matching phrase wins
var intents = []intent{
	{
		name:    "last_unfinished",
		phrases: []string{"last 5 unfinished", "last five unfinished"},
		title:   "Your last 5 unfinished flashcards:",
		filter: repository.Filter{
			NotStatuses: []model.FlashcardStatus{model.StatusDone},
			NewestFirst: true,
			Limit:       5,
		},
	},
	{
		name:    "all_unfinished",
		phrases: []string{"all unfinished", "unfinished cards", "unfinished flashcards"},
		title:   "Your unfinished flashcards:",
		filter: repository.Filter{
			NotStatuses: []model.FlashcardStatus{model.StatusDone},
		},
	},
	{
		name:    "all_completed",
		phrases: []string{"all completed", "all done", "completed cards", "completed flashcards"},
		title:   "Your completed flashcards:",
		filter: repository.Filter{
			Statuses: []model.FlashcardStatus{model.StatusDone},
		},
	},
	{
		name:    "status_counts",
		phrases: []string{"how many cards", "how many flashcards"},
		counts:  true,
	},
}

// Chat answers canned questions about a user's cards and hands everything
// else to the text generator untouched
type Chat struct {
	cards CardQuerier
	gen   TextGenerator
}

func NewChat(cards CardQuerier, gen TextGenerator) *Chat {
	return &Chat{cards: cards, gen: gen}
}

func (c *Chat) Reply(ctx context.Context, userID uint, message string) (*Reply, error) {
	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, in := range intents {
		if !matches(normalized, in.phrases) {
			continue
		}

		text, err := c.runIntent(ctx, userID, in)
		if err != nil {
			return nil, err
		}

		return &Reply{Text: text, Source: SourceIntent, Intent: in.name}, nil
	}

	text, err := c.gen.Generate(ctx, message)
	if err != nil {
		return nil, err
	}

	return &Reply{Text: text, Source: SourceGenerator}, nil
}

func (c *Chat) runIntent(ctx context.Context, userID uint, in intent) (string, error) {
	if in.counts {
		counts, err := c.cards.CountByStatus(ctx, userID)
		if err != nil {
			return "", err
		}

		return renderCounts(counts), nil
	}

	cards, err := c.cards.Query(ctx, userID, in.filter)
	if err != nil {
		return "", err
	}

	return renderCards(in.title, cards), nil
}

var negations = []string{"not", "no", "never", "don't", "haven't"}

// matches reports whether one of phrases occurs in msg as whole words and
// isn't directly preceded by a negation like "not"
func matches(msg string, phrases []string) bool {
	for _, p := range phrases {
		for start := 0; start < len(msg); {
			i := strings.Index(msg[start:], p)
			if i < 0 {
				break
			}

			i += start
			end := i + len(p)

			if wordBoundary(msg, i, end) && !negated(msg[:i]) {
				return true
			}

			start = i + 1
		}
	}

	return false
}

func wordBoundary(msg string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(msg[:start]); isWordRune(r) {
			return false
		}
	}

	if end < len(msg) {
		if r, _ := utf8.DecodeRuneInString(msg[end:]); isWordRune(r) {
			return false
		}
	}

	return true
}

func negated(before string) bool {
	words := strings.Fields(before)
	if len(words) == 0 {
		return false
	}

	last := strings.TrimFunc(words[len(words)-1], func(r rune) bool {
		return !isWordRune(r) && r != '\''
	})

	return slices.Contains(negations, last)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func renderCards(title string, cards []model.Flashcard) string {
	if len(cards) == 0 {
		return NoneFound
	}

	var sb strings.Builder
	sb.WriteString(title)

	for i, f := range cards {
		fmt.Fprintf(&sb, "\n%d. %s -> %s (%s)", i+1, f.Question, f.Answer, f.Status)
	}

	return sb.String()
}

func renderCounts(counts map[model.FlashcardStatus]int64) string {
	var total int64
	for _, n := range counts {
		total += n
	}

	if total == 0 {
		return NoneFound
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You have %d flashcards:", total)

	for _, st := range model.Statuses {
		fmt.Fprintf(&sb, "\n%s: %d", st, counts[st])
	}

	return sb.String()
}
