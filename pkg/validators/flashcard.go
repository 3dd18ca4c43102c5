package validators

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrCodeInvalid     = errors.New("language code must be 2 to 16 letters, digits or dashes")
	ErrQuestionEmpty   = errors.New("question can't be empty")
	ErrAnswerEmpty     = errors.New("answer can't be empty")
	ErrCardTextTooLong = errors.New("question and answer can't be longer than 2000 characters")
)

const maxCardText = 2000

// LanguageCodeValidator accepts codes like "en", "pt-br" or "zh-hant"
func LanguageCodeValidator(code string) error {
	code = strings.TrimSpace(code)
	if len(code) < 2 || len(code) > 16 {
		return ErrCodeInvalid
	}

	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return ErrCodeInvalid
		}
	}

	return nil
}

func CardTextValidator(question, answer string) error {
	if strings.TrimSpace(question) == "" {
		return ErrQuestionEmpty
	}

	if strings.TrimSpace(answer) == "" {
		return ErrAnswerEmpty
	}

	if utf8.RuneCountInString(question) > maxCardText || utf8.RuneCountInString(answer) > maxCardText {
		return ErrCardTextTooLong
	}

	return nil
}
