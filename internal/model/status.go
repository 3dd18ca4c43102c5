package model

import (
	"database/sql/driver"
	"fmt"
)

// FlashcardStatus is the lifecycle state of a card. Transitions only happen
// through an explicit update
type FlashcardStatus string

const (
	StatusNew        FlashcardStatus = "new"
	StatusInProgress FlashcardStatus = "inprogress"
	StatusDone       FlashcardStatus = "done"
)

// Statuses lists every status in lifecycle order
var Statuses = []FlashcardStatus{StatusNew, StatusInProgress, StatusDone}

func (s FlashcardStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone:
		return true
	}

	return false
}

// Value implements the driver.Valuer interface.
// Unknown statuses never reach the database
func (s FlashcardStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid flashcard status, %q", string(s))
	}

	return string(s), nil
}

// Scan implements the sql.Scanner interface.
func (s *FlashcardStatus) Scan(value any) error {
	var str string

	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	case nil:
		*s = StatusNew
		return nil
	default:
		return fmt.Errorf("failed to scan FlashcardStatus, %v", value)
	}

	st := FlashcardStatus(str)
	if !st.Valid() {
		return fmt.Errorf("unknown flashcard status in database, %q", str)
	}

	*s = st
	return nil
}
