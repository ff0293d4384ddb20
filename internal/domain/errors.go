package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUserCanceled = errors.New("user canceled")
)

// StoreError represents an error from the persistence layer
type StoreError struct {
	Op       string // Operation: "load", "save", "create", etc.
	RecordID string // Optional: specific record ID
	Message  string // Human-readable context
	Err      error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.RecordID != "" {
		return fmt.Sprintf("store %s [%s]: %s", e.Op, e.RecordID, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("store %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s failed", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
