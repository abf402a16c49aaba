// Package service defines the storage interface behind the commands.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Load when no record has been written yet.
var ErrNotFound = errors.New("config not found")

// ParseError is returned by Load when the stored record cannot be decoded
// or does not match the expected shape.
type ParseError struct {
	Path   string
	Causes []string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s", e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.Causes) > 0 {
		msg += " (" + strings.Join(e.Causes, "; ") + ")"
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Service loads and saves the record.
// Commands never touch the file system directly.
type Service interface {
	// Load reads the whole record.
	// Returns ErrNotFound if nothing has been stored yet and *ParseError
	// if the stored data is malformed.
	Load(ctx context.Context) (Record, error)

	// Save replaces the stored record. A reader never observes a partial write.
	Save(ctx context.Context, rec Record) error

	// Location describes where the record lives, for messages.
	Location() string
}
