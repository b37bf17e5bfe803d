package main

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures for reporting and exit codes
type ErrorKind string

const (
	KindAuth         ErrorKind = "auth"
	KindNetwork      ErrorKind = "network"
	KindDataFormat   ErrorKind = "data_format"
	KindTemplate     ErrorKind = "template"
	KindFile         ErrorKind = "file"
	KindInvalidInput ErrorKind = "invalid_input"
)

// AppError wraps an underlying error with the operation and its kind
type AppError struct {
	Op   string
	Kind ErrorKind
	Path string // file path or URL, when relevant
	Err  error
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

func newError(op string, kind ErrorKind, path string, err error) *AppError {
	return &AppError{Op: op, Kind: kind, Path: path, Err: err}
}

// IsKind reports whether err carries an AppError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsKind(err, KindInvalidInput) {
		return 2
	}
	return 1
}
