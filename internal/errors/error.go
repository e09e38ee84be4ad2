package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryProps   Category = "props"
	CategoryRender  Category = "render"
	CategoryConfig  Category = "config"
	CategoryBuild   Category = "build"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// Location represents a position in a source or configuration file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// VStyleError is a coded error with an optional location, suggestion and
// documentation link.
type VStyleError struct {
	// Code is a unique error identifier (e.g., "E160").
	Code string

	// Category is the error type (render, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains surrounding file lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VStyleError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VStyleError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a VStyleError with the same code.
func (e *VStyleError) Is(target error) bool {
	t, ok := target.(*VStyleError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithLocation adds a file position to the error.
func (e *VStyleError) WithLocation(file string, line, column int) *VStyleError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VStyleError) WithSuggestion(s string) *VStyleError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered explanation.
func (e *VStyleError) WithDetail(d string) *VStyleError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *VStyleError) Wrap(err error) *VStyleError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a VStyleError from a registered error code.
func New(code string) *VStyleError {
	template, ok := registry[code]
	if !ok {
		return &VStyleError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VStyleError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new VStyleError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VStyleError {
	return &VStyleError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VStyleError.
func FromError(err error, code string) *VStyleError {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*VStyleError); ok {
		return ve
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err or any error it wraps carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		if ve, ok := err.(*VStyleError); ok && ve.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
