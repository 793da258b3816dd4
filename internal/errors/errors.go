// Package errors provides standardized error types for the siteup CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent exit codes throughout
// the application.
//
// # Error Types
//
// SiteError is the primary error type, containing:
//   - Code: Categorizes the error (NOT_FOUND, VALIDATION, CONFIG, INTERNAL)
//   - Message: Human-readable error description
//   - Site: The site name involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// CommandError is returned when an external command exits non-zero. It keeps
// the command's own exit status so the process can terminate with it.
//
// # Exit Codes
//
// ExitCode maps any error to the process exit status:
//
//	nil           -> 0
//	CommandError  -> the external command's exit code
//	anything else -> 1
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrSiteDirMissing) {
//	    // Handle missing source directory
//	}
//
// Use errors.As for type assertion:
//
//	var cmdErr *errors.CommandError
//	if errors.As(err, &cmdErr) {
//	    fmt.Printf("%s exited with %d\n", cmdErr.Command, cmdErr.Code)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"  // Required artifact missing
	ErrCodeValidation ErrorCode = "VALIDATION" // Input or path validation failed
	ErrCodeConfig     ErrorCode = "CONFIG"     // Configuration error
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// SiteError represents a structured error with context about the operation.
type SiteError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Site    string    // Site name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Site != "" && e.Err != nil {
		return fmt.Sprintf("site %s: %s: %v", e.Site, e.Message, e.Err)
	}
	if e.Site != "" {
		return fmt.Sprintf("site %s: %s", e.Site, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *SiteError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Two SiteErrors match when both code and message agree, so sentinels with
// the same code stay distinguishable.
func (e *SiteError) Is(target error) bool {
	t, ok := target.(*SiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// Sentinel errors for common error scenarios.
var (
	// ErrSiteDirMissing indicates the site source directory does not exist.
	ErrSiteDirMissing = &SiteError{Code: ErrCodeNotFound, Message: "site folder does not exist"}

	// ErrInvalidName indicates the site name cannot be used as a path segment.
	ErrInvalidName = &SiteError{Code: ErrCodeValidation, Message: "invalid site name"}

	// ErrOutsideRoot indicates a path resolved outside the projects directory.
	ErrOutsideRoot = &SiteError{Code: ErrCodeValidation, Message: "path is outside the projects directory"}
)

// SiteDirMissing creates the precondition error for a missing source directory.
func SiteDirMissing(site, path string) error {
	return &SiteError{
		Code:    ErrCodeNotFound,
		Message: "site folder does not exist",
		Site:    site,
		Err:     fmt.Errorf("%s", path),
	}
}

// InvalidName creates the validation error for a name that is not a single
// path segment.
func InvalidName(site, reason string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: "invalid site name",
		Site:    site,
		Err:     fmt.Errorf("%s", reason),
	}
}

// OutsideRoot creates the containment error for a path that escapes root.
func OutsideRoot(site, path, root string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: "path is outside the projects directory",
		Site:    site,
		Err:     fmt.Errorf("%s is not inside %s", path, root),
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapSite creates an error with site context and underlying error.
func WrapSite(code ErrorCode, site, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Site:    site,
		Err:     err,
	}
}

// CommandError reports an external command that exited unsuccessfully.
type CommandError struct {
	Command string // Literal command line as printed before execution
	Code    int    // Exit status of the command
	Output  string // Combined stdout/stderr
	Err     error  // Underlying exec error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code > 0 {
		return cmdErr.Code
	}
	return 1
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
