package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types
var (
	// Acquisition errors
	ErrAcquisitionFailed = errors.New("acquisition failed")
	ErrUnexpectedStatus  = errors.New("unexpected HTTP status")
	ErrInvalidPayload    = errors.New("invalid payload")

	// Export errors
	ErrExportFailed = errors.New("export failed")
)

// AcquisitionError represents a failed fetch of the local service data.
// Endpoint names the first request that failed; the whole acquisition is
// discarded either way.
type AcquisitionError struct {
	Endpoint string
	Err      error
}

func (e *AcquisitionError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("acquisition (%s): %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("acquisition: %v", e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

func (e *AcquisitionError) Is(target error) bool {
	return target == ErrAcquisitionFailed
}

// ExportError represents a failure persisting the workbook
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export '%s': %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

func (e *ExportError) Is(target error) bool {
	return target == ErrExportFailed
}

// ValidationError represents a field-level payload validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

func (v *ValidationErrors) Is(target error) bool {
	return target == ErrInvalidPayload
}
