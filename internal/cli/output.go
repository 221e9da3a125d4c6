package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation failure (bad filter, unknown model, ...)
	ExitCommandError = 2 // Command error (missing files, bad flags, ...)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error // underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results as raw XML or as a JSON
// envelope, depending on the configured format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the JSON envelope for machine-readable output.
type Response struct {
	Status string `json:"status"`
	Query  string `json:"query,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

// Document writes a translated document in the configured format.
func (f *OutputFormatter) Document(xml string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Query: xml})
	}
	_, err := fmt.Fprintln(f.Writer, xml)
	return err
}

// Info writes a non-document result, such as a validation summary.
func (f *OutputFormatter) Info(detail any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Detail: detail})
	}
	_, err := fmt.Fprintln(f.Writer, detail)
	return err
}
