package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Fixed values reported by the success payload
const (
	GreetingMessage    = "Hello from Lambda! Successfully deployed with Terraform!"
	DeployEnvironment  = "production"
	ProjectName        = "terraform-day4"
	InternalErrorLabel = "Internal server error"
)

// Event is the opaque invocation payload supplied by the caller.
// No field is required.
type Event map[string]any

// Response is the record returned to the hosting runtime
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// SuccessPayload is the body returned when the invocation succeeds
type SuccessPayload struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Project     string `json:"project"`
	Success     bool   `json:"success"`
}

// NewSuccessPayload returns the fixed success body
func NewSuccessPayload() SuccessPayload {
	return SuccessPayload{
		Message:     GreetingMessage,
		Environment: DeployEnvironment,
		Project:     ProjectName,
		Success:     true,
	}
}

// ErrorPayload is the body returned when building the success body fails
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorPayload builds the error body for err
func NewErrorPayload(err error) ErrorPayload {
	return ErrorPayload{
		Error:   InternalErrorLabel,
		Message: FailureMessage(err),
	}
}

// ConstructionError reports a failure while building or serializing the
// success body. Error returns the underlying description unchanged so it
// can be embedded in the error body as is.
type ConstructionError struct {
	Op  string // "build", "marshal" or "panic"
	Err error
}

func (e *ConstructionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed", e.Op)
	}
	return e.Err.Error()
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// NewConstructionError creates a new ConstructionError
func NewConstructionError(op string, err error) *ConstructionError {
	return &ConstructionError{Op: op, Err: err}
}

// IsConstructionError returns true if err is or wraps a ConstructionError
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}

// FailureMessage returns the textual description of err
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Result is the outcome of one payload construction. Exactly one of
// Body or Err is set.
type Result struct {
	Body []byte
	Err  error
}

// Success wraps an encoded success body
func Success(body []byte) Result {
	return Result{Body: body}
}

// Failure wraps a construction error
func Failure(err error) Result {
	return Result{Err: err}
}

// OK reports whether the result is the success variant
func (r Result) OK() bool {
	return r.Err == nil
}

// StatusCode maps the result variant to the response status
func (r Result) StatusCode() int {
	if r.OK() {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}
