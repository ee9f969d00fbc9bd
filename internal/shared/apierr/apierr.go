// Package apierr carries the typed validation and lookup errors the workflows
// return and the transport layer translates into HTTP responses.
package apierr

// Code is one of the symbolic error kinds exposed by the API.
type Code string

const (
	CodeBadRequest          Code = "badRequest"
	CodeNotFound            Code = "notFound"
	CodeUnprocessableEntity Code = "unprocessableEntity"
)

// Error pairs a symbolic code with a human-readable message. Workflows return
// it as a plain error value; the responder maps the code to a status.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// New builds an Error from a code and message. It never fails.
func New(code Code, message string) Error {
	return Error{Code: code, Message: message}
}

// BadRequest builds a missing-required-field error.
func BadRequest(message string) Error {
	return New(CodeBadRequest, message)
}

// NotFound builds a referenced-entity-absent error.
func NotFound(message string) Error {
	return New(CodeNotFound, message)
}

// UnprocessableEntity builds a present-but-out-of-range error.
func UnprocessableEntity(message string) Error {
	return New(CodeUnprocessableEntity, message)
}
