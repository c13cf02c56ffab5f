package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced by the engine.
const (
	CodeDuplicateID              = "DUPLICATE_ID"
	CodeTicketNotFound           = "TICKET_NOT_FOUND"
	CodeSenderNotAuthorized      = "SENDER_NOT_AUTHORIZED"
	CodeInvalidSatisfactionScore = "INVALID_SATISFACTION_SCORE"
	CodeNotFound                 = "NOT_FOUND"
	CodeValidationFailed         = "VALIDATION_FAILED"
	CodeInternalError            = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, details)
}

// NewDuplicateID reports a registration against an id already present.
func NewDuplicateID(resource, id string) error {
	return NewDomainError(CodeDuplicateID, fmt.Sprintf("%s id already registered", resource),
		http.StatusConflict, map[string]any{"id": id})
}

// NewTicketNotFound reports a lookup miss on the ticket registry.
func NewTicketNotFound(ticketID string) error {
	return NewDomainError(CodeTicketNotFound, "ticket not found",
		http.StatusNotFound, map[string]any{"ticket_id": ticketID})
}

// NewSenderNotAuthorized reports a message from neither the ticket's client
// nor its assigned agent.
func NewSenderNotAuthorized(ticketID, senderID string) error {
	return NewDomainError(CodeSenderNotAuthorized, "sender not authorized for ticket",
		http.StatusForbidden, map[string]any{"ticket_id": ticketID, "sender_id": senderID})
}

// NewInvalidSatisfactionScore reports a rating outside 1..5.
func NewInvalidSatisfactionScore(score int) error {
	return NewDomainError(CodeInvalidSatisfactionScore, "satisfaction score must be between 1 and 5",
		http.StatusBadRequest, map[string]any{"score": score})
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to a DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err carries the given domain error code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
