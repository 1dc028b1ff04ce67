package models

import "fmt"

// Kind is a machine-readable error classification surfaced to callers
// alongside the human-readable message.
type Kind string

const (
	SchemaViolation   Kind = "SCHEMA_VIOLATION"   // malformed or out-of-range document fields
	SecurityViolation Kind = "SECURITY_VIOLATION" // URL failed static validation, no network I/O performed
	FormatViolation   Kind = "FORMAT_VIOLATION"   // payload too large or not a PDF
	TransportFailure  Kind = "TRANSPORT_FAILURE"  // network timeout or HTTP-level failure
	UnknownOperation  Kind = "UNKNOWN_OPERATION"  // no handler registered for the tool name
)

// CodedError carries an error kind plus a human-readable description.
// Field is set for schema violations to name the offending field.
type CodedError struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *CodedError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewSchemaError reports a malformed or out-of-range document field.
func NewSchemaError(field, format string, args ...any) *CodedError {
	return &CodedError{Kind: SchemaViolation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewSecurityError reports a document reference that failed static validation.
func NewSecurityError(format string, args ...any) *CodedError {
	return &CodedError{Kind: SecurityViolation, Message: fmt.Sprintf(format, args...)}
}

// NewFormatError reports a downloaded payload that is not an acceptable PDF.
func NewFormatError(format string, args ...any) *CodedError {
	return &CodedError{Kind: FormatViolation, Message: fmt.Sprintf(format, args...)}
}

// NewTransportError reports a network or HTTP-level fetch failure.
func NewTransportError(format string, args ...any) *CodedError {
	return &CodedError{Kind: TransportFailure, Message: fmt.Sprintf(format, args...)}
}

// NewUnknownOperationError reports a tool name with no registered handler.
func NewUnknownOperationError(name string) *CodedError {
	return &CodedError{Kind: UnknownOperation, Message: fmt.Sprintf("unknown tool: %q", name)}
}
