// Package errs defines the gateway's unified error taxonomy and its mapping
// onto JSON-RPC 2.0 error codes.
package errs

import "fmt"

// Standard JSON-RPC 2.0 codes, plus the gateway's own reserved range.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeNotInitialized = -32002
	CodeNotFound       = -32004
	CodeUpstreamError  = -32005
)

// Kind names a member of the error taxonomy. Kept distinct from the wire
// code because RateLimited and UpstreamError share -32005 but are reported
// differently to operators.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotInitialized Kind = "not_initialized"
	KindNotFound       Kind = "not_found"
	KindUpstream       Kind = "upstream"
	KindRateLimited    Kind = "rate_limited"
	KindConfig         Kind = "config"
	KindInternal       Kind = "internal"
	KindParse          Kind = "parse"
	KindMethodNotFound Kind = "method_not_found"
)

var codeByKind = map[Kind]int{
	KindValidation:     CodeInvalidParams,
	KindNotInitialized: CodeNotInitialized,
	KindNotFound:       CodeNotFound,
	KindUpstream:       CodeUpstreamError,
	KindRateLimited:    CodeUpstreamError,
	KindConfig:         CodeInternalError,
	KindInternal:       CodeInternalError,
	KindParse:          CodeParseError,
	KindMethodNotFound: CodeMethodNotFound,
}

// Error is the single error value returned by every handler in the gateway.
// The protocol core is the only place that converts it into a wire object.
type Error struct {
	Kind    Kind
	Message string
	// Field is the offending argument name, set for KindValidation.
	Field string
	// Status is the upstream HTTP status, set for KindUpstream.
	Status int
}

func (e *Error) Error() string {
	return e.Message
}

// Code returns the JSON-RPC error code for this error's kind.
func (e *Error) Code() int {
	if c, ok := codeByKind[e.Kind]; ok {
		return c
	}
	return CodeInternalError
}

// Data returns the JSON-RPC error "data" payload. It always carries the
// error kind, plus the offending field and upstream status when set.
func (e *Error) Data() map[string]any {
	data := map[string]any{"kind": string(e.Kind)}
	if e.Field != "" {
		data["field"] = e.Field
	}
	if e.Status != 0 {
		data["upstream_status"] = e.Status
	}
	return data
}

func Validation(field, format string, a ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, a...), Field: field}
}

func NotInitialized() *Error {
	return &Error{Kind: KindNotInitialized, Message: "tool call received before initialize"}
}

func NotFound(format string, a ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, a...)}
}

func Upstream(status int, format string, a ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, a...), Status: status}
}

func RateLimited(format string, a ...any) *Error {
	return &Error{Kind: KindRateLimited, Message: "rate limit: " + fmt.Sprintf(format, a...)}
}

func Config(format string, a ...any) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, a...)}
}

func Internal(format string, a ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, a...)}
}

func Parse(format string, a ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, a...)}
}

func MethodNotFound(method string) *Error {
	return &Error{Kind: KindMethodNotFound, Message: fmt.Sprintf("method not found: %s", method)}
}

// As extracts a *Error from err, wrapping unknown errors as KindInternal.
// Never leaks the original error's text if it might contain secrets; callers
// that construct *Error explicitly remain in control of their own messages.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: KindInternal, Message: "internal error"}
}
