package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ===============================
// Error kinds and codes
// ===============================

// Kind classifies a failure for callers that branch on behavior.
// Code is the stable machine-readable identifier surfaced outward;
// lifecycle errors reuse the kind name, calendar operations carry
// their own CAL_* code family.
type Kind string

const (
	KindNotFound            Kind = "NOT_FOUND"
	KindIllegalTransition   Kind = "ILLEGAL_TRANSITION"
	KindLimitExceeded       Kind = "LIMIT_EXCEEDED"
	KindSchedulingConflict  Kind = "SCHEDULING_CONFLICT"
	KindResourceUnavailable Kind = "RESOURCE_UNAVAILABLE"
	KindInvalidInput        Kind = "INVALID_INPUT"
	KindInternal            Kind = "INTERNAL"
)

const (
	CodeNotFound          = "NOT_FOUND"
	CodeIllegalTransition = "ILLEGAL_TRANSITION"
	CodeLimitExceeded     = "LIMIT_EXCEEDED"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInternal          = "INTERNAL_ERROR"

	CodeCalendarNotFound   = "CAL_001"
	CodeIllegalMove        = "CAL_002"
	CodeInvalidCalendarArg = "CAL_003"
	CodeStylistUnavailable = "CAL_004"
	CodeSchedulingConflict = "CAL_CONFLICT"
)

// ===============================
// AppError
// ===============================

type AppError struct {
	Kind       Kind           `json:"-"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// IsKind reports whether err is (or wraps) an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// As unwraps err into an *AppError, folding unknown errors into an
// internal one so callers always have a code and status to surface.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("An unexpected error occurred", err)
}

// ===============================
// Constructors
// ===============================

func NotFound(resource string) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// CalendarNotFound is the not-found failure of calendar operations,
// which signal the CAL_* code family outward.
func CalendarNotFound(resource string) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Code:       CodeCalendarNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// IllegalTransition rejects a lifecycle operation attempted from a
// status outside its legal-predecessor set. The message names the
// blocked verb; retrying never helps, the caller must re-fetch state.
func IllegalTransition(verb string) *AppError {
	return &AppError{
		Kind:       KindIllegalTransition,
		Code:       CodeIllegalTransition,
		Message:    fmt.Sprintf("Cannot %s appointment in current status", verb),
		HTTPStatus: http.StatusBadRequest,
	}
}

// IllegalMove is the move operation's variant of IllegalTransition.
func IllegalMove() *AppError {
	return &AppError{
		Kind:       KindIllegalTransition,
		Code:       CodeIllegalMove,
		Message:    "Cannot move appointment in current status",
		HTTPStatus: http.StatusBadRequest,
	}
}

func LimitExceeded(limit int) *AppError {
	return &AppError{
		Kind:       KindLimitExceeded,
		Code:       CodeLimitExceeded,
		Message:    fmt.Sprintf("Maximum reschedule limit (%d) reached", limit),
		HTTPStatus: http.StatusBadRequest,
	}
}

// SchedulingConflict carries the overlapping appointments as structured
// detail so the caller can render what collides, not just that it did.
func SchedulingConflict(conflicts any) *AppError {
	e := &AppError{
		Kind:       KindSchedulingConflict,
		Code:       CodeSchedulingConflict,
		Message:    "Requested time overlaps existing appointments",
		HTTPStatus: http.StatusConflict,
	}
	return e.WithDetails(map[string]any{"conflicts": conflicts})
}

func StylistUnavailable() *AppError {
	return &AppError{
		Kind:       KindResourceUnavailable,
		Code:       CodeStylistUnavailable,
		Message:    "Stylist is unavailable during the requested time",
		HTTPStatus: http.StatusBadRequest,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Kind:       KindInvalidInput,
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func InvalidCalendarInput(message string) *AppError {
	return &AppError{
		Kind:       KindInvalidInput,
		Code:       CodeInvalidCalendarArg,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
