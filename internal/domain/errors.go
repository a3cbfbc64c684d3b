package domain

import "errors"

type Kind string

const (
	KindValidation          Kind = "validation"
	KindInsufficientBalance Kind = "insufficient_balance"
	KindScheduleRestriction Kind = "schedule_restriction"
	KindInvalidState        Kind = "invalid_state"
	KindDuplicateOperation  Kind = "duplicate_operation"
	KindNotFound            Kind = "not_found"
)

// Error is a failure the caller is allowed to see: a kind plus a human readable reason.
type Error struct {
	Kind   Kind
	Reason string
}

func NewError(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Reason
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works for every reason.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation          = NewError(KindValidation, "validation failed")
	ErrInsufficientBalance = NewError(KindInsufficientBalance, "insufficient balance")
	ErrScheduleRestriction = NewError(KindScheduleRestriction, "withdrawals are not allowed today")
	ErrInvalidState        = NewError(KindInvalidState, "request already decided")
	ErrDuplicateOperation  = NewError(KindDuplicateOperation, "operation already applied")
	ErrNotFound            = NewError(KindNotFound, "not found")
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
