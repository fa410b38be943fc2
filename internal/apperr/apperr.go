package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindStock       Kind = "stock"
	KindReferential Kind = "referential"
	KindPersistence Kind = "persistence"
	KindPayment     Kind = "payment"
	KindEmptyCart   Kind = "empty_cart"
)

// Error carries a Kind so callers can tell operator mistakes from storage
// failures. Message is safe to show to the operator.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Stock(format string, args ...interface{}) error {
	return &Error{Kind: KindStock, Message: fmt.Sprintf(format, args...)}
}

func Payment(format string, args ...interface{}) error {
	return &Error{Kind: KindPayment, Message: fmt.Sprintf(format, args...)}
}

func EmptyCart() error {
	return &Error{Kind: KindEmptyCart, Message: "cart is empty"}
}

func Referential(msg string, err error) error {
	return &Error{Kind: KindReferential, Message: msg, Err: err}
}

// Persistence wraps a storage failure for op. Errors that already carry a
// Kind pass through untouched.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return &Error{Kind: KindPersistence, Message: "failed to " + op, Err: err}
}

// KindOf returns the Kind of err, or "" for errors outside this taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
