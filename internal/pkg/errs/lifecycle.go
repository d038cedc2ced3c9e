package errs

import "fmt"

// InvalidTransitionError reports an action the current status does not allow,
// e.g. editing an order that is already Processing.
type InvalidTransitionError struct {
	Action string
	From   string
	Cause  error
}

func NewInvalidTransitionError(action, from string) *InvalidTransitionError {
	return &InvalidTransitionError{Action: action, From: from}
}

func NewInvalidTransitionErrorWithCause(action, from string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Action: action, From: from, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	return withCause(fmt.Sprintf("%s: cannot %s from %s status", ErrInvalidTransition, e.Action, e.From), e.Cause)
}

func (e *InvalidTransitionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidTransition}
	}
	return []error{ErrInvalidTransition, e.Cause}
}

// ObjectIsProtectedError reports a refused destructive action, such as deleting
// a cancelled order.
type ObjectIsProtectedError struct {
	ParamName string
	ID        any
	Reason    string
}

func NewObjectIsProtectedError(paramName string, id any, reason string) *ObjectIsProtectedError {
	return &ObjectIsProtectedError{ParamName: paramName, ID: id, Reason: reason}
}

func (e *ObjectIsProtectedError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrObjectIsProtected, e.ParamName, sanitize(e.ID), e.Reason)
}

func (e *ObjectIsProtectedError) Unwrap() error {
	return ErrObjectIsProtected
}

// PersistenceError wraps a storage failure with the operation that hit it.
// Both ErrPersistence and the underlying cause match errors.Is.
type PersistenceError struct {
	Operation string
	Cause     error
}

func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{Operation: operation, Cause: cause}
}

func (e *PersistenceError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrPersistence, e.Operation), e.Cause)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Cause}
}
