package models

import "fmt"

// InvalidEnumError reports an unrecognized enum string, named by field, before
// any numerical work happens.
type InvalidEnumError struct {
	Field string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %v: %q", e.Field, e.Value)
}

// PreconditionError reports inputs that fail validation before a pricing
// process is constructed.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return e.Msg
}

func Preconditionf(template string, args ...interface{}) *PreconditionError {
	return &PreconditionError{Msg: fmt.Sprintf(template, args...)}
}

// DomainError reports inputs that make a closed-form inversion undefined.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string {
	return e.Msg
}

func Domainf(template string, args ...interface{}) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(template, args...)}
}

// NumericalError reports a non-finite value escaping a numerical routine.
type NumericalError struct {
	Msg string
}

func (e *NumericalError) Error() string {
	return e.Msg
}

func Numericalf(template string, args ...interface{}) *NumericalError {
	return &NumericalError{Msg: fmt.Sprintf(template, args...)}
}
