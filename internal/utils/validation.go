package utils

import (
	"fmt"
	"net"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain runs validators in order and stops at the first failure
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Validate runs all validators in the chain
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return ValidationError{Field: field, Value: `""`, Message: "cannot be empty"}
		}
		return nil
	}
}

// IsOneOf validates that a value is one of the allowed values
func IsOneOf[T comparable](field string, allowed ...T) Validator[T] {
	return func(value T) error {
		for _, allowedValue := range allowed {
			if value == allowedValue {
				return nil
			}
		}
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("must be one of %v", allowed),
		}
	}
}

// EachOneOf validates that every element of a slice is one of the allowed values
func EachOneOf[T comparable](field string, allowed ...T) Validator[[]T] {
	check := IsOneOf(field, allowed...)
	return func(values []T) error {
		for _, v := range values {
			if err := check(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// NotNegative validates that an int is zero or more
func NotNegative(field string) Validator[int] {
	return func(value int) error {
		if value < 0 {
			return ValidationError{Field: field, Value: value, Message: "cannot be negative"}
		}
		return nil
	}
}

// ListenAddress validates a "host:port" listen address; the host may be empty
func ListenAddress(field string) Validator[string] {
	return func(value string) error {
		if _, _, err := net.SplitHostPort(value); err != nil {
			return ValidationError{Field: field, Value: value, Message: "must be host:port"}
		}
		return nil
	}
}
