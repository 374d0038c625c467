// Package errdefs defines the error kinds shared by the dictionary, provider
// and resolver packages.
//
// Every failure surfaced to a caller is an *Error carrying a Kind. Callers
// branch on the kind with the Is* helpers, which use errors.As and therefore
// see through fmt.Errorf("...: %w") wrapping.
package errdefs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes errors.
type Kind string

const (
	// KindConfiguration indicates a missing or invalid dictionary source.
	// Fatal at construction time.
	KindConfiguration Kind = "CONFIGURATION"

	// KindNotFound indicates an unknown category, key, provider or capability.
	KindNotFound Kind = "NOT_FOUND"

	// KindUnsupportedShape indicates a raw value whose shape cannot be
	// collapsed to a single string.
	KindUnsupportedShape Kind = "UNSUPPORTED_VALUE_SHAPE"

	// KindCyclicExpression indicates an expansion that exceeded its pass or
	// depth budget.
	KindCyclicExpression Kind = "CYCLIC_EXPRESSION"
)

// Error is the error type returned by the fakery packages.
type Error struct {
	// Kind identifies the error category.
	Kind Kind

	// Message is a human-readable description.
	Message string

	// Category, Key and Provider locate the failure when known.
	Category string
	Key      string
	Provider string

	// Details contains additional context.
	Details map[string]string

	// Err is the underlying cause (optional).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)

	var loc []string
	if e.Provider != "" {
		loc = append(loc, "provider="+e.Provider)
	}
	if e.Category != "" {
		loc = append(loc, "category="+e.Category)
	}
	if e.Key != "" {
		loc = append(loc, "key="+e.Key)
	}
	if len(loc) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(loc, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Configuration creates a KindConfiguration error.
func Configuration(err error, format string, args ...any) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// CategoryNotFound creates a KindNotFound error for an unknown category.
func CategoryNotFound(category string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Message:  fmt.Sprintf("category with name '%s' not found", category),
		Category: category,
	}
}

// KeyNotFound creates a KindNotFound error for a key missing from a category.
func KeyNotFound(category, key string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Message:  fmt.Sprintf("parameter with name '%s' for this category not found", key),
		Category: category,
		Key:      key,
	}
}

// ProviderNotFound creates a KindNotFound error for an unknown provider.
func ProviderNotFound(provider string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Message:  fmt.Sprintf("provider with name '%s' not found", provider),
		Provider: provider,
	}
}

// CapabilityNotFound creates a KindNotFound error for a capability missing
// from a provider.
func CapabilityNotFound(provider, capability string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Message:  fmt.Sprintf("capability '%s' not found", capability),
		Provider: provider,
		Key:      capability,
	}
}

// RunNotFound creates a KindNotFound error for an unknown recorded run.
func RunNotFound(id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("run '%s' not found", id),
		Details: map[string]string{"run_id": id},
	}
}

// UnsupportedShape creates a KindUnsupportedShape error.
func UnsupportedShape(shape string) *Error {
	return &Error{
		Kind:    KindUnsupportedShape,
		Message: fmt.Sprintf("unsupported type of raw value: %s", shape),
	}
}

// CyclicExpression creates a KindCyclicExpression error.
// chain lists the expansions that were active when the budget ran out.
func CyclicExpression(reason string, chain []string, limit int) *Error {
	return &Error{
		Kind:    KindCyclicExpression,
		Message: fmt.Sprintf("%s (limit %d): %s", reason, limit, strings.Join(chain, " -> ")),
		Details: map[string]string{
			"limit": fmt.Sprintf("%d", limit),
			"chain": strings.Join(chain, ","),
		},
	}
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsConfiguration returns true if err is a configuration error.
func IsConfiguration(err error) bool {
	return KindOf(err) == KindConfiguration
}

// IsNotFound returns true if err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsUnsupportedShape returns true if err is an unsupported value shape error.
func IsUnsupportedShape(err error) bool {
	return KindOf(err) == KindUnsupportedShape
}

// IsCyclic returns true if err is a cyclic expression error.
func IsCyclic(err error) bool {
	return KindOf(err) == KindCyclicExpression
}
