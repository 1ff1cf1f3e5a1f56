package errors

import (
	"fmt"
	"strings"
)

// DuplicateNameError reports a name defined or grouped twice
type DuplicateNameError struct {
	*BaseError
	Name  string // the repeated name
	Scope string // "registry" or the group being assembled
}

// NewDuplicateNameError creates a duplicate name error
func NewDuplicateNameError(scope, name string) *DuplicateNameError {
	return &DuplicateNameError{
		BaseError: New(DuplicateNameErrorCode, fmt.Sprintf("%s: parameter '%s' is already defined", scope, name)).
			WithContext("name", name).
			WithContext("scope", scope).
			WithSuggestion("Define every parameter once and reference it by name from each group"),
		Name:  name,
		Scope: scope,
	}
}

// WithLocation adds location information to the error
func (e *DuplicateNameError) WithLocation(loc SourceLocation) *DuplicateNameError {
	e.BaseError.WithLocation(loc)
	return e
}

// UnknownParameterError reports a reference to a descriptor that was never defined
type UnknownParameterError struct {
	*BaseError
	Name      string   // the unresolved name
	Available []string // names that are defined, for suggestions
}

// NewUnknownParameterError creates an unknown parameter error
func NewUnknownParameterError(name string, available []string) *UnknownParameterError {
	err := &UnknownParameterError{
		BaseError: New(UnknownParameterErrorCode, fmt.Sprintf("parameter '%s' is not defined", name)).
			WithContext("name", name),
		Name:      name,
		Available: available,
	}
	if near := closestNames(name, available); len(near) > 0 {
		err.WithSuggestion(fmt.Sprintf("Did you mean: %s?", strings.Join(near, ", ")))
	}
	return err
}

// WithLocation adds location information to the error
func (e *UnknownParameterError) WithLocation(loc SourceLocation) *UnknownParameterError {
	e.BaseError.WithLocation(loc)
	return e
}

// UnexpectedParameterError reports a call argument outside a constructor's declared set
type UnexpectedParameterError struct {
	*BaseError
	Constructor string // constructor or target that rejected the argument
	Name        string // the undeclared argument
}

// NewUnexpectedParameterError creates an unexpected parameter error
func NewUnexpectedParameterError(constructor, name string) *UnexpectedParameterError {
	return &UnexpectedParameterError{
		BaseError: New(UnexpectedParameterErrorCode, fmt.Sprintf("%s() got an unexpected parameter '%s'", constructor, name)).
			WithContext("constructor", constructor).
			WithContext("name", name),
		Constructor: constructor,
		Name:        name,
	}
}

// RegistrySealedError reports a mutation attempted after sealing, or a build
// step attempted before it
type RegistrySealedError struct {
	*BaseError
	Operation string // the rejected operation
	Sealed    bool   // registry state when the operation was attempted
}

// NewRegistrySealedError creates an error for an operation on a sealed registry
func NewRegistrySealedError(operation string) *RegistrySealedError {
	return &RegistrySealedError{
		BaseError: New(RegistrySealedErrorCode, fmt.Sprintf("cannot %s: registry is sealed", operation)).
			WithContext("operation", operation).
			WithSuggestion("Define all descriptors before calling Seal"),
		Operation: operation,
		Sealed:    true,
	}
}

// NewRegistryNotSealedError creates an error for a build step that needs a sealed registry
func NewRegistryNotSealedError(operation string) *RegistrySealedError {
	return &RegistrySealedError{
		BaseError: New(RegistrySealedErrorCode, fmt.Sprintf("cannot %s: registry is not sealed", operation)).
			WithContext("operation", operation).
			WithSuggestion("Call Seal once every descriptor is defined"),
		Operation: operation,
	}
}

// FieldTypeError reports a value that cannot be stored in its target field
type FieldTypeError struct {
	*BaseError
	Name     string // parameter name
	Expected string // field type
	Actual   string // value type
}

// NewFieldTypeError creates a field type error
func NewFieldTypeError(name, expected, actual string) *FieldTypeError {
	return &FieldTypeError{
		BaseError: New(FieldTypeErrorCode, fmt.Sprintf("parameter '%s': cannot use %s as %s", name, actual, expected)).
			WithContext("name", name),
		Name:     name,
		Expected: expected,
		Actual:   actual,
	}
}

// TypeSyntaxError reports a value-type expression that does not parse
type TypeSyntaxError struct {
	*BaseError
	Expr string // the offending expression
}

// NewTypeSyntaxError creates a type syntax error
func NewTypeSyntaxError(expr string, cause error) *TypeSyntaxError {
	return &TypeSyntaxError{
		BaseError: Wrap(TypeSyntaxErrorCode, fmt.Sprintf("invalid type expression '%s'", expr), cause).
			WithSuggestion("Use a Go type such as *string, []any, map[string]any or location.Example"),
		Expr: expr,
	}
}

// closestNames returns up to three candidates that share a prefix with name,
// contain it, or are within two edits of it
func closestNames(name string, candidates []string) []string {
	var result []string
	for _, c := range candidates {
		if c == name {
			continue
		}
		if strings.HasPrefix(c, name) || strings.HasPrefix(name, c) ||
			strings.Contains(c, name) || editDistance(name, c) <= 2 {
			result = append(result, c)
		}
		if len(result) == 3 {
			break
		}
	}
	return result
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
