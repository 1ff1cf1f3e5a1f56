package utils

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "package", Message: "cannot be empty"}
	if err.Error() != "validation error for field 'package': cannot be empty" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	err = ValidationError{Message: "bad"}
	if err.Error() != "validation error: bad" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestValidParameterKey(t *testing.T) {
	validate := ValidParameterKey("name")

	tests := []struct {
		key     string
		wantErr bool
	}{
		{key: "title"},
		{key: "min_length"},
		{key: "path.default"},
		{key: "header.convert_underscores"},
		{key: "", wantErr: true},
		{key: ".default", wantErr: true},
		{key: "path.", wantErr: true},
		{key: "Title", wantErr: true},
		{key: "a.b.c", wantErr: true},
		{key: "max-length", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := validate(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidParameterKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestIsValidGoIdentifier(t *testing.T) {
	validate := IsValidGoIdentifier("go_name")
	for _, ok := range []string{"Title", "OpenAPIExamples", "_x"} {
		if err := validate(ok); err != nil {
			t.Errorf("expected %q to be valid, got %v", ok, err)
		}
	}
	for _, bad := range []string{"", "1x", "a-b", "a.b"} {
		if err := validate(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestIsOneOf(t *testing.T) {
	validate := IsOneOf("strategy", "inline", "alias")
	if err := validate("alias"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := validate("verbose")
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Field != "strategy" {
		t.Errorf("expected ValidationError for strategy, got %v", err)
	}
}

func TestValidatorChain_StopsAtFirstFailure(t *testing.T) {
	calls := 0
	counting := func(string) error { calls++; return nil }

	chain := NewValidatorChain(NotEmpty("name"), counting)
	if err := chain.Validate(""); err == nil {
		t.Fatal("expected error for empty value")
	}
	if calls != 0 {
		t.Errorf("validators after a failure must not run, got %d calls", calls)
	}

	chain.Add(counting)
	if err := chain.Validate("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestValidateEach(t *testing.T) {
	validate := ValidateEach("overrides", NotEmpty("name"))
	if err := validate([]string{"a", "b"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := validate([]string{"a", ""})
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Field != "overrides[1]" {
		t.Errorf("expected error at overrides[1], got %v", err)
	}
}
