package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"simple error", fmt.Errorf("profile not found"), "Error: profile not found"},
		{"wrapped error", fmt.Errorf("load: %w", fmt.Errorf("disk")), "Error: load: disk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("week %d is locked", 3)
	want := "Error: week 3 is locked"
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

func TestStorageError(t *testing.T) {
	cause := fmt.Errorf("disk quota exceeded")
	err := fmt.Errorf("log sleep: %w", NewStorageError("save profile", cause))

	if !stderrors.Is(err, ErrStorageUnavailable) {
		t.Error("expected error to match ErrStorageUnavailable")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected error to match its cause")
	}

	var se *StorageError
	if !stderrors.As(err, &se) {
		t.Fatal("expected errors.As to find *StorageError")
	}
	if se.Op != "save profile" {
		t.Errorf("Op = %q, want %q", se.Op, "save profile")
	}

	if NewStorageError("save profile", nil) != nil {
		t.Error("NewStorageError(nil) should return nil")
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "name", Message: "is required"},
		{Field: "age", Message: "must be at least 13"},
	}}

	if !stderrors.Is(err, ErrValidation) {
		t.Error("expected error to match ErrValidation")
	}
	if got := err.Field("age"); got != "must be at least 13" {
		t.Errorf("Field(age) = %q", got)
	}
	if got := err.Field("height"); got != "" {
		t.Errorf("Field(height) = %q, want empty", got)
	}
	want := "invalid input: name is required; age must be at least 13"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRemoteCallFailure(t *testing.T) {
	err := &RemoteCallFailure{Endpoint: "https://coach.test/motivate", Err: fmt.Errorf("timeout")}
	if !stderrors.Is(err, ErrRemoteCall) {
		t.Error("expected error to match ErrRemoteCall")
	}
}
