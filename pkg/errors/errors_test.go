package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "basic error without underlying",
			err:      &Error{Code: ExitCodeGeneral, Message: "test error"},
			expected: "test error",
		},
		{
			name:     "error with underlying",
			err:      &Error{Code: ExitCodeStorage, Message: "storage error", Underlying: errors.New("disk full")},
			expected: "storage error: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:       ExitCodeGeneral,
		Message:    "test error",
		Underlying: underlying,
	}

	if !errors.Is(err, underlying) {
		t.Errorf("errors.Is() did not find the underlying error")
	}
}

func TestWrap_PreservesCode(t *testing.T) {
	original := New(ExitCodeStorage, "database unreachable")
	wrapped := Wrap(original, "failed to list entries")

	if wrapped.Code != ExitCodeStorage {
		t.Errorf("Code = %d, want preserved %d", wrapped.Code, ExitCodeStorage)
	}
	if wrapped.Message != "failed to list entries: database unreachable" {
		t.Errorf("Message = %q", wrapped.Message)
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsExitCode(t *testing.T) {
	err := StorageError(errors.New("locked"))

	if !IsExitCode(err, ExitCodeStorage) {
		t.Error("IsExitCode() = false for matching code")
	}
	if IsExitCode(err, ExitCodeConfig) {
		t.Error("IsExitCode() = true for non-matching code")
	}
	if IsExitCode(nil, ExitCodeStorage) {
		t.Error("IsExitCode(nil) = true")
	}
	if IsExitCode(errors.New("plain"), ExitCodeGeneral) {
		t.Error("IsExitCode() = true for non-Error type")
	}
}

func TestCancelledError(t *testing.T) {
	err := CancelledError("clear clipboard history")

	if !IsExitCode(err, ExitCodeCancellation) {
		t.Errorf("CancelledError code = %d, want %d", err.Code, ExitCodeCancellation)
	}
	if err.Message != "Operation cancelled: clear clipboard history" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Suggestion == "" {
		t.Error("CancelledError should carry a suggestion")
	}
}

func TestHandleReturn(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{name: "nil error", err: nil, want: ExitCodeSuccess},
		{name: "typed error", err: New(ExitCodeValidation, "bad input"), want: ExitCodeValidation},
		{name: "plain error", err: errors.New("something"), want: ExitCodeGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandleReturn(tt.err); got != tt.want {
				t.Errorf("HandleReturn() = %d, want %d", got, tt.want)
			}
		})
	}
}
