package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	bare := New(CodeInvalidInput, "bad field")
	if bare.Error() != "bad field" {
		t.Errorf("unexpected message: %q", bare.Error())
	}

	withCause := ExternalServiceError("groq", fmt.Errorf("timeout"))
	if withCause.Error() != "groq service error: timeout" {
		t.Errorf("unexpected message: %q", withCause.Error())
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := UnknownFramework("ghost")
	wrapped := Wrap(inner, "while optimizing")

	if GetCode(wrapped) != CodeUnknownFramework {
		t.Errorf("wrap lost the code: %s", GetCode(wrapped))
	}
	if !stderrors.Is(wrapped, inner) {
		t.Error("wrapped error should unwrap to the original")
	}
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("disk full"), "saving state")
	if GetCode(wrapped) != CodeInternalError {
		t.Errorf("plain errors should wrap as internal: %s", GetCode(wrapped))
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "noop") != nil {
		t.Error("wrapping nil should stay nil")
	}
	if Wrapf(nil, "noop %d", 1) != nil {
		t.Error("wrapping nil should stay nil")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(fmt.Errorf("anything")) != "UNKNOWN" {
		t.Error("non-AppError should report UNKNOWN")
	}
	if GetCode(EmptyInput()) != CodeEmptyInput {
		t.Error("EmptyInput code mismatch")
	}
	if GetCode(NotFound("framework x")) != CodeNotFound {
		t.Error("NotFound code mismatch")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(InvalidInput("x")) {
		t.Error("constructor result should be an AppError")
	}
	if IsAppError(fmt.Errorf("x")) {
		t.Error("plain error is not an AppError")
	}
}
