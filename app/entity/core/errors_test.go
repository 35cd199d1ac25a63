package core_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/wasya-io/kilo-core/app/entity/core"
)

func TestStructuredError_Is(t *testing.T) {
	ioErr := core.NewIOError("write failed", io.ErrClosedPipe)
	wrapped := fmt.Errorf("frame: %w", ioErr)

	if !errors.Is(wrapped, core.ErrIO) {
		t.Error("wrapped io error should match ErrIO")
	}
	if errors.Is(wrapped, core.ErrEncoding) {
		t.Error("io error should not match ErrEncoding")
	}
	if !errors.Is(wrapped, io.ErrClosedPipe) {
		t.Error("inner error should be reachable through Unwrap")
	}
}

func TestStructuredError_Categories(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
		category core.ErrorCategory
	}{
		{core.NewEncodingError("invalid utf-8"), core.ErrEncoding, core.ErrorCategoryEncoding},
		{core.NewConfigError("rows must be >= 1"), core.ErrConfig, core.ErrorCategoryConfig},
		{core.NewIOError("poll", nil), core.ErrIO, core.ErrorCategoryIO},
	}

	for _, tt := range tests {
		if !errors.Is(tt.err, tt.sentinel) {
			t.Errorf("%v: expected to match %v", tt.err, tt.sentinel)
		}
		if got := core.CategoryOf(tt.err); got != tt.category {
			t.Errorf("%v: category = %v, want %v", tt.err, got, tt.category)
		}
	}

	if got := core.CategoryOf(errors.New("plain")); got != core.ErrorCategoryUnknown {
		t.Errorf("plain error category = %v", got)
	}
}

func TestStructuredError_Message(t *testing.T) {
	err := core.NewIOError("write failed", io.EOF)
	if got, want := err.Error(), "[io] write failed: EOF"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := core.NewConfigError("zero rows").Error(), "[config] zero rows"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
