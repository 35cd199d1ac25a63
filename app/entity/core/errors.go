package core

import (
	"errors"
	"fmt"
)

// ErrorCategory はエラーの種類を表す
type ErrorCategory int

const (
	// ErrorCategoryUnknown は未分類のエラー
	ErrorCategoryUnknown ErrorCategory = iota
	// ErrorCategoryIO は端末への書き込み・端末からの読み取りのエラー
	ErrorCategoryIO
	// ErrorCategoryEncoding はUTF-8でない出力を積もうとした場合のエラー
	ErrorCategoryEncoding
	// ErrorCategoryConfig は起動時の設定（端末サイズなど）のエラー
	ErrorCategoryConfig
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrorCategoryIO:
		return "io"
	case ErrorCategoryEncoding:
		return "encoding"
	case ErrorCategoryConfig:
		return "config"
	default:
		return "unknown"
	}
}

// カテゴリ判定用のセンチネル。errors.Is(err, ErrIO) のように使う
var (
	ErrIO       = &StructuredError{Category: ErrorCategoryIO, Message: "i/o error"}
	ErrEncoding = &StructuredError{Category: ErrorCategoryEncoding, Message: "encoding error"}
	ErrConfig   = &StructuredError{Category: ErrorCategoryConfig, Message: "config error"}
)

// StructuredError はカテゴリ付きのエラー
type StructuredError struct {
	Category ErrorCategory
	Message  string
	inner    error
}

func (e *StructuredError) Error() string {
	if e.inner == nil {
		return fmt.Sprintf("[%v] %s", e.Category, e.Message)
	}
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Message, e.inner)
}

// Unwrap は内部のエラーを返す
func (e *StructuredError) Unwrap() error {
	return e.inner
}

// Is は同じカテゴリのセンチネルと一致する
func (e *StructuredError) Is(target error) bool {
	switch target {
	case ErrIO, ErrEncoding, ErrConfig:
		return target.(*StructuredError).Category == e.Category
	}
	return false
}

// NewStructuredError は新しいStructuredErrorを作成する
func NewStructuredError(category ErrorCategory, message string, inner error) *StructuredError {
	return &StructuredError{
		Category: category,
		Message:  message,
		inner:    inner,
	}
}

func NewIOError(message string, inner error) *StructuredError {
	return NewStructuredError(ErrorCategoryIO, message, inner)
}

func NewEncodingError(message string) *StructuredError {
	return NewStructuredError(ErrorCategoryEncoding, message, nil)
}

func NewConfigError(message string) *StructuredError {
	return NewStructuredError(ErrorCategoryConfig, message, nil)
}

// CategoryOf はエラーチェーンから最初に見つかったカテゴリを返す
func CategoryOf(err error) ErrorCategory {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Category
	}
	return ErrorCategoryUnknown
}
