package backend

import (
    "errors"
    "strings"
)

// ValidationError はユーザー入力のアドレスが不正な場合のエラー。
// 呼び出し側のバグ扱いで、リトライはしない。
type ValidationError struct {
    Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
    ErrEmptyAddress      = &ValidationError{Reason: "backend address must not be empty"}
    ErrUnsupportedScheme = &ValidationError{Reason: "only http:// or https:// addresses are supported"}
)

// IsValidation は err が ValidationError かどうかを返す。
func IsValidation(err error) bool {
    var ve *ValidationError
    return errors.As(err, &ve)
}

// NormalizeBackendURL は前後の空白を除去し、スキームを検証して末尾の "/" をすべて取り除く。
func NormalizeBackendURL(raw string) (string, error) {
    a := strings.TrimSpace(raw)
    if a == "" {
        return "", ErrEmptyAddress
    }
    if !strings.HasPrefix(a, "http://") && !strings.HasPrefix(a, "https://") {
        return "", ErrUnsupportedScheme
    }
    return strings.TrimRight(a, "/"), nil
}
