package contracts

import (
	"errors"
	"fmt"
)

// ErrInternal is the only message surfaced for unexpected failures
var ErrInternal = errors.New("internal error")

// ValidationError 입력 검증 실패 (fetch 전에 반환)
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a validation error with a human-readable reason
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// DataError 데이터 부족/조회 실패
type DataError struct {
	Ticker string // 비어 있으면 페어 단위 오류
	Reason string
}

func (e *DataError) Error() string {
	return e.Reason
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDataError reports whether err is a DataError
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

// PublicMessage 호출자에게 노출 가능한 메시지
// 검증/데이터 오류 외에는 내부 정보를 노출하지 않음
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsValidationError(err) || IsDataError(err) {
		return err.Error()
	}
	return ErrInternal.Error()
}
