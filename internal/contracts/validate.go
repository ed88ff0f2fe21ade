package contracts

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateStruct 첫 번째 실패 필드를 사람이 읽을 수 있는 메시지로 변환
func validateStruct(v interface{}, messages map[string]string) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	if msg, ok := messages[fe.StructField()]; ok {
		return &ValidationError{Field: fe.StructField(), Reason: msg}
	}
	return NewValidationError(fe.StructField(), "invalid %s (%s)", fe.Field(), fe.Tag())
}
