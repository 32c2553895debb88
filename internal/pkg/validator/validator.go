package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В ошибках используются имена полей из json-тегов (cadastral_number, а не CadastralNumber)
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FirstInvalidField возвращает имя первого поля, не прошедшего валидацию
func FirstInvalidField(err error) string {
	var errs validator.ValidationErrors
	if stderrors.As(err, &errs) && len(errs) > 0 {
		return errs[0].Field()
	}
	return ""
}
