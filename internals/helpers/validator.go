package helper

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct: validasi DTO berdasarkan tag `validate`.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
