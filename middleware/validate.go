package middleware

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs struct tag validation and flattens failures into a
// field -> message map for the standard validation envelope.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": "Invalid request body!"}
	}

	errors := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := lowerFirst(fieldErr.Field())
		errors[field] = messageForTag(field, fieldErr)
	}
	return errors
}

func messageForTag(field string, fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "email":
		return "Invalid email!"
	case "min":
		if fieldErr.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long!", field, fieldErr.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", field, fieldErr.Param())
	case "max":
		if fieldErr.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters long!", field, fieldErr.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s!", field, fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s!", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL!", field)
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
