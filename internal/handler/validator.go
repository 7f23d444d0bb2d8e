package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// Validator checks request bodies against their struct tags
type Validator struct {
	validate *validator.Validate
}

var validate *Validator

// enumTags maps custom tags to the domain parser that accepts them
var enumTags = map[string]validator.Func{
	"action": enumValidator(domain.ParseAction),
	"slot":   enumValidator(domain.ParseSlot),
	"skill":  enumValidator(domain.ParseSkill),
	"chest":  enumValidator(domain.ParseChestType),
	"class":  enumValidator(domain.ParseClass),
	"rarity": enumValidator(domain.ParseRarity),
}

// InitValidator (re)builds the shared validator with the domain enum tags
func InitValidator() {
	v := validator.New()
	for tag, fn := range enumTags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	validate = &Validator{validate: v}
}

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator output into field -> message pairs
// without exposing Go struct names beyond a lowercased field key.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if _, ok := enumTags[fe.Tag()]; ok {
		return "Invalid " + fe.Tag()
	}

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("Must be at most %s%s", fe.Param(), unit)
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "excludesall":
		return "Contains invalid characters"
	case "uuid", "uuid4":
		return "Must be a valid id"
	}
	return "Invalid value"
}

// enumValidator adapts a domain parser to a field validation. Empty values
// pass so that optional fields are left to the required tag.
func enumValidator[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if raw == "" {
			return true
		}
		_, err := parse(raw)
		return err == nil
	}
}
