package utils

import (
	"errors"
	"html"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"acronym-finder/internal/schemas"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

type Validator struct {
	Validate *validator.Validate
	policy   *bluemonday.Policy
}

var (
	instance *Validator
	once     sync.Once
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9.\-_]+$`)

var errNotAStructPointer = errors.New("sanitize target must be a pointer to a struct")

func GetValidator() *Validator {
	once.Do(func() {
		instance = &Validator{
			Validate: validator.New(validator.WithRequiredStructEnabled()),
			policy:   bluemonday.StrictPolicy(),
		}

		// Report fields by their JSON name, that is what clients send
		instance.Validate.RegisterTagNameFunc(jsonFieldName)

		registerCustomValidators(instance.Validate)
	})

	return instance
}

func registerCustomValidators(v *validator.Validate) {
	err := v.RegisterValidation("username_validation", usernameValidation)
	if err != nil {
		return
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// MarkupError reports a string field that would not survive the strict policy unchanged.
type MarkupError struct {
	Field string
}

func (e *MarkupError) Error() string {
	return "field " + e.Field + " contains markup"
}

// usernameValidation allows a-z, A-Z, 0-9, ., - and _
func usernameValidation(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// SanitizeData checks every string field of the struct obj points to against the strict policy.
// A field is accepted only if sanitizing it and decoding the entities the policy emits gives back
// the original text, so plain text like "Isn't" or "a & b" passes while tags and entity-encoded
// markup are rejected with a *MarkupError. Fields are never rewritten.
// Fields tagged `sanitize:"-"` are not checked.
func (v *Validator) SanitizeData(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return errNotAStructPointer
	}

	elem := value.Elem()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		structField := elem.Type().Field(i)
		if field.Kind() != reflect.String || !structField.IsExported() {
			continue
		}
		if structField.Tag.Get("sanitize") == "-" {
			continue
		}

		text := field.String()
		if html.UnescapeString(v.policy.Sanitize(text)) != text {
			return &MarkupError{Field: jsonFieldName(structField)}
		}
	}

	return nil
}

// ValidationErrorFor maps the first failed rule of a validation error to the
// error returned to the client. Markup found by SanitizeData is an invalid field.
// Unknown errors map to a generic bad request.
func ValidationErrorFor(err error) *schemas.CustomError {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return schemas.InvalidField(markupErr.Field)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return schemas.BadRequest
	}

	fieldErr := validationErrors[0]
	if fieldErr.Tag() == "required" {
		return schemas.MissingField(fieldErr.Field())
	}
	return schemas.InvalidField(fieldErr.Field())
}
