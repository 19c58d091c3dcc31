// Package validatex validates structs tagged with `validate:"..."` rules and
// reports failures as errx validation errors.
package validatex

import (
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	validateErrors = errx.NewRegistry("VALIDATION")

	ErrInvalid     = validateErrors.Register("FAILED", errx.TypeValidation, http.StatusBadRequest, "Validation failed")
	ErrUnsupported = validateErrors.Register("UNSUPPORTED", errx.TypeInternal, http.StatusInternalServerError, "Value cannot be validated")
)

// Validatable is implemented by types with checks that tags cannot express.
// Struct runs it after the tag rules pass.
type Validatable interface {
	Validate() error
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		// Report yaml/json names, which is what users typed
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "yaml"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
	return instance
}

// RegisterRule adds a custom tag rule
func RegisterRule(tag string, fn func(value string) bool) error {
	return get().RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

// Struct validates v against its tags. Failures are returned as a single
// VALIDATION_FAILED error whose details map each field path to the rule it broke.
func Struct(v any) error {
	if err := get().Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if !asValidationErrors(err, &fieldErrs) {
			return validateErrors.NewWithCause(ErrUnsupported, err)
		}

		out := validateErrors.New(ErrInvalid)
		messages := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			path := fieldPath(fe)
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			out.WithDetail(path, rule)
			messages = append(messages, path+" failed "+rule)
		}
		out.Message = "Validation failed: " + strings.Join(messages, ", ")
		return out
	}

	if val, ok := v.(Validatable); ok {
		if err := val.Validate(); err != nil {
			if _, isErrx := errx.As(err); isErrx {
				return err
			}
			return validateErrors.NewWithMessage(ErrInvalid, err.Error()).WithCause(err)
		}
	}
	return nil
}

// Var validates a single value against a tag expression such as "oneof=a b"
func Var(field string, v any, tag string) error {
	if err := get().Var(v, tag); err != nil {
		return validateErrors.NewWithMessage(ErrInvalid, field+" failed "+tag).WithDetail(field, tag)
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fe, ok := err.(validator.ValidationErrors)
	if ok {
		*target = fe
	}
	return ok
}

// fieldPath drops the root struct name from the namespace: Settings.gateway.apiKey -> gateway.apiKey
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
