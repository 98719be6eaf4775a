package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	schemaVersionPattern = regexp.MustCompile(`^\d+\.\d+$`)
	logLevels            = map[string]struct{}{"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "disabled": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return schemaVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("param_type", func(fl validator.FieldLevel) bool {
			return param.Type(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			return isLogLevel(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func isLogLevel(level string) bool {
	_, ok := logLevels[strings.ToLower(level)]
	return ok
}
