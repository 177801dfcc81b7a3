package common

import (
	"os"
	"reflect"
	"strings"
	"sync"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validateChain(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		_, err := ParseChain(field.String())
		return err == nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Chain(field.Int()).Valid()
	}
	return false
}

func validateEvmAddress(fl validator.FieldLevel) bool {
	return ethcommon.IsHexAddress(fl.Field().String())
}

func registerCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("chain", validateChain); err != nil {
		return err
	}
	return v.RegisterValidation("evm_address", validateEvmAddress)
}

// fieldName reports the wire name of a field in validation errors.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "url", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Validator returns the shared validator used for request parameters.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(fieldName)
		if err := registerCustomValidations(validate); err != nil {
			panic(err)
		}
	})
	return validate
}

// ValidateStruct checks the validate tags of s. Nil pointers pass.
func ValidateStruct(s interface{}) error {
	if s == nil {
		return nil
	}
	if v := reflect.ValueOf(s); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	return Validator().Struct(s)
}

// SetupCustomValidators registers the custom validations on gin's binding engine.
func SetupCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := registerCustomValidations(v); err != nil {
			ForceExit("Failed to init custom validator")
		}
	}
}

func ForceExit(v interface{}) {
	log.Error(v)
	os.Exit(1)
}
