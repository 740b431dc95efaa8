package dto

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return nil
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}

// validationError wraps a message as a 400 validation failure.
func validationError(message string) exception.ApplicationError {
	return exception.ApplicationError{
		Kind:       exception.KindValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// hasTag reports whether err is a validator error list containing tag.
func hasTag(err error, tag string) bool {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return false
	}

	for _, fe := range ve {
		if fe.Tag() == tag {
			return true
		}
	}

	return false
}
