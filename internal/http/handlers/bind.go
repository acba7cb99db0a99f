package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON decodes and validates the body, answering the 400 itself on
// failure. The envelope message names the first offending field so clients
// get something actionable without a nested error payload.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, bindErrorMessage(err, out))

		return false
	}

	return true
}

func bindErrorMessage(err error, out interface{}) string {
	var validatorErrors validator.ValidationErrors

	if errors.As(err, &validatorErrors) && len(validatorErrors) > 0 {
		first := validatorErrors[0]
		field := jsonFieldName(out, first.StructField())

		return field + " " + validationMessage(first.Tag(), first.Param())
	}

	var syntaxError *json.SyntaxError

	if errors.As(err, &syntaxError) {
		return "Request body is not valid JSON"
	}

	var typeError *json.UnmarshalTypeError

	if errors.As(err, &typeError) {
		field := typeError.Field

		if mapped := jsonFieldName(out, typeError.Field); mapped != "" {
			field = mapped
		}

		return field + " has the wrong type"
	}

	// custom UnmarshalJSON failures (dates, durations) end up here with a
	// message already phrased for humans
	return "Invalid request body: " + err.Error()
}

// jsonFieldName maps a struct field of the bound request to its json tag.
// Request bodies here are flat, nesting is not handled.
func jsonFieldName(out interface{}, structField string) string {
	t := reflect.TypeOf(out)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return structField
	}

	sf, ok := t.FieldByName(structField)

	if !ok {
		return structField
	}

	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")

	if name == "" || name == "-" {
		return sf.Name
	}

	return name
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	default:
		if param != "" {
			return "failed " + rule + " validation (" + param + ")"
		}
		return "failed " + rule + " validation"
	}
}
