package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookstore/internal/apperrors"
)

func init() {
	// report binding failures by JSON name instead of Go field name
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Message string         `json:"message"`
	Code    apperrors.Code `json:"code"`
	Field   string         `json:"field,omitempty"`
}

// SuccessResponse is a standard success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned when a resource was created.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// --- Error Response Helpers ---

// respondAppError maps err to its status code. Errors outside the taxonomy are
// logged and answered with a generic 500.
func respondAppError(c *gin.Context, log *logrus.Logger, err error, context string) {
	_ = c.Error(err)

	appErr, ok := apperrors.As(err)
	if !ok || appErr.Code == apperrors.CodeInternal {
		respondInternalError(c, log, err, context)
		return
	}

	c.JSON(appErr.Code.HTTPStatus(), ErrorResponse{
		Message: appErr.Message,
		Code:    appErr.Code,
		Field:   appErr.Field,
	})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, log *logrus.Logger, err error, context string) {
	log.WithError(err).WithField("operation", context).Error("internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "internal server error",
		Code:    apperrors.CodeInternal,
	})
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with the new resource id.
func respondCreated(c *gin.Context, message string, id uint) {
	c.JSON(http.StatusCreated, CreatedResponse{Message: message, ID: id})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
func parseIDParam(c *gin.Context, paramName string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Validation(paramName, "invalid "+paramName)
	}
	return uint(id), nil
}

// --- Request Binding ---

// bindJSON decodes the request body into obj, rejecting unknown fields and
// type mismatches, then runs the `binding` tag validation.
func bindJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return apperrors.Validation("", "request body is required")
	}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(obj); err != nil {
		return decodeError(err)
	}
	if decoder.More() {
		return apperrors.Validation("", "request body must contain a single JSON object")
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return validationError(err)
	}
	return nil
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return apperrors.Validation("", "request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.Validation("", "malformed JSON")
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return apperrors.Validation("", "request body must be a JSON object")
		}
		if isUnsigned(typeErr.Type) && strings.HasPrefix(typeErr.Value, "number") {
			return apperrors.Validation(typeErr.Field, typeErr.Field+" must be a positive integer")
		}
		return apperrors.Validation(typeErr.Field,
			fmt.Sprintf("%s must be a %s, got %s", typeErr.Field, jsonTypeName(typeErr.Type), typeErr.Value))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperrors.Validation(field, "unknown field "+field)
	default:
		return apperrors.Validation("", "invalid request body")
	}
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Validation("", "invalid request body")
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.Validation(field, field+" is required")
	case "max":
		return apperrors.Validation(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	default:
		return apperrors.Validation(field, field+" is invalid")
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

func isUnsigned(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
