package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/aartibhkm/admin2/internal/error/code"
)

// Response is the unified JSON envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// FieldViolation describes one failed constraint on a request field
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Success writes a 200 envelope
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Created writes a 201 envelope
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail writes the envelope for an error code
func Fail(c *gin.Context, errorCode int, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: code.GetMessage(errorCode),
		Data:    data,
	})
}

// FailWithMessage writes the envelope for an error code with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// BindError maps a ShouldBindJSON failure to the envelope. Validator errors
// become a ValidationError carrying the violated fields; anything else is a
// plain bind error.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		violations := make([]FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, FieldViolation{
				Field: fe.Field(),
				Rule:  fe.Tag(),
			})
		}
		Fail(c, code.ErrValidation, violations)
		return
	}
	Fail(c, code.ErrBind, nil)
}

// ServerError writes a generic 500. Internal details are logged by the
// caller, never leaked to the client.
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}
