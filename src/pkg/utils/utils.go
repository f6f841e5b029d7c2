package utils

import (
	"encoding/json"

	httpError "greendrop-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the uniform return value of every usecase.
type Result struct {
	Data  interface{}
	Error error
}

type responseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Status  string `json:"status,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseBody{
		Success: true,
		Message: message,
		Code:    code,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(errorBody{
			Success: false,
			Message: commonErr.Message,
			Code:    commonErr.Code,
			Status:  commonErr.Status,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(errorBody{
		Success: false,
		Message: err.Error(),
		Code:    fiber.StatusInternalServerError,
	})
}

// ConvertString renders any value as JSON for log metadata.
func ConvertString(value interface{}) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}
