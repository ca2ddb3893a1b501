package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"BistroHub/pkg/errors"
)

// ErrorResponse 统一的错误响应格式
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details map[string]interface{} `json:"details,omitempty"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
}

// SuccessResponse 统一的成功响应格式
type SuccessResponse struct {
	Data interface{}            `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	// 根据错误码映射 HTTP 状态码
	switch def.Code {
	case "OTP_RATE_LIMITED", "VERIFICATION_SLIDER_REQUIRED", "TOO_MANY_REQUESTS":
		return http.StatusTooManyRequests // 429
	case "INVALID_CREDENTIALS", "UNAUTHORIZED":
		return http.StatusUnauthorized // 401
	case "OWNER_REQUIRED":
		return http.StatusForbidden // 403
	case "PARTNER_NOT_FOUND", "PROFILE_NOT_FOUND", "ORDER_NOT_FOUND",
		"STAFF_NOT_FOUND", "UPLOAD_NOT_FOUND":
		return http.StatusNotFound // 404
	case "EMAIL_ALREADY_REGISTERED", "PHONE_ALREADY_REGISTERED":
		return http.StatusConflict // 409
	case "ONBOARDING_SUBMIT_IN_FLIGHT":
		return http.StatusConflict // 409，提交仍在进行中
	case "UPLOAD_TOO_LARGE":
		return http.StatusRequestEntityTooLarge // 413
	case "VERIFICATION_CODE_EXPIRED", "VERIFICATION_CODE_INVALID",
		"VERIFICATION_SLIDER_FAILED", "INVALID_REQUEST", "INVALID_PARTNER_ID",
		"ONBOARDING_STEP_INVALID", "ONBOARDING_FORM_DATA_MISSING",
		"EMAIL_CONFIRM_REQUIRED", "EMAIL_CONFIRM_CODE_INVALID",
		"ORDER_TRANSITION_INVALID", "STAFF_ROLE_INVALID", "STAFF_LIMIT_REACHED",
		"UPLOAD_KIND_INVALID":
		return http.StatusBadRequest // 400
	case "PROFILE_UPDATE_REJECTED":
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error 返回错误响应
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode := errorToHTTPStatus(err)

	var code, message string

	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

func SuccessWithMeta(ctx context.Context, c *app.RequestContext, data interface{}, meta map[string]interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// NoContent 返回 204 No Content（用于 DELETE 等操作）
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
