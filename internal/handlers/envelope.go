package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ilyahahaha/vneshtata-new/internal/service"
)

// Envelope is the uniform response shape of every procedure.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Result  any    `json:"result"`
}

func (h HandlerSet) ok(c *gin.Context, status int, message string, result any) {
	if result == nil {
		result = gin.H{}
	}
	c.JSON(status, Envelope{
		Status:  status,
		Message: message,
		Result:  result,
	})
}

func (h HandlerSet) fail(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected handler error")
		h.ok(c, http.StatusInternalServerError, "Unknown error", nil)
		return
	}

	status := statusForCode(svcErr.Code)
	if svcErr.Code == service.CodeInternal {
		h.log.Error().Err(svcErr).Str("path", c.Request.URL.Path).Msg("internal error")
	}
	h.ok(c, status, svcErr.Message, nil)
}

func statusForCode(code service.Code) int {
	switch code {
	case service.CodeInvalid:
		return http.StatusBadRequest
	case service.CodeUnauthenticated:
		return http.StatusUnauthorized
	case service.CodeUnauthorized:
		return http.StatusForbidden
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// failBinding turns request-binding failures into a field-keyed error
// report before anything else runs.
func (h HandlerSet) failBinding(c *gin.Context, err error) {
	h.failValidation(c, fieldErrors(err))
}

func (h HandlerSet) failValidation(c *gin.Context, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	c.JSON(http.StatusBadRequest, Envelope{
		Status:  http.StatusBadRequest,
		Message: "Invalid request parameters",
		Result:  gin.H{"errors": errs},
	})
}

func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[jsonFieldName(fe.Field())] = messageForTag(fe)
	}
	return out
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email"
	case "oneof":
		return "Value is not allowed"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	}
	return "Invalid value"
}

// trimRequired records a field error when the value is blank after
// trimming; binders only catch fully absent fields.
func trimRequired(errs map[string]string, field, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs[field] = "This field is required"
	}
	return trimmed
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
