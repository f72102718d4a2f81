package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	e "github.com/gartstein/hrms/internal/hrms/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError is the single translation point from service errors to HTTP
// responses. Store and driver messages never reach the client.
func (h *Handler) writeError(c *gin.Context, err error) {
	status, detail := classify(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Internal server error",
			zap.Error(err),
			zap.String("path", c.FullPath()),
			zap.String("request_id", requestID(c)),
		)
	} else {
		h.logger.Debug("request failed", zap.Int("status", status), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, errorResponse{Detail: detail})
}

func classify(err error) (int, string) {
	detail, hasDetail := e.Detail(err)
	pick := func(status int, fallback string) (int, string) {
		if hasDetail {
			return status, detail
		}
		return status, fallback
	}

	switch {
	case errors.Is(err, e.ErrInvalidInput):
		return pick(http.StatusUnprocessableEntity, "Validation error.")
	case errors.Is(err, e.ErrNotFound):
		return pick(http.StatusNotFound, "Not found.")
	case errors.Is(err, e.ErrConflict):
		return pick(http.StatusConflict, "Record already exists.")
	case errors.Is(err, e.ErrConstraint):
		return http.StatusBadRequest, "Database constraint error."
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}

// bindError converts a JSON decoding failure into a validation error naming
// the offending field where possible.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return e.Invalid(typeErr.Field, "expected "+jsonKind(typeErr.Type))
	}
	if errors.Is(err, io.EOF) {
		return e.Invalid("body", "request body required")
	}
	return e.Invalid("body", "malformed JSON")
}

// jsonKind names the JSON value kind a Go type decodes from.
func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
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
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "value"
	}
}
