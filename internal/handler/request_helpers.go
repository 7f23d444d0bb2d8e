package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/Adventure_Go/internal/logger"
)

// ValidationErrorResponse is returned when a body decodes but fails its tags
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes the JSON body into req and runs the struct
// validator. On failure the 400 has already been written and the caller
// should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, opName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn("Request decode failed", "operation", opName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug("Request validation failed", "operation", opName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query value or def when it is absent
func GetOptionalQueryParam(r *http.Request, paramName string, def string) string {
	if value := r.URL.Query().Get(paramName); value != "" {
		return value
	}
	return def
}

// GetIntQueryParam reads an optional integer query parameter. It writes a 400
// and returns false when the value is present but malformed.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, def int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid integer query parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return n, true
}

// handleAction decodes and validates a request body, runs the action and
// writes its result. Errors are mapped through respondServiceError.
func handleAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(context.Context, REQ) (RES, error),
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}
