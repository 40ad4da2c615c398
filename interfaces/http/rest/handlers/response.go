package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	pkgerrors "pagecompiler/pkg/errors"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// errorResponse is the wire shape of a failed request
type errorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
	Fields  map[string][]string    `json:"fields,omitempty"`
}

// respondError maps domain errors to HTTP status codes. Validation
// aggregates become a 400 with a per-field breakdown; anything unrecognized
// is a 500 with the detail kept out of the response body.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var ve *pkgerrors.ValidationErrors
	if errors.As(err, &ve) {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Code:   pkgerrors.CodeInvalidValueFormat,
			Fields: ve.ToMap(),
		})
		return
	}

	if de := pkgerrors.GetDomainError(err); de != nil {
		respondJSON(w, de.HTTPStatus, errorResponse{
			Error:   de.Message,
			Code:    de.Code,
			Details: de.Details,
		})
		return
	}

	logger.Error("Unhandled error", zap.Error(err))
	respondJSON(w, http.StatusInternalServerError, errorResponse{
		Error: "internal server error",
	})
}

// respondBadRequest writes a plain 400 for malformed request bodies
func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}
