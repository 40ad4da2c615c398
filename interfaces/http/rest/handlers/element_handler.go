package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"pagecompiler/application/services"
	"pagecompiler/domain/schema"
	pkgerrors "pagecompiler/pkg/errors"
)

// ElementHandler handles element validation and catalog requests
type ElementHandler struct {
	compiler *services.CompileService
	logger   *zap.Logger
}

// NewElementHandler creates a new element handler
func NewElementHandler(compiler *services.CompileService, logger *zap.Logger) *ElementHandler {
	return &ElementHandler{
		compiler: compiler,
		logger:   logger,
	}
}

// ValidateResponse reports the outcome of a dry-run compilation
type ValidateResponse struct {
	Valid    bool                     `json:"valid"`
	Warnings []*pkgerrors.DomainError `json:"warnings,omitempty"`
	Errors   []*pkgerrors.DomainError `json:"errors,omitempty"`
}

// Validate handles POST /elements/validate. It runs the full compilation
// pipeline without touching any document, reporting every failure at once.
func (h *ElementHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req services.ElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body: "+err.Error())
		return
	}

	warnings, err := h.compiler.ValidateElement(req)
	if err != nil {
		var ve *pkgerrors.ValidationErrors
		if errors.As(err, &ve) {
			respondJSON(w, http.StatusOK, ValidateResponse{
				Valid:    false,
				Warnings: warnings,
				Errors:   ve.Errors,
			})
			return
		}
		if de := pkgerrors.GetDomainError(err); de != nil && pkgerrors.IsValidation(err) {
			respondJSON(w, http.StatusOK, ValidateResponse{
				Valid:    false,
				Warnings: warnings,
				Errors:   []*pkgerrors.DomainError{de},
			})
			return
		}
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, ValidateResponse{Valid: true, Warnings: warnings})
}

// catalogElement is one entry of the element catalog
type catalogElement struct {
	Tag       string   `json:"tag"`
	Type      string   `json:"type"`
	Container bool     `json:"container"`
	Required  []string `json:"required,omitempty"`
}

// catalogResponse lists the supported element types and property names
type catalogResponse struct {
	Elements   []catalogElement `json:"elements"`
	Properties []string         `json:"properties"`
}

// Catalog handles GET /elements
func (h *ElementHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	tags := schema.ElementTags()
	elements := make([]catalogElement, 0, len(tags))
	for _, tag := range tags {
		es, ok := schema.ElementType(tag)
		if !ok {
			continue
		}
		elements = append(elements, catalogElement{
			Tag:       es.Tag,
			Type:      es.CanonicalType,
			Container: es.Container,
			Required:  es.Required,
		})
	}

	respondJSON(w, http.StatusOK, catalogResponse{
		Elements:   elements,
		Properties: schema.PropertyNames(),
	})
}
