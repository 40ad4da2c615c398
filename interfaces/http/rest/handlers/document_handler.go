package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pagecompiler/application/services"
	"pagecompiler/domain/builder"
	"pagecompiler/pkg/observability"
	"pagecompiler/pkg/utils"
)

// DocumentHandler handles document tree HTTP requests
type DocumentHandler struct {
	documents *services.DocumentService
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *services.DocumentService, metrics *observability.Metrics, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		metrics:   metrics,
		logger:    logger,
	}
}

// AddElementRequest represents the request body for inserting an element
type AddElementRequest struct {
	ParentID string          `json:"parentId,omitempty"`
	Index    *int            `json:"index,omitempty" validate:"omitempty,min=0"`
	Element  json.RawMessage `json:"element" validate:"required"`
}

// CloneElementRequest represents the request body for cloning a subtree
type CloneElementRequest struct {
	Deep bool `json:"deep"`
}

// AddElement handles POST /documents/{documentID}/elements
func (h *DocumentHandler) AddElement(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	var req AddElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, "Validation error: "+err.Error())
		return
	}

	var element services.ElementRequest
	if err := json.Unmarshal(req.Element, &element); err != nil {
		respondBadRequest(w, "Invalid element: "+err.Error())
		return
	}

	pos := builder.Last()
	if req.Index != nil {
		pos = builder.At(*req.Index)
	}

	result, err := h.documents.AddElement(r.Context(), documentID, req.ParentID, pos, element)
	if err != nil {
		h.metrics.RecordValidationFailure(r.Context(), element.Type)
		respondError(w, h.logger, err)
		return
	}

	h.metrics.RecordCompilation(r.Context(), element.Type, len(result.Warnings))
	respondJSON(w, http.StatusCreated, result)
}

// GetDocument handles GET /documents/{documentID}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	tree, err := h.documents.GetDocument(r.Context(), documentID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, tree)
}

// CloneElement handles POST /documents/{documentID}/elements/{elementID}/clone
func (h *DocumentHandler) CloneElement(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")
	elementID := chi.URLParam(r, "elementID")

	req := CloneElementRequest{Deep: true}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body: "+err.Error())
			return
		}
	}

	cloneID, err := h.documents.CloneElement(r.Context(), documentID, elementID, req.Deep)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"element_id": cloneID})
}
