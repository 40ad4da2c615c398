package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pagecompiler/application/services"
	domaincfg "pagecompiler/domain/config"
	"pagecompiler/infrastructure/config"
	"pagecompiler/infrastructure/persistence/memory"
	"pagecompiler/pkg/observability"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	compiler := services.NewCompileService(domaincfg.DefaultDomainConfig(), logger)
	tracer := observability.NewTracer("pagecompiler-test")
	documents := services.NewDocumentService(memory.NewContentStore(), compiler, tracer, logger)
	cfg := &config.Config{Environment: "development", StorageBackend: "memory"}
	metrics := observability.NewMetrics("PageCompiler/test", nil, logger)
	return NewRouter(cfg, documents, compiler, metrics, tracer, logger).Setup()
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddElementAndGetDocument(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/documents/doc-1/elements", `{
		"element": {
			"type": "Heading",
			"text": "Welcome",
			"fontSize": "48px"
		}
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ElementID string `json:"element_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ElementID)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/documents/doc-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Root struct {
			Children []struct {
				ID   string `json:"id"`
				Data struct {
					Type string `json:"type"`
				} `json:"data"`
			} `json:"children"`
		} `json:"root"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, created.ElementID, doc.Root.Children[0].ID)
	assert.Equal(t, "essential/heading", doc.Root.Children[0].Data.Type)
}

func TestGetDocumentNotFound(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/documents/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddElementValidationFailure(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/documents/doc-1/elements", `{
		"element": {"type": "Heading"}
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Fields map[string][]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "text")
}

func TestAddElementMissingElementBody(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/documents/doc-1/elements", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCloneElement(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/documents/doc-1/elements", `{
		"element": {"type": "Section"}
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ElementID string `json:"element_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, handler, http.MethodPost,
		"/api/v1/documents/doc-1/elements/"+created.ElementID+"/clone", `{"deep": true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var clone struct {
		ElementID string `json:"element_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clone))
	assert.NotEqual(t, created.ElementID, clone.ElementID)
}

func TestValidateElementEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/elements/validate", `{
		"type": "Heading",
		"text": "ok",
		"glitter": "lots"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Valid    bool              `json:"valid"`
		Warnings []json.RawMessage `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Len(t, resp.Warnings, 1)
}

func TestValidateElementReportsAllFailures(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/elements/validate", `{
		"type": "Image"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Valid  bool              `json:"valid"`
		Errors []json.RawMessage `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Errors)
}

func TestElementCatalog(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/elements", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Elements []struct {
			Tag       string `json:"tag"`
			Type      string `json:"type"`
			Container bool   `json:"container"`
		} `json:"elements"`
		Properties []string `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Elements)
	assert.Contains(t, resp.Properties, "fontSize")
}
