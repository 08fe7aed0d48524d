package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"finsight/internal/contracts"
	"finsight/internal/dto"
	"finsight/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	nop := zap.NewNop()
	registry, err := contracts.Load("", nop)
	require.NoError(t, err)

	dispatchService := service.NewDispatchService(registry, nop)
	analysisService := service.NewAnalysisService(
		registry,
		service.NewClassificationService(nop),
		service.NewRatiosService(nop),
		service.NewRiskService(nop),
		nop,
	)
	handler := NewAnalysisHandler(dispatchService, analysisService, nop)

	app := fiber.New()
	app.Post("/api/v1/analysis/requests", handler.BuildRequests)
	app.Post("/api/v1/analysis/run", handler.Analyze)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestBuildRequestsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/analysis/requests", dto.BuildRequestsInput{
		DocType:  "bank_statement",
		Services: []string{"classification", "ratios"},
		OCRText:  "statement text",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var requests []dto.ServiceRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&requests))
	require.Len(t, requests, 2)
	assert.Equal(t, "classification", requests[0].ServiceRequested)
	assert.Equal(t, "ratios", requests[1].ServiceRequested)
	assert.Equal(t, "bank_statement", requests[0].Contract.DocType)
}

func TestBuildRequestsEndpoint_ValidationError(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/analysis/requests", dto.BuildRequestsInput{
		DocType: "bank_statement",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/analysis/run", map[string]any{
		"docType":  "bank_statement",
		"services": []string{"classification", "risk"},
		"transactions": []map[string]any{
			{"description": "Monthly Salary", "amount": "20000"},
			{"description": "Rent payment", "amount": "-8000"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope dto.DocumentAgentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Nil(t, envelope.FatalError)
	assert.Equal(t, []string{"classification", "risk"}, envelope.Meta.ServicesCompleted)
	require.NotNil(t, envelope.Classification)
	assert.Len(t, envelope.Classification.Income, 1)
	require.NotNil(t, envelope.Risk)
	assert.Equal(t, 70, envelope.Risk.Score)
}

func TestAnalyzeEndpoint_MissingDocType(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/analysis/run", map[string]any{
		"services": []string{"classification"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "docType")
}

func TestAnalyzeEndpoint_UnknownDocTypeReturnsEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/analysis/run", map[string]any{
		"docType":  "unknown_type",
		"services": []string{"classification"},
	})
	// contract misses surface as a fatal error inside the envelope, not
	// as a transport-level failure
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope dto.DocumentAgentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotNil(t, envelope.FatalError)
	assert.Equal(t, "contract_not_found", envelope.FatalError.Code)
	assert.Equal(t, "unknown_type", envelope.Meta.DocType)
}
