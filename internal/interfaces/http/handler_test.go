package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootline/internal/entities"
	"bootline/internal/repository"
	"bootline/internal/usecases"
)

type stubModel struct {
	response entities.ModelResponse
}

func (s *stubModel) CreateMessage(_ context.Context, _ entities.ModelRequest) (*entities.ModelResponse, error) {
	resp := s.response
	return &resp, nil
}

func testRouter(t *testing.T, agent *usecases.AgentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewOrderStore([]entities.OrderRecord{
		{OrderNumber: "DM24210432", CustomerName: "Teresa Q.", ProductName: "1460 Smooth Leather Boot", IssueCategory: "sizing", PriorityLevel: entities.PriorityHigh},
		{OrderNumber: "DM24165432", CustomerName: "Marcus T.", ProductName: "2976 Chelsea Boot", IssueCategory: "repair", PriorityLevel: entities.PriorityCritical, EscalationNeeded: true},
	})

	handler := NewHandler(
		store,
		usecases.NewClassifier(usecases.DefaultRules),
		usecases.NewActionExecutor(store),
		usecases.NewResponseComposer(),
		agent,
		usecases.NewKPIService(store),
		"",
	)

	router := gin.New()
	handler.SetupRoutes(router, NewMiddleware(1000, 1000))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	decoded := make(map[string]any)
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(2), body["records_loaded"])
	assert.Equal(t, "built-in sample data", body["data_source"])
	assert.Equal(t, false, body["agent_available"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestListCustomers(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodGet, "/api/customers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["order_numbers"], 2)
}

func TestGetCustomer(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodGet, "/api/customer/dm24210432", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	customer, ok := body["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Teresa Q.", customer["customer_name"])
}

func TestGetCustomerNotFound(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodGet, "/api/customer/DM00000000", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "DM00000000")
}

func TestClassifyEndpoint(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodPost, "/api/classify", map[string]any{"text": "I want a refund"})

	assert.Equal(t, http.StatusOK, w.Code)
	classification, ok := body["classification"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "refund", classification["issue_type"])
}

func TestClassifyRequiresText(t *testing.T) {
	router := testRouter(t, nil)
	w, _ := doJSON(t, router, http.MethodPost, "/api/classify", map[string]any{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatComposerPath(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodPost, "/api/chat", map[string]any{
		"message": "My order DM24210432 is too tight",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["response"], "Teresa Q.")
	assert.Len(t, body["suggestions"], 3)
	assert.Equal(t, false, body["requires_escalation"])

	customer, ok := body["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DM24210432", customer["order_number"])
}

func TestChatExplicitOrderNumber(t *testing.T) {
	router := testRouter(t, nil)
	_, body := doJSON(t, router, http.MethodPost, "/api/chat", map[string]any{
		"message":      "my boots are too tight",
		"order_number": "dm24210432",
	})
	customer, ok := body["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DM24210432", customer["order_number"])
}

func TestChatEscalationFlag(t *testing.T) {
	router := testRouter(t, nil)
	_, body := doJSON(t, router, http.MethodPost, "/api/chat", map[string]any{
		"message": "DM24165432 my sole broke",
	})
	assert.Equal(t, true, body["requires_escalation"])
}

func TestChatRequiresMessage(t *testing.T) {
	router := testRouter(t, nil)
	w, _ := doJSON(t, router, http.MethodPost, "/api/chat", map[string]any{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatAgentPath(t *testing.T) {
	stub := &stubModel{response: entities.ModelResponse{
		Content:    []entities.ContentBlock{{Type: entities.BlockTypeText, Text: "All sorted!"}},
		StopReason: entities.StopReasonEndTurn,
	}}
	store := repository.NewOrderStore(nil)
	agent := usecases.NewAgentService(stub, usecases.NewActionExecutor(store), 0)

	router := testRouter(t, agent)
	w, body := doJSON(t, router, http.MethodPost, "/api/chat", map[string]any{
		"message":              "hello",
		"conversation_history": []map[string]any{{"role": "user", "content": "earlier turn"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All sorted!", body["response"])
	history, ok := body["conversation_history"].([]any)
	require.True(t, ok)
	assert.Len(t, history, 2)
}

func TestActionEndpoint(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodPost, "/api/action/refund", map[string]any{
		"order_number": "DM24210432",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "REF-DM24210432", result["reference_id"])
}

func TestActionEndpointUnknownType(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodPost, "/api/action/teleport", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "teleport")
}

func TestActionEndpointFullName(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodPost, "/api/action/book_appointment", map[string]any{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
}

func TestKPIEndpoint(t *testing.T) {
	router := testRouter(t, nil)
	w, body := doJSON(t, router, http.MethodGet, "/api/kpis", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	kpis, ok := body["kpis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), kpis["total_records"])
	assert.Equal(t, float64(1), kpis["escalation_count"])
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repository.NewOrderStore(nil)
	handler := NewHandler(store, usecases.NewClassifier(usecases.DefaultRules), usecases.NewActionExecutor(store), usecases.NewResponseComposer(), nil, usecases.NewKPIService(store), "")

	router := gin.New()
	handler.SetupRoutes(router, NewMiddleware(1, 2))

	var lastCode int
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		lastCode = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestSecurityHeadersPresent(t *testing.T) {
	router := testRouter(t, nil)
	w, _ := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
