package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/longevity-genie/pharmacology-mcp/internal/common"
	"github.com/longevity-genie/pharmacology-mcp/internal/gtp"
)

func testService(upstreamURL string) *Service {
	client := gtp.NewClient(upstreamURL, 5*time.Second, common.NewSilentLogger())
	return NewService(client, common.NewSilentLogger())
}

func callRequest(args map[string]any) mcpgo.CallToolRequest {
	request := mcpgo.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("Expected content in result")
	}
	return result.Content[0].(mcpgo.TextContent).Text
}

func TestHandleListTargets_NoFiltersOmitsAllParams(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/targets" {
			t.Errorf("Expected /targets, got %s", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("Expected no query parameters, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[{"targetId":1,"name":"5-HT1A receptor"},{"targetId":2,"name":"5-HT1B receptor"}]`))
	}))
	defer mockServer.Close()

	handler := handleListTargets(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "5-HT1A receptor") {
		t.Error("Result should contain the first target")
	}
}

func TestHandleListTargets_UnsupportedParam(t *testing.T) {
	handler := handleListTargets(testService("http://localhost:1"))
	result, err := handler(context.Background(), callRequest(map[string]any{"species": "Human"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for unsupported parameter")
	}
	text := resultText(t, result)
	if !strings.Contains(text, "does not accept") {
		t.Errorf("Expected unsupported-parameter message, got %q", text)
	}
}

func TestHandleListLigands_FilterSerialization(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("approved"); got != "true" {
			t.Errorf("Expected approved=true, got %q", got)
		}
		if got := q.Get("molWeightGt"); got != "100" {
			t.Errorf("Expected molWeightGt=100, got %q", got)
		}
		if got := q.Get("molWeightLt"); got != "300" {
			t.Errorf("Expected molWeightLt=300, got %q", got)
		}
		if _, ok := q["name"]; ok {
			t.Error("Unset name filter should be omitted")
		}
		w.Write([]byte(`[]`))
	}))
	defer mockServer.Close()

	handler := handleListLigands(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{
		"approved":      true,
		"mol_weight_gt": float64(100),
		"mol_weight_lt": float64(300),
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}
}

func TestHandleGetTarget_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/targets/1" {
			t.Errorf("Expected /targets/1, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"targetId":1,"name":"5-HT1A receptor","type":"GPCR"}`))
	}))
	defer mockServer.Close()

	handler := handleGetTarget(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{"target_id": float64(1)}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "5-HT1A receptor") {
		t.Error("Result should contain the target name")
	}
}

func TestHandleGetTarget_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer mockServer.Close()

	handler := handleGetTarget(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{"target_id": float64(999999999)}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("Not-found should be a plain result, not an error result")
	}
	text := resultText(t, result)
	if !strings.Contains(text, "No target found") {
		t.Errorf("Expected not-found message, got %q", text)
	}
}

func TestHandleGetTarget_EmptyBodyNotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	handler := handleGetTarget(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{"target_id": float64(5)}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("Empty body should normalize to not-found, not an error result")
	}
	if !strings.Contains(resultText(t, result), "No target found") {
		t.Error("Expected not-found message for empty body")
	}
}

func TestHandleGetTarget_InvalidID(t *testing.T) {
	handler := handleGetTarget(testService("http://localhost:1"))

	cases := []map[string]any{
		{},
		{"target_id": float64(-5)},
		{"target_id": float64(0)},
		{"target_id": float64(1.5)},
		{"target_id": "abc"},
	}
	for _, args := range cases {
		result, err := handler(context.Background(), callRequest(args))
		if err != nil {
			t.Fatalf("Unexpected error for %v: %v", args, err)
		}
		if !result.IsError {
			t.Errorf("Expected error result for %v", args)
		}
	}
}

func TestHandleGetTargetInteractions_Filters(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/targets/62/interactions" {
			t.Errorf("Expected /targets/62/interactions, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("species"); got != "Human" {
			t.Errorf("Expected species=Human, got %q", got)
		}
		if got := q.Get("primaryTarget"); got != "false" {
			t.Errorf("Expected primaryTarget=false, got %q", got)
		}
		w.Write([]byte(`[{"interactionId":100,"targetId":62,"ligandId":806}]`))
	}))
	defer mockServer.Close()

	handler := handleGetTargetInteractions(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{
		"target_id":      float64(62),
		"species":        "Human",
		"primary_target": false,
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}
	if !strings.Contains(resultText(t, result), `"ligandId": 806`) {
		t.Error("Result should contain the interaction's ligandId")
	}
}

func TestHandleGetFamily_PathSegment(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/targets/families/14" {
			t.Errorf("Expected /targets/families/14, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"familyId":14,"name":"Chemokine receptors"}`))
	}))
	defer mockServer.Close()

	handler := handleGetFamily(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{"family_id": float64(14)}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}
}

func TestHandleListTargets_UpstreamError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer mockServer.Close()

	handler := handleListTargets(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for upstream 500")
	}
	text := resultText(t, result)
	if !strings.Contains(text, "500") || !strings.Contains(text, "upstream exploded") {
		t.Errorf("Expected status and upstream body in message, got %q", text)
	}
}

func TestHandleExactMatchLigands(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ligands/exact" {
			t.Errorf("Expected /ligands/exact, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("smiles"); got != "CC(=O)Oc1ccccc1C(=O)O" {
			t.Errorf("Expected aspirin SMILES, got %q", got)
		}
		w.Write([]byte(`[{"ligandId":4139,"name":"aspirin"}]`))
	}))
	defer mockServer.Close()

	handler := handleExactMatchLigands(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{"smiles": "CC(=O)Oc1ccccc1C(=O)O"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}
	if !strings.Contains(resultText(t, result), "aspirin") {
		t.Error("Result should contain the matched ligand")
	}
}

func TestHandleSearch(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ligands" {
			t.Errorf("Expected /ligands, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "aspirin" {
			t.Errorf("Expected name=aspirin, got %q", got)
		}
		w.Write([]byte(`[{"ligandId":4139,"name":"aspirin"}]`))
	}))
	defer mockServer.Close()

	handler := handleSearch(testService(mockServer.URL))
	result, err := handler(context.Background(), callRequest(map[string]any{
		"query":  "aspirin",
		"entity": "ligands",
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}
}

func TestHandleSearch_InvalidEntity(t *testing.T) {
	handler := handleSearch(testService("http://localhost:1"))
	result, err := handler(context.Background(), callRequest(map[string]any{
		"query":  "aspirin",
		"entity": "interactions",
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for unsupported entity")
	}
	if !strings.Contains(resultText(t, result), "entity") {
		t.Error("Expected message to name the entity parameter")
	}
}

func TestHandleGetVersion(t *testing.T) {
	handler := handleGetVersion(testService("http://localhost:1"))
	result, err := handler(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Pharmacology MCP Server") {
		t.Error("Result should contain the server banner")
	}
	if !strings.Contains(text, "localhost:1") {
		t.Error("Result should contain the upstream base URL")
	}
}
