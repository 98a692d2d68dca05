package gtp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/longevity-genie/pharmacology-mcp/internal/common"
)

func testClient(baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, common.NewSilentLogger())
}

func TestClient_Get_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/targets" {
			t.Errorf("Expected /targets, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("name") != "CCR5" {
			t.Errorf("Expected name=CCR5, got %q", r.URL.Query().Get("name"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Expected Accept application/json, got %s", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"targetId":62,"name":"CCR5"}]`))
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	body, err := client.Get(context.Background(), "/targets", url.Values{"name": {"CCR5"}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "CCR5") {
		t.Errorf("Expected body to contain CCR5, got %s", body)
	}
}

func TestClient_Get_EmptyBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	body, err := client.Get(context.Background(), "/targets/999999999", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("Expected empty body, got %q", body)
	}
}

func TestClient_Get_ServerError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("database offline"))
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.Get(context.Background(), "/targets", nil)
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}

	var httpErr *UpstreamHTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected UpstreamHTTPError, got %T", err)
	}
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", httpErr.StatusCode)
	}
	if !strings.Contains(string(httpErr.Body), "database offline") {
		t.Errorf("Expected upstream body preserved, got %q", httpErr.Body)
	}
}

func TestClient_Get_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.Get(context.Background(), "/targets/999999999", nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if !IsNotFound(err) {
		t.Errorf("Expected IsNotFound to report true, got %v", err)
	}
}

func TestClient_Get_Unavailable(t *testing.T) {
	client := testClient("http://localhost:1")
	_, err := client.Get(context.Background(), "/targets", nil)
	if err == nil {
		t.Fatal("Expected error when upstream is unreachable")
	}

	var unavailable *UpstreamUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Expected UpstreamUnavailableError, got %T", err)
	}
}

func TestClient_Get_ContextCancelled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer mockServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := testClient(mockServer.URL)
	_, err := client.Get(ctx, "/targets", nil)
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}

	var unavailable *UpstreamUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Expected UpstreamUnavailableError, got %T", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected wrapped context.Canceled, got %v", err)
	}
}

func TestIsNotFound_OtherErrors(t *testing.T) {
	if IsNotFound(&UpstreamHTTPError{StatusCode: 500}) {
		t.Error("500 should not be not-found")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error should not be not-found")
	}
}
