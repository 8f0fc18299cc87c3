package mcp

import (
	"bufio"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func newTestSSEServer(t *testing.T) *httptest.Server {
	t.Helper()
	serviceInstance := newTestService(t)
	handler := NewMcpHTTPSSEServer(zaptest.NewLogger(t), NewServer(serviceInstance), serviceInstance, "/mcp", nil)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// readEvents forwards the event name of every SSE frame on the stream.
func readEvents(body io.Reader) <-chan string {
	events := make(chan string, 16)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(body)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "event: ") {
				events <- strings.TrimPrefix(line, "event: ")
			}
		}
	}()
	return events
}

func waitForEvent(t *testing.T, events <-chan string, name string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("stream closed before %q event", name)
			}
			if event == name {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q event", name)
		}
	}
}

func TestToggleBroadcastsSidebarUpdated(t *testing.T) {
	srv := newTestSSEServer(t)

	resp, err := http.Get(srv.URL + "/mcp/sse")
	if err != nil {
		t.Fatalf("failed to connect SSE client: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	events := readEvents(resp.Body)
	waitForEvent(t, events, "connected")

	toggleResp, err := http.Post(srv.URL+"/mcp/sse/toggle", "application/json", strings.NewReader(`{"title":"Projects"}`))
	if err != nil {
		t.Fatalf("toggle request failed: %v", err)
	}
	defer toggleResp.Body.Close()
	if toggleResp.StatusCode != http.StatusOK {
		t.Fatalf("toggle returned status %d", toggleResp.StatusCode)
	}

	waitForEvent(t, events, "sidebarUpdated")
}

func TestNotifySidebarUpdatedReachesAllClients(t *testing.T) {
	srv := newTestSSEServer(t)

	first, err := http.Get(srv.URL + "/mcp/sse")
	if err != nil {
		t.Fatalf("failed to connect first SSE client: %v", err)
	}
	t.Cleanup(func() { first.Body.Close() })
	firstEvents := readEvents(first.Body)
	waitForEvent(t, firstEvents, "connected")

	second, err := http.Get(srv.URL + "/mcp/sse")
	if err != nil {
		t.Fatalf("failed to connect second SSE client: %v", err)
	}
	t.Cleanup(func() { second.Body.Close() })
	secondEvents := readEvents(second.Body)
	waitForEvent(t, secondEvents, "connected")

	toggleResp, err := http.Post(srv.URL+"/mcp/sse/toggle", "application/json", strings.NewReader(`{"title":"Projects"}`))
	if err != nil {
		t.Fatalf("toggle request failed: %v", err)
	}
	toggleResp.Body.Close()

	waitForEvent(t, firstEvents, "sidebarUpdated")
	waitForEvent(t, secondEvents, "sidebarUpdated")
}

func TestSidebarStreamCompletes(t *testing.T) {
	srv := newTestSSEServer(t)

	resp, err := http.Get(srv.URL + "/mcp/sse/sidebar")
	if err != nil {
		t.Fatalf("sidebar stream request failed: %v", err)
	}
	defer resp.Body.Close()

	// the handler writes the whole stream before returning, so the body
	// reads to EOF
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read sidebar stream: %v", err)
	}

	for _, event := range []string{"sidebar_start", "sidebar_result", "sidebar_complete"} {
		if !strings.Contains(string(body), "event: "+event) {
			t.Fatalf("stream missing %q event:\n%s", event, body)
		}
	}
	if !strings.Contains(string(body), `"title":"Website"`) {
		t.Fatalf("sidebar_result missing nested item:\n%s", body)
	}
}

func TestToggleSSEValidation(t *testing.T) {
	srv := newTestSSEServer(t)

	resp, err := http.Post(srv.URL+"/mcp/sse/toggle", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("toggle request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", resp.StatusCode)
	}
}

func TestNewMcpHTTPServer(t *testing.T) {
	if NewMcpHTTPServer(NewServer(newTestService(t)), "/mcp") == nil {
		t.Fatal("NewMcpHTTPServer() returned nil")
	}
}
