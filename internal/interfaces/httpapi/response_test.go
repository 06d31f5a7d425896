package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

func TestWriteRecord_BareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeRecord(context.Background(), rec, http.StatusOK, map[string]any{"match_id": 3869685, "summary": "Messi"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if _, ok := body["apiVersion"]; ok {
		t.Fatalf("did not expect envelope in success response")
	}
	if got, _ := body["summary"].(string); got != "Messi" {
		t.Fatalf("expected summary=Messi, got %v", body["summary"])
	}
}

func TestWriteAttachment_SetsDisposition(t *testing.T) {
	rec := httptest.NewRecorder()
	writeAttachment(context.Background(), rec, "football-ai-chat-history.json", []byte("[]"))

	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="football-ai-chat-history.json"` {
		t.Fatalf("unexpected Content-Disposition: %q", got)
	}
	if rec.Body.String() != "[]" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestMapError_Statuses(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("%w: x", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: x", usecase.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("%w: x", usecase.ErrDependencyUnavailable), want: http.StatusServiceUnavailable},
		{err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapError(context.Background(), tt.err).HTTPStatus; got != tt.want {
			t.Fatalf("mapError(%v)=%d want=%d", tt.err, got, tt.want)
		}
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}
