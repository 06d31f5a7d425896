package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CountsByLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.CacheLookup("stats", true)
	svc.CacheLookup("stats", false)
	svc.CacheLookup("stats", false)
	svc.ToolCall("get_match_stats", nil)
	svc.ToolCall("get_match_stats", errors.New("invalid match_id"))

	assert.Equal(t, 1.0, testutil.ToFloat64(svc.cacheLookups.WithLabelValues("stats", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(svc.cacheLookups.WithLabelValues("stats", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.toolCalls.WithLabelValues("get_match_stats", "error")))
}

func TestService_NilIsNoop(t *testing.T) {
	var svc *Service
	svc.CacheLookup("stats", true)
	svc.AgentTurn(3, nil)
}

func TestNewHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.AgentTurn(2, nil)

	rec := httptest.NewRecorder()
	NewHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "football_ai_agent_turns_total"))
}
