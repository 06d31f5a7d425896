package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/config"
	"github.com/riskibarqy/football-ai/internal/domain/match"
	matchmock "github.com/riskibarqy/football-ai/internal/mocks/domain/match"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
	"github.com/riskibarqy/football-ai/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cannedModel struct{}

func (cannedModel) Generate(context.Context, agent.Request, func(string)) (agent.Response, error) {
	return agent.Response{Text: "Argentina won."}, nil
}

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:            ":0",
		CORSAllowedOrigins:  []string{"*"},
		CacheEnabled:        true,
		CacheTTL:            time.Hour,
		ChatSessionTTL:      time.Hour,
		MetricsEnabled:      true,
		AgentMaxIterations:  10,
		AnthropicMaxTokens:  600,
		CommentaryMaxTokens: 1024,
	}
}

func TestNewContainer_WithoutModel(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	container, err := NewContainer(testConfig(), logging.NewNop(), WithRepository(repo))
	require.NoError(t, err)

	assert.Nil(t, container.Model)
	assert.Len(t, container.Tools.Names(), 7)

	_, err = container.NewAgent(agent.MatchContext{MatchID: 1})
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)

	_, err = container.Commentary.Comment(context.Background(), usecase.MatchRef{CompetitionID: 43, SeasonID: 106, MatchID: 1}, usecase.StyleFormal)
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
}

func TestNewContainer_WithModelBuildsAgents(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	container, err := NewContainer(testConfig(), logging.NewNop(), WithRepository(repo), WithModel(cannedModel{}))
	require.NoError(t, err)

	conv, err := container.NewAgent(agent.MatchContext{MatchID: 3869685, MatchName: "Argentina vs France"})
	require.NoError(t, err)
	assert.Equal(t, "Argentina won.", conv.Ask(context.Background(), "Who won?", nil))
}

func TestNewHTTPServer_ServesHealthAndMetrics(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	repo.On("ListCompetitions", mock.Anything).Return([]match.Competition{{CompetitionID: 43, SeasonID: 106}}, nil).Once()

	srv, err := NewHTTPServer(testConfig(), logging.NewNop(), WithRepository(repo))
	require.NoError(t, err)

	for _, path := range []string{"/healthz", "/competitions", "/competitions", "/metrics"} {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""
	_, err := NewHTTPServer(cfg, logging.NewNop(), WithRepository(matchmock.NewRepository(t)))
	require.Error(t, err)
}
