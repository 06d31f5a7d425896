package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/riskibarqy/football-ai/external/anthropic"
	"github.com/riskibarqy/football-ai/external/statsbomb"
	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/config"
	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/riskibarqy/football-ai/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-ai/internal/platform/cache"
	idgen "github.com/riskibarqy/football-ai/internal/platform/id"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
	"github.com/riskibarqy/football-ai/internal/platform/metrics"
	"github.com/riskibarqy/football-ai/internal/platform/resilience"
	"github.com/riskibarqy/football-ai/internal/tools"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

// Container holds the wired services shared by the HTTP server and the CLI.
type Container struct {
	Config     config.Config
	Logger     *logging.Logger
	Metrics    *metrics.Service
	Gatherer   prometheus.Gatherer
	Repository match.Repository
	Model      agent.Model
	Matches    *usecase.MatchService
	Stats      *usecase.StatsService
	Commentary *usecase.CommentaryService
	Chat       *usecase.ChatService
	Tools      *agent.Registry
}

type Option func(*containerOptions)

type containerOptions struct {
	repository match.Repository
	model      agent.Model
}

// WithRepository replaces the StatsBomb client.
func WithRepository(repo match.Repository) Option {
	return func(o *containerOptions) { o.repository = repo }
}

// WithModel replaces the Anthropic model.
func WithModel(model agent.Model) Option {
	return func(o *containerOptions) { o.model = model }
}

func NewContainer(cfg config.Config, logger *logging.Logger, opts ...Option) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}
	var options containerOptions
	for _, opt := range opts {
		opt(&options)
	}

	registry := prometheus.NewRegistry()
	var metricsSvc *metrics.Service
	if cfg.MetricsEnabled {
		metricsSvc = metrics.NewService(registry)
	}

	repo := options.repository
	if repo == nil {
		repo = statsbomb.NewClient(statsbomb.ClientConfig{
			BaseURL:    cfg.StatsBombBaseURL,
			Timeout:    cfg.StatsBombTimeout,
			MaxRetries: cfg.StatsBombMaxRetries,
			Logger:     logger,
			Observer:   metricsSvc,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.StatsBombCircuitEnabled,
				FailureThreshold: cfg.StatsBombCircuitFailureCount,
				OpenTimeout:      cfg.StatsBombCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.StatsBombCircuitHalfOpenMaxReq,
			},
		})
	}

	model := options.model
	if model == nil && cfg.LLMEnabled() {
		m, err := anthropic.New(anthropic.Config{
			APIKey:    cfg.AnthropicAPIKey,
			BaseURL:   cfg.AnthropicBaseURL,
			Model:     cfg.AnthropicModel,
			MaxTokens: cfg.AnthropicMaxTokens,
			Logger:    logger,
		})
		if err != nil {
			return nil, fmt.Errorf("build anthropic model: %w", err)
		}
		logger.Info("language model configured", "model", m.Describe())
		model = m
	}
	if model == nil {
		logger.Warn("language model disabled", "reason", "ANTHROPIC_API_KEY empty")
	}

	newStore := func(namespace string) *cache.Store {
		if !cfg.CacheEnabled {
			return nil
		}
		return cache.NewStore(cfg.CacheTTL, cache.WithNamespace(namespace), cache.WithObserver(metricsSvc))
	}

	matches := usecase.NewMatchService(repo, newStore("provider"), logger)
	stats := usecase.NewStatsService(matches, newStore("stats"), 0, logger)

	commentary := usecase.NewCommentaryService(matches, model, cfg.CommentaryMaxTokens, newStore("commentary"), logger)

	toolRegistry, err := tools.NewRegistry(tools.Services{
		Matches:    matches,
		Stats:      stats,
		Commentary: commentary,
	}, metricsSvc)
	if err != nil {
		return nil, fmt.Errorf("build tool registry: %w", err)
	}

	var factory usecase.AgentFactory
	if model != nil {
		factory = func(mc agent.MatchContext) (*agent.Agent, error) {
			return agent.New(agent.Config{
				Model:         model,
				Tools:         toolRegistry,
				Match:         mc,
				MaxIterations: cfg.AgentMaxIterations,
				MaxTokens:     cfg.AnthropicMaxTokens,
				Logger:        logger,
				Observer:      metricsSvc,
			})
		}
	}
	// Sessions always live in memory, independently of CACHE_ENABLED.
	sessions := cache.NewStore(cfg.ChatSessionTTL, cache.WithNamespace("chat_sessions"))
	chat := usecase.NewChatService(matches, factory, sessions, idgen.NewUUIDGenerator(), logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Metrics:    metricsSvc,
		Gatherer:   registry,
		Repository: repo,
		Model:      model,
		Matches:    matches,
		Stats:      stats,
		Commentary: commentary,
		Chat:       chat,
		Tools:      toolRegistry,
	}, nil
}

// NewAgent starts a standalone conversation, as used by the CLI.
func (c *Container) NewAgent(mc agent.MatchContext) (*agent.Agent, error) {
	if c.Model == nil {
		return nil, fmt.Errorf("%w: language model is not configured", usecase.ErrDependencyUnavailable)
	}
	return agent.New(agent.Config{
		Model:         c.Model,
		Tools:         c.Tools,
		Match:         mc,
		MaxIterations: c.Config.AgentMaxIterations,
		MaxTokens:     c.Config.AnthropicMaxTokens,
		Logger:        c.Logger,
		Observer:      c.Metrics,
	})
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger, opts ...Option) (*http.Server, error) {
	container, err := NewContainer(cfg, logger, opts...)
	if err != nil {
		return nil, err
	}

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = metrics.NewHandler(container.Gatherer)
	}

	handler := httpapi.NewHandler(container.Matches, container.Stats, container.Commentary, container.Chat, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, metricsHandler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
