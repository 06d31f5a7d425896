package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
	"github.com/riskibarqy/football-ai/internal/platform/resilience"
)

// Config stores runtime configuration for the service and the CLI.
type Config struct {
	AppEnv                         string
	ServiceName                    string
	ServiceVersion                 string
	HTTPAddr                       string
	ReadTimeout                    time.Duration
	WriteTimeout                   time.Duration
	CORSAllowedOrigins             []string
	CacheEnabled                   bool
	CacheTTL                       time.Duration
	StatsBombBaseURL               string
	StatsBombTimeout               time.Duration
	StatsBombMaxRetries            int
	StatsBombCircuitEnabled        bool
	StatsBombCircuitFailureCount   int
	StatsBombCircuitOpenTimeout    time.Duration
	StatsBombCircuitHalfOpenMaxReq int
	AnthropicAPIKey                string
	AnthropicBaseURL               string
	AnthropicModel                 string
	AnthropicMaxTokens             int
	AgentMaxIterations             int
	CommentaryMaxTokens            int
	ChatSessionTTL                 time.Duration
	MetricsEnabled                 bool
	PprofEnabled                   bool
	PprofAddr                      string
	UptraceEnabled                 bool
	UptraceDSN                     string
	UptraceLogsEnabled             bool
	PyroscopeEnabled               bool
	PyroscopeServerAddress         string
	PyroscopeAppName               string
	PyroscopeAuthToken             string
	PyroscopeBasicAuthUser         string
	PyroscopeBasicAuthPassword     string
	PyroscopeUploadRate            time.Duration
	LogLevel                       logging.Level
}

// LoadDotEnv seeds the process environment from the given files, defaulting to
// .env. Missing files are ignored and variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	statsBombTimeout, err := time.ParseDuration(getEnv("STATSBOMB_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_TIMEOUT: %w", err)
	}
	if statsBombTimeout <= 0 {
		return Config{}, fmt.Errorf("STATSBOMB_TIMEOUT must be > 0")
	}
	statsBombMaxRetries, err := getEnvAsInt("STATSBOMB_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_MAX_RETRIES: %w", err)
	}
	if statsBombMaxRetries < 0 {
		return Config{}, fmt.Errorf("STATSBOMB_MAX_RETRIES must be >= 0")
	}
	circuitDefaults := resilience.DefaultCircuitBreakerConfig()
	statsBombCircuitEnabled, err := strconv.ParseBool(getEnv("STATSBOMB_CIRCUIT_ENABLED", strconv.FormatBool(circuitDefaults.Enabled)))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_CIRCUIT_ENABLED: %w", err)
	}
	statsBombCircuitFailureCount, err := getEnvAsInt("STATSBOMB_CIRCUIT_FAILURE_COUNT", circuitDefaults.FailureThreshold)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if statsBombCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("STATSBOMB_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	statsBombCircuitOpenTimeout, err := time.ParseDuration(getEnv("STATSBOMB_CIRCUIT_OPEN_TIMEOUT", circuitDefaults.OpenTimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if statsBombCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("STATSBOMB_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	statsBombCircuitHalfOpenMaxReq, err := getEnvAsInt("STATSBOMB_CIRCUIT_HALF_OPEN_MAX_REQ", circuitDefaults.HalfOpenMaxReq)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSBOMB_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if statsBombCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("STATSBOMB_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	anthropicMaxTokens, err := getEnvAsInt("ANTHROPIC_MAX_TOKENS", 600)
	if err != nil {
		return Config{}, fmt.Errorf("parse ANTHROPIC_MAX_TOKENS: %w", err)
	}
	if anthropicMaxTokens < 1 {
		return Config{}, fmt.Errorf("ANTHROPIC_MAX_TOKENS must be >= 1")
	}
	agentMaxIterations, err := getEnvAsInt("AGENT_MAX_ITERATIONS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse AGENT_MAX_ITERATIONS: %w", err)
	}
	if agentMaxIterations < 1 {
		return Config{}, fmt.Errorf("AGENT_MAX_ITERATIONS must be >= 1")
	}
	commentaryMaxTokens, err := getEnvAsInt("COMMENTARY_MAX_TOKENS", 1024)
	if err != nil {
		return Config{}, fmt.Errorf("parse COMMENTARY_MAX_TOKENS: %w", err)
	}
	if commentaryMaxTokens < 1 {
		return Config{}, fmt.Errorf("COMMENTARY_MAX_TOKENS must be >= 1")
	}

	chatSessionTTL, err := time.ParseDuration(getEnv("CHAT_SESSION_TTL", "2h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CHAT_SESSION_TTL: %w", err)
	}
	if chatSessionTTL <= 0 {
		return Config{}, fmt.Errorf("CHAT_SESSION_TTL must be > 0")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:                         appEnv,
		ServiceName:                    getEnv("APP_SERVICE_NAME", "football-ai-api"),
		ServiceVersion:                 getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                       getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:             splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		StatsBombBaseURL:               strings.TrimSpace(getEnv("STATSBOMB_BASE_URL", "https://raw.githubusercontent.com/statsbomb/open-data/master/data")),
		StatsBombTimeout:               statsBombTimeout,
		StatsBombMaxRetries:            statsBombMaxRetries,
		StatsBombCircuitEnabled:        statsBombCircuitEnabled,
		StatsBombCircuitFailureCount:   statsBombCircuitFailureCount,
		StatsBombCircuitOpenTimeout:    statsBombCircuitOpenTimeout,
		StatsBombCircuitHalfOpenMaxReq: statsBombCircuitHalfOpenMaxReq,
		AnthropicAPIKey:                strings.TrimSpace(getEnv("ANTHROPIC_API_KEY", "")),
		AnthropicBaseURL:               strings.TrimSpace(getEnv("ANTHROPIC_BASE_URL", "")),
		AnthropicModel:                 strings.TrimSpace(getEnv("ANTHROPIC_MODEL", "")),
		AnthropicMaxTokens:             anthropicMaxTokens,
		AgentMaxIterations:             agentMaxIterations,
		CommentaryMaxTokens:            commentaryMaxTokens,
		ChatSessionTTL:                 chatSessionTTL,
		MetricsEnabled:                 metricsEnabled,
		PprofEnabled:                   pprofEnabled,
		PprofAddr:                      pprofAddr,
		UptraceEnabled:                 uptraceEnabled,
		UptraceDSN:                     uptraceDSN,
		UptraceLogsEnabled:             uptraceLogsEnabled,
		PyroscopeEnabled:               pyroscopeEnabled,
		PyroscopeServerAddress:         pyroscopeServerAddress,
		PyroscopeAuthToken:             strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:         strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:            pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	// Chat turns wait on several model round trips.
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "90s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.LogLevel = logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

// LLMEnabled reports whether an API key for the language model is configured.
func (c Config) LLMEnabled() bool {
	return c.AnthropicAPIKey != ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
