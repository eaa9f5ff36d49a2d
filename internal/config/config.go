package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates the whole service configuration.
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Supabase SupabaseConfig
	Contact  ContactConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	contactCfg, err := loadContactConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		AI:       ai,
		Supabase: loadSupabaseConfig(),
		Contact:  contactCfg,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// Generation parameter defaults match the production chat widget.
const (
	defaultTemperature = 0.7
	defaultTopP        = 0.8
	defaultMaxTokens   = 1024

	// DefaultHistoryLimit caps how many prior turns are replayed to the
	// provider on each request.
	DefaultHistoryLimit = 10
)

// AIConfig describes the generative-language provider.
type AIConfig struct {
	APIKey       string
	AccessKey    string
	SecretKey    string
	Model        string
	BaseURL      string
	Region       string
	Temperature  *float64
	TopP         *float64
	MaxTokens    *int
	HistoryLimit int
}

// Enabled reports whether the required credential and model are present.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds a provider-backed chat model from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("provider credentials missing: set ARK_API_KEY (or ARK_ACCESS_KEY + ARK_SECRET_KEY) and ARK_MODEL")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}
	if temperature == nil {
		val := float64(defaultTemperature)
		temperature = &val
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}
	if topP == nil {
		val := float64(defaultTopP)
		topP = &val
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}
	if maxTokens == nil {
		val := defaultMaxTokens
		maxTokens = &val
	}

	historyLimit := DefaultHistoryLimit
	if limitOverride, err := parseOptionalIntEnv("CHAT_HISTORY_LIMIT"); err != nil {
		return AIConfig{}, err
	} else if limitOverride != nil && *limitOverride > 0 {
		historyLimit = *limitOverride
	}

	return AIConfig{
		APIKey:       strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:    strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:    strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:        strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:      getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:       getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:  temperature,
		TopP:         topP,
		MaxTokens:    maxTokens,
		HistoryLimit: historyLimit,
	}, nil
}

// SupabaseConfig describes the project datastore. Each credential has
// exactly one environment key; there are no fallback names.
type SupabaseConfig struct {
	URL    string
	APIKey string
}

// Enabled reports whether both the URL and the service key are present.
func (c SupabaseConfig) Enabled() bool {
	return c.URL != "" && c.APIKey != ""
}

func loadSupabaseConfig() SupabaseConfig {
	return SupabaseConfig{
		URL:    strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		APIKey: strings.TrimSpace(os.Getenv("SUPABASE_SERVICE_ROLE_KEY")),
	}
}

// Contact sink selection. Exactly one strategy is active per deployment.
const (
	ContactSinkSupabase = "supabase"
	ContactSinkRelay    = "relay"
)

// ContactConfig selects where contact submissions are delivered.
type ContactConfig struct {
	Sink          string
	RelayEndpoint string
}

func loadContactConfig() (ContactConfig, error) {
	sink := strings.ToLower(getEnvOrDefault("CONTACT_SINK", ContactSinkSupabase))
	switch sink {
	case ContactSinkSupabase, ContactSinkRelay:
	default:
		return ContactConfig{}, fmt.Errorf("invalid CONTACT_SINK value %q: expected %q or %q", sink, ContactSinkSupabase, ContactSinkRelay)
	}

	endpoint := strings.TrimSpace(os.Getenv("FORMSPREE_ENDPOINT"))
	if sink == ContactSinkRelay && endpoint == "" {
		return ContactConfig{}, fmt.Errorf("CONTACT_SINK=relay requires FORMSPREE_ENDPOINT")
	}

	return ContactConfig{Sink: sink, RelayEndpoint: endpoint}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
