package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"personal-assistant/config"
	"personal-assistant/pkg/gemini"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/openai"
)

const (
	defaultDeepSeekModel = "deepseek-chat"
	defaultQwenModel     = "qwen-plus"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped with a warning.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: skipping %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	httpClient := &http.Client{Timeout: config.ParseDuration(cfg.Timeout, openai.DefaultTimeout)}

	switch strings.ToLower(cfg.Name) {
	case "openai":
		return newOpenAICompatible("openai", cfg, openai.DefaultBaseURL, openai.DefaultModel, httpClient)

	case "deepseek":
		return newOpenAICompatible("deepseek", cfg, openai.DeepSeekBaseURL, defaultDeepSeekModel, httpClient)

	case "qwen", "alibaba":
		return newOpenAICompatible("qwen", cfg, openai.QwenBaseURL, defaultQwenModel, httpClient)

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func newOpenAICompatible(name string, cfg config.ProviderConfig, baseURL, model string, httpClient *http.Client) (Provider, error) {
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		model = cfg.Model
	}
	client, err := openai.New(openai.Config{
		APIKey:     cfg.APIKey,
		Model:      model,
		BaseURL:    baseURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}
	return NewOpenAIAdapter(name, client), nil
}

// NewManagerFromConfig builds providers and wraps them in a Manager.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      config.ParseDuration(cfg.RetryDelay, 0),
		MaxTotalTimeout: config.ParseDuration(cfg.MaxTotalTimeout, 0),
	}, l), nil
}
