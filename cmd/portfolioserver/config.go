package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:3000"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// ServiceResponseTimeout - timeout for service execution, covers github and completion api calls
	ServiceResponseTimeout time.Duration `default:"3m"`

	// RequestRateLimit - max frequency of api requests per second, 0 disables throttling
	RequestRateLimit float64 `default:"2"`

	// RequestRateBurst - max burst of api requests
	RequestRateBurst int `default:"10"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GithubTimeout - timeout for a single github api call
	GithubTimeout time.Duration `default:"30s"`

	// CompletionProvider - completion api provider, "anthropic" or "gemini"
	CompletionProvider string `default:"anthropic"`

	// CompletionMaxTokens - max tokens generated in a single completion
	CompletionMaxTokens int `default:"4000"`

	// AnthropicAPIKey - anthropic api key, required when anthropic provider is selected
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY" default:""`

	// AnthropicAPIAddress - anthropic api address, sdk default is used when empty
	AnthropicAPIAddress string `default:""`

	// AnthropicModel - anthropic model name
	AnthropicModel string `default:"claude-3-haiku-20240307"`

	// GeminiAPIKey - gemini api key, required when gemini provider is selected
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" default:""`

	// GeminiModel - gemini model name
	GeminiModel string `default:"gemini-1.5-flash"`

	// Language - language of user facing messages, "en" or "ko"
	Language string `default:"en"`

	// LogLevel - logrus log level
	LogLevel string `default:"info"`
}
