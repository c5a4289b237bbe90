package main

import (
	"context"
	"errors"
	netHttp "net/http"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/portfoliobuilder/internal/adapter/completion"
	"github.com/m-zajac/portfoliobuilder/internal/adapter/github"
	"github.com/m-zajac/portfoliobuilder/internal/api/http"
	"github.com/m-zajac/portfoliobuilder/internal/app"
	"github.com/m-zajac/portfoliobuilder/internal/i18n"
	"github.com/m-zajac/portfoliobuilder/internal/prompt"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.Level = level

	tr, err := i18n.NewTranslations(conf.Language)
	if err != nil {
		l.Fatalf("couldn't load translations: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: conf.GithubTimeout,
	}
	githubClient, err := github.NewClient(
		httpClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)
	if err != nil {
		l.Fatalf("couldn't create github client: %v", err)
	}

	completer, err := completion.New(
		context.Background(),
		completion.Config{
			Provider:         conf.CompletionProvider,
			AnthropicAPIKey:  conf.AnthropicAPIKey,
			AnthropicAddress: conf.AnthropicAPIAddress,
			AnthropicModel:   conf.AnthropicModel,
			GeminiAPIKey:     conf.GeminiAPIKey,
			GeminiModel:      conf.GeminiModel,
			MaxTokens:        conf.CompletionMaxTokens,
		},
		l.WithField("component", "completion"),
	)
	if errors.Is(err, completion.ErrMissingAPIKey) {
		l.Fatalf("%s provider selected, but its api key is not set: %v", conf.CompletionProvider, err)
	}
	if err != nil {
		l.Fatalf("couldn't create completion client: %v", err)
	}
	defer completer.Close()

	prompter, err := prompt.NewBuilder()
	if err != nil {
		l.Fatalf("couldn't load prompts: %v", err)
	}

	service := app.NewService(
		githubClient,
		completer,
		prompter,
		conf.ServiceResponseTimeout,
		tr.Message(i18n.DefaultUsername, nil),
		l.WithField("component", "service"),
	)

	mux := http.NewMux(
		service,
		http.MuxConfig{
			Timeout:   conf.ServiceResponseTimeout,
			RateLimit: conf.RequestRateLimit,
			RateBurst: conf.RequestRateBurst,
		},
		tr,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	l.Info(tr.Message(i18n.ServerListening, map[string]interface{}{"Address": conf.HTTPServerAddress}))
	server.Run()
}
