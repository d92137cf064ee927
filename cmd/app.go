package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-tailor/internal/ai/gemini"
	"github.com/spigell/resume-tailor/internal/career"
	"github.com/spigell/resume-tailor/internal/documents"
	"github.com/spigell/resume-tailor/internal/extraction"
	"github.com/spigell/resume-tailor/internal/generation"
	"github.com/spigell/resume-tailor/internal/logger"
	"github.com/spigell/resume-tailor/internal/secrets"
	"github.com/spigell/resume-tailor/internal/session"
)

// application bundles everything a command needs.
type application struct {
	config    *Config
	logger    *zap.Logger
	loader    *documents.Loader
	extractor *extraction.Extractor
	writer    *generation.Writer
	settings  career.GenerationSettings
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func newApplication(ctx context.Context, l *zap.Logger) (*application, error) {
	config, err := getConfig()
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	settings, err := decodeSettings(config.Settings)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	generator, err := newGenerator(ctx, config.AI, l)
	if err != nil {
		return nil, err
	}

	maxLog := config.AI.Gemini.MaxLogLength

	return &application{
		config:    config,
		logger:    l,
		loader:    documents.New(l),
		extractor: extraction.New(generator, l, maxLog),
		writer:    generation.New(generator, l, maxLog),
		settings:  settings,
	}, nil
}

func (a *application) newSession() (*session.Session, error) {
	return session.New(a.extractor, a.writer, a.settings, a.logger)
}

func newGenerator(ctx context.Context, cfg *AIConfig, l *zap.Logger) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   []string{"GEMINI_API_KEY", "API_KEY"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w (or set ai.gemini.api-key-file / GEMINI_API_KEY_FILE)", err)
	}

	return gemini.NewGenerator(ctx, gemini.Config{
		APIKey: apiKey,
		Model:  cfg.Gemini.Model,
		Retry: gemini.RetryPolicy{
			MaxRetries: cfg.Gemini.MaxRetries,
			BaseDelay:  cfg.Gemini.RetryDelay,
		},
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
		MaxLogLength:      cfg.Gemini.MaxLogLength,
	}, l)
}

// redacted returns a copy of the config that is safe to log.
func redacted(config *Config) *Config {
	c := *config
	if config.AI != nil && config.AI.Gemini != nil && config.AI.Gemini.APIKey != "" {
		g := *config.AI.Gemini
		g.APIKey = "***"
		c.AI = &AIConfig{Provider: config.AI.Provider, Gemini: &g}
	}
	return &c
}

func outputDir() string {
	if dir := strings.TrimSpace(viper.GetString("output")); dir != "" {
		return dir
	}
	return "."
}

func printRecord(record career.Record, raw bool) error {
	if !raw {
		for _, line := range career.Preview(record) {
			fmt.Println(line)
		}
		fmt.Println()
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
