package config

import (
	"errors"
	"time"

	"github.com/adrianliechti/docread/pkg/limiter"
	"github.com/adrianliechti/docread/pkg/otel"
	"github.com/adrianliechti/docread/pkg/recognizer"
	"github.com/adrianliechti/docread/pkg/recognizer/azure"

	"golang.org/x/time/rate"
)

type recognizerConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Mode string `yaml:"mode"`

	MaxRetries   int `yaml:"maxRetries"`
	RetrySeconds int `yaml:"retrySeconds"`
	GraceSeconds int `yaml:"graceSeconds"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerRecognizer(f *configFile) error {
	config := f.Recognizer

	if config.URL == "" {
		return errors.New("recognizer url missing")
	}

	if config.Token == "" {
		return errors.New("recognizer token missing")
	}

	if config.MaxRetries < 0 {
		return errors.New("recognizer maxRetries must be positive")
	}

	if config.RetrySeconds < 0 {
		return errors.New("recognizer retrySeconds must be positive")
	}

	if config.GraceSeconds < 0 {
		return errors.New("recognizer graceSeconds must be positive")
	}

	mode, err := recognizer.ParseMode(config.Mode)

	if err != nil {
		return err
	}

	options := []azure.Option{
		azure.WithToken(config.Token),
		azure.WithMode(mode),
	}

	if config.MaxRetries > 0 {
		options = append(options, azure.WithMaxAttempts(config.MaxRetries))
	}

	if config.RetrySeconds > 0 {
		options = append(options, azure.WithRetryInterval(time.Duration(config.RetrySeconds)*time.Second))
	}

	if config.GraceSeconds > 0 {
		options = append(options, azure.WithGraceInterval(time.Duration(config.GraceSeconds)*time.Second))
	}

	client, err := azure.New(config.URL, options...)

	if err != nil {
		return err
	}

	var provider recognizer.Provider = client

	if _, ok := provider.(limiter.Recognizer); !ok {
		provider = limiter.NewRecognizer(createLimiter(config.Limit), provider)
	}

	if _, ok := provider.(otel.Recognizer); !ok {
		provider = otel.NewRecognizer("azure", "read-2.0", provider)
	}

	cfg.Recognizer = provider

	return nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
