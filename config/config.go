package config

import (
	"bytes"
	"os"

	"github.com/adrianliechti/docread/pkg/ledger"
	"github.com/adrianliechti/docread/pkg/pipeline"
	"github.com/adrianliechti/docread/pkg/recognizer"
	"github.com/adrianliechti/docread/pkg/storage"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	// URL is the externally reachable base address, used to build document
	// URLs the remote engine can fetch.
	URL string

	Recognizer recognizer.Provider
	Storage    storage.Provider

	Ledger *ledger.Ledger

	Pipeline *pipeline.Pipeline

	CreateZip bool
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
		URL:     "http://localhost:8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if file.URL != "" {
		c.URL = file.URL
	}

	if file.Output != nil {
		c.CreateZip = file.Output.Zip
	}

	if err := c.registerRecognizer(file); err != nil {
		return nil, err
	}

	if err := c.registerStorage(file); err != nil {
		return nil, err
	}

	if err := c.registerLedger(file); err != nil {
		return nil, err
	}

	if err := c.registerPipeline(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`
	URL     string `yaml:"url"`

	Recognizer recognizerConfig `yaml:"recognizer"`

	Storage *storageConfig `yaml:"storage"`
	Ledger  *ledgerConfig  `yaml:"ledger"`
	Output  *outputConfig  `yaml:"output"`
}

type outputConfig struct {
	Zip bool `yaml:"zip"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (cfg *Config) registerPipeline(f *configFile) error {
	var options []pipeline.Option

	if cfg.Ledger != nil {
		options = append(options, pipeline.WithLedger(cfg.Ledger))
	}

	if cfg.CreateZip {
		options = append(options, pipeline.WithZip(true))
	}

	p, err := pipeline.New(cfg.Recognizer, cfg.Storage, options...)

	if err != nil {
		return err
	}

	cfg.Pipeline = p

	return nil
}
