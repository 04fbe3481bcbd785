package config

import (
	"github.com/adrianliechti/docread/pkg/ledger"
	"github.com/adrianliechti/docread/pkg/storage/fs"
	"github.com/adrianliechti/docread/pkg/storage/memory"
)

type storageConfig struct {
	Path string `yaml:"path"`
}

type ledgerConfig struct {
	Path string `yaml:"path"`
}

func (cfg *Config) registerStorage(f *configFile) error {
	if f.Storage == nil || f.Storage.Path == "" {
		cfg.Storage = memory.New()
		return nil
	}

	provider, err := fs.New(f.Storage.Path)

	if err != nil {
		return err
	}

	cfg.Storage = provider

	return nil
}

func (cfg *Config) registerLedger(f *configFile) error {
	if f.Ledger == nil || f.Ledger.Path == "" {
		return nil
	}

	l, err := ledger.Open(f.Ledger.Path)

	if err != nil {
		return err
	}

	cfg.Ledger = l

	return nil
}
