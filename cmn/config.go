// Package cmn provides common types shared by the RSpace ELN and Inventory API clients.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package cmn

import (
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment overrides for client configuration.
const (
	EnvURL    = "RSPACE_URL"
	EnvAPIKey = "RSPACE_API_KEY"
)

const DfltTimeout = 30 * time.Second

// ClientConf is the immutable client configuration: server base URL plus the
// user's API key (found on the 'My Profile' page of the RSpace web UI).
type ClientConf struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

func (c *ClientConf) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.APIKey, validation.Required),
	)
}

// LoadConf reads a YAML config file, applies RSPACE_URL / RSPACE_API_KEY
// environment overrides, and validates the result. The path may be empty
// when the environment supplies everything.
func LoadConf(path string) (*ClientConf, error) {
	conf := &ClientConf{Timeout: DfltTimeout}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %q", path)
		}
		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %q", path)
		}
	}
	if v := os.Getenv(EnvURL); v != "" {
		conf.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		conf.APIKey = v
	}
	if conf.Timeout == 0 {
		conf.Timeout = DfltTimeout
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid client configuration")
	}
	return conf, nil
}
