package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Defaults of the local stub API.
const (
	DefaultStubAddress        = "127.0.0.1:8080"
	DefaultStubSignKey        = "fitiplus-stub-secret"
	DefaultStubAccessTokenTTL = 15 * time.Minute
)

var ErrInvalidStubConfigs = errors.New("invalid stub api configs")

// StubAPI configures cmd/stubapi. Env vars carry the STUB_ prefix.
type StubAPI struct {
	Address string `env:"ADDRESS"`
	Version string `env:"VERSION"`

	// SignKey signs the HS256 access tokens.
	SignKey        string        `env:"SIGN_KEY"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL"`

	// Latency delays every response, for trying out client timeouts.
	Latency time.Duration `env:"LATENCY"`
}

// GetStubAPIConfig merges flags over STUB_* env vars over defaults.
func GetStubAPIConfig(args []string) (*StubAPI, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	fromFlags, err := parseStubFlags(args)
	if err != nil {
		return nil, err
	}

	fromEnv := &StubAPI{}
	if err = env.ParseWithOptions(fromEnv, env.Options{Prefix: "STUB_"}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg := &StubAPI{}
	for _, src := range []*StubAPI{fromFlags, fromEnv, defaultStubAPI()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging stub configs: %w", err)
		}
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultStubAPI() *StubAPI {
	return &StubAPI{
		Address:        DefaultStubAddress,
		Version:        DefaultAPIVersion,
		SignKey:        DefaultStubSignKey,
		AccessTokenTTL: DefaultStubAccessTokenTTL,
	}
}

func parseStubFlags(args []string) (*StubAPI, error) {
	cfg := &StubAPI{}

	fs := flag.NewFlagSet("stubapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Address, "a", "", "Listen address")
	fs.StringVar(&cfg.Version, "api-version", "", "API version path prefix")
	fs.StringVar(&cfg.SignKey, "sign-key", "", "Access token signing key")
	fs.DurationVar(&cfg.AccessTokenTTL, "token-ttl", 0, "Access token lifetime")
	fs.DurationVar(&cfg.Latency, "latency", 0, "Artificial response delay")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return cfg, nil
}

func (c *StubAPI) validate() error {
	c.Version = strings.Trim(c.Version, "/")
	switch {
	case c.Address == "":
		return fmt.Errorf("%w: empty address", ErrInvalidStubConfigs)
	case c.SignKey == "":
		return fmt.Errorf("%w: empty sign key", ErrInvalidStubConfigs)
	case c.AccessTokenTTL <= 0:
		return fmt.Errorf("%w: access token ttl must be positive", ErrInvalidStubConfigs)
	case c.Latency < 0:
		return fmt.Errorf("%w: negative latency", ErrInvalidStubConfigs)
	}
	return nil
}
