package profile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/Tap30/profile-go/adapters"
)

// fileConfig is the HCL form of Config.
//
// Example:
//
//	endpoint            = "https://profiles.example.com/"
//	error_policy        = "reject"
//	verify_email_method = "GET"
//	timeout             = "30s"
//	log_level           = "warn"
type fileConfig struct {
	Endpoint          string `hcl:"endpoint,optional"`
	ErrorPolicy       string `hcl:"error_policy,optional"`
	VerifyEmailMethod string `hcl:"verify_email_method,optional"`
	Timeout           string `hcl:"timeout,optional"`
	LogLevel          string `hcl:"log_level,optional"`
}

// LoadConfigFile reads a Config from an HCL (.hcl) or HCL JSON (.json) file.
// Adapters are not configurable from a file.
func LoadConfigFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	var fc fileConfig
	if err := hclsimple.DecodeFile(filename, nil, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	return fc.config()
}

// ParseConfig is LoadConfigFile for in-memory source. The filename extension
// selects the syntax.
func ParseConfig(filename string, src []byte) (*Config, error) {
	var fc fileConfig
	if err := hclsimple.Decode(filename, src, nil, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return fc.config()
}

func (fc *fileConfig) config() (*Config, error) {
	cfg := &Config{
		Endpoint:          fc.Endpoint,
		ErrorPolicy:       ErrorPolicy(strings.ToLower(fc.ErrorPolicy)),
		VerifyEmailMethod: strings.ToUpper(fc.VerifyEmailMethod),
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = adapters.ParseLogLevel(fc.LogLevel)
	}
	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
		cfg.Timeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
