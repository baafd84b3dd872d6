package main

import (
	"fmt"
	"strings"

	"github.com/jrh3k5/slp-utils/internal/config"
)

// flagValue returns the value of the first "--name=value" argument.
func flagValue(args []string, name string) (string, bool) {
	for _, arg := range args {
		parsedValue, hasPrefix := strings.CutPrefix(arg, "--"+name+"=")
		if hasPrefix {
			return parsedValue, true
		}
	}

	return "", false
}

func requiredFlag(args []string, name string) (string, error) {
	value, _ := flagValue(args, name)
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("--%s argument is required", name)
	}

	return strings.TrimSpace(value), nil
}

// commandName returns the first argument that is not a flag, or an empty string if there is none.
func commandName(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			return arg
		}
	}

	return ""
}

// loadConfig reads the file named by --config, if any, and applies the flags that override it.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.Default()

	if configFile, hasConfig := flagValue(args, "config"); hasConfig {
		loaded, err := config.LoadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}

		cfg = loaded
	}

	if network, hasNetwork := flagValue(args, "network"); hasNetwork {
		cfg.Network = network
	}

	if logLevel, hasLogLevel := flagValue(args, "log-level"); hasLogLevel {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if restURL, hasRESTURL := flagValue(args, "rest-url"); hasRESTURL {
		cfg.RESTURLs[string(cfg.SLPNetwork())] = restURL
	}

	return cfg, nil
}
