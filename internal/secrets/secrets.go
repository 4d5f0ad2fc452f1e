// Copyright Brightwork Labs Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files. Each
// file in the directory represents one secret: the filename is the key name
// and the file contents (trimmed) are the value. The keys themselves are
// consumed by the external orchestration framework; this side only checks
// presence before a run starts.
//
// Supported key files: openai-api-key, anthropic-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// envVars maps secret file names to the environment variables that take
// precedence over them.
var envVars = map[string]string{
	"openai-api-key":    "OPENAI_API_KEY",
	"anthropic-api-key": "ANTHROPIC_API_KEY",
}

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but do
// not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Resolve returns the value for a secret key, preferring the corresponding
// environment variable over the loaded secrets map.
func Resolve(secrets map[string]string, key string) string {
	if env, ok := envVars[key]; ok {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	return secrets[key]
}

// HasAPIKey reports whether any supported model API key is available from
// the environment or the loaded secrets.
func HasAPIKey(secrets map[string]string) bool {
	for key := range envVars {
		if Resolve(secrets, key) != "" {
			return true
		}
	}
	return false
}
