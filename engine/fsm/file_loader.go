package fsm

import (
	"fmt"
	"os"
)

// LoadTableAuto loads a table from customPath when set, otherwise parses the embedded fallback
func LoadTableAuto(customPath string, embeddedFallback []byte) (*Table, error) {
	if customPath != "" {
		return LoadTable(customPath)
	}
	return ParseTable(embeddedFallback)
}

// LoadTable reads and parses a YAML transition table from disk
func LoadTable(path string) (*Table, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("transition table not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load transition table from %s: %w", path, err)
	}
	return t, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
