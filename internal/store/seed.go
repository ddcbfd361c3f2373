package store

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeedYAML []byte

// SeedBook is one catalog entry in a seed file.
type SeedBook struct {
	ISBN   string `yaml:"isbn"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

type seedFile struct {
	Books []SeedBook `yaml:"books"`
}

// DefaultSeed returns the catalog seed embedded in the binary.
func DefaultSeed() ([]SeedBook, error) {
	return parseSeed(defaultSeedYAML)
}

// LoadSeedFile reads and validates a YAML catalog seed from disk.
func LoadSeedFile(path string) ([]SeedBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) ([]SeedBook, error) {
	var parsed seedFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if len(parsed.Books) == 0 {
		return nil, fmt.Errorf("seed contains no books")
	}

	seen := make(map[string]bool, len(parsed.Books))
	for i, book := range parsed.Books {
		if strings.TrimSpace(book.ISBN) == "" {
			return nil, fmt.Errorf("seed entry %d: missing isbn", i)
		}
		if strings.TrimSpace(book.Title) == "" {
			return nil, fmt.Errorf("seed entry %d (%s): missing title", i, book.ISBN)
		}
		if strings.TrimSpace(book.Author) == "" {
			return nil, fmt.Errorf("seed entry %d (%s): missing author", i, book.ISBN)
		}
		if seen[book.ISBN] {
			return nil, fmt.Errorf("seed entry %d: duplicate isbn %s", i, book.ISBN)
		}
		seen[book.ISBN] = true
	}
	return parsed.Books, nil
}
