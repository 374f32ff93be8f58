package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// catalogFile is the on-disk shape of a questions file.
type catalogFile struct {
	Questions []Question `json:"questions"`
}

// Load reads and validates a questions catalog from path.
func Load(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	if err := validateCatalog(raw); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	var cf catalogFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if err := Validate(cf.Questions); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return cf.Questions, nil
}

// LoadOrDefault loads the catalog at path, falling back to the built-in
// default set when the file is missing or invalid. The fallback is logged
// but never treated as fatal. An empty path selects the built-in set.
func LoadOrDefault(path string, logger *slog.Logger) []Question {
	if path == "" {
		return DefaultQuestions()
	}
	questions, err := Load(path)
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to built-in questions", "path", path, "error", err)
		}
		return DefaultQuestions()
	}
	return questions
}
