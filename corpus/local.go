package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"lawline-backend/models"
)

// LocalSource loads the article corpus from a JSON file on disk
type LocalSource struct {
	path string
}

// NewLocalSource creates a source reading from the given file path
func NewLocalSource(path string) (*LocalSource, error) {
	if path == "" {
		return nil, fmt.Errorf("corpus file path is empty")
	}
	return &LocalSource{path: path}, nil
}

// LoadArticles reads and decodes the corpus file
func (s *LocalSource) LoadArticles(ctx context.Context) ([]models.ArticleRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("corpus file not found: %s", s.path)
		}
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var articles []models.ArticleRecord
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode corpus file %s: %w", s.path, err)
	}

	if err := validateArticles(articles); err != nil {
		return nil, fmt.Errorf("invalid corpus file %s: %w", s.path, err)
	}

	return articles, nil
}
