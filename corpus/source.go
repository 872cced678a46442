package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"

	"lawline-backend/models"
)

// Source loads the article corpus at process startup. Sources are read
// once; after loading, the records live in memory for the process lifetime.
type Source interface {
	// LoadArticles returns the full article corpus
	LoadArticles(ctx context.Context) ([]models.ArticleRecord, error)
}

// SourceType represents the corpus backend type
type SourceType string

const (
	SourceTypeEmbedded SourceType = "embedded"
	SourceTypeLocal    SourceType = "local"
	SourceTypeS3       SourceType = "s3"
)

// SourceConfig holds configuration for a corpus source
type SourceConfig struct {
	Type         SourceType
	LocalPath    string // For local JSON files
	S3Bucket     string // For S3 objects
	S3Key        string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// NewSource creates a corpus source based on configuration
func NewSource(cfg SourceConfig) (Source, error) {
	switch cfg.Type {
	case SourceTypeEmbedded:
		return NewEmbeddedSource(), nil
	case SourceTypeLocal:
		return NewLocalSource(cfg.LocalPath)
	case SourceTypeS3:
		return NewS3Source(cfg)
	default:
		return nil, fmt.Errorf("unknown corpus source type: %s", cfg.Type)
	}
}

// NewSourceFromEnv creates a corpus source from environment variables
func NewSourceFromEnv() (Source, error) {
	sourceType := os.Getenv("ARTICLE_SOURCE")
	if sourceType == "" {
		sourceType = "embedded" // Built-in corpus by default
	}

	switch SourceType(sourceType) {
	case SourceTypeEmbedded:
		return NewEmbeddedSource(), nil

	case SourceTypeLocal:
		localPath := os.Getenv("ARTICLES_PATH")
		if localPath == "" {
			localPath = "./corpus/articles.json"
		}
		return NewLocalSource(localPath)

	case SourceTypeS3:
		cfg := SourceConfig{
			Type:     SourceTypeS3,
			S3Bucket: os.Getenv("ARTICLES_S3_BUCKET"),
			S3Key:    os.Getenv("ARTICLES_S3_KEY"),
			S3Region: os.Getenv("AWS_REGION"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("ARTICLES_S3_BUCKET environment variable is required for S3 corpus source")
		}
		if cfg.S3Key == "" {
			cfg.S3Key = "articles.json"
		}
		return NewS3Source(cfg)

	default:
		return nil, fmt.Errorf("unknown corpus source type: %s", sourceType)
	}
}

// validateArticles rejects corpora that cannot serve retrieval
func validateArticles(articles []models.ArticleRecord) error {
	if len(articles) == 0 {
		return errors.New("corpus contains no articles")
	}
	for i, a := range articles {
		if a.ID == "" {
			return fmt.Errorf("article at index %d has no id", i)
		}
		if a.Topic == "" {
			return fmt.Errorf("article %q has no topic", a.ID)
		}
		if a.Text == "" {
			return fmt.Errorf("article %q has no text", a.ID)
		}
	}
	return nil
}
