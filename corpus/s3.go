package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"lawline-backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Source loads the article corpus from a JSON object in S3
type S3Source struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Source creates a source reading from the configured bucket and key
func NewS3Source(cfg SourceConfig) (*S3Source, error) {
	ctx := context.Background()

	var awsCfg aws.Config
	var err error

	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		// Use explicit credentials
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.S3Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKey,
				cfg.AWSSecretKey,
				"",
			)),
		)
	} else {
		// Use default credentials (from environment, IAM role, etc.)
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.S3Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Source{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		key:    cfg.S3Key,
	}, nil
}

// LoadArticles downloads and decodes the corpus object
func (s *S3Source) LoadArticles(ctx context.Context) ([]models.ArticleRecord, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download corpus from S3: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus object body: %w", err)
	}

	var articles []models.ArticleRecord
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode corpus object s3://%s/%s: %w", s.bucket, s.key, err)
	}

	if err := validateArticles(articles); err != nil {
		return nil, fmt.Errorf("invalid corpus object s3://%s/%s: %w", s.bucket, s.key, err)
	}

	return articles, nil
}
