package repository

import (
	"context"
	"fmt"

	"lawline-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ArticleRepository handles database operations for the article corpus.
// It satisfies corpus.Source: the service loads all rows once at startup
// and serves retrieval from memory.
type ArticleRepository struct {
	db *pgxpool.Pool
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// LoadArticles returns the full corpus in insertion order
func (r *ArticleRepository) LoadArticles(ctx context.Context) ([]models.ArticleRecord, error) {
	query := `
		SELECT
			article_id,
			topic,
			keywords,
			article_text
		FROM legal_articles
		ORDER BY position`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query legal articles: %w", err)
	}
	defer rows.Close()

	var articles []models.ArticleRecord
	for rows.Next() {
		var article models.ArticleRecord
		err := rows.Scan(
			&article.ID,
			&article.Topic,
			&article.Keywords,
			&article.Text,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan legal article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legal articles: %w", err)
	}

	if len(articles) == 0 {
		return nil, fmt.Errorf("legal_articles table is empty; run cmd/seed-articles first")
	}

	return articles, nil
}

// CreateSchema creates the legal_articles table if it does not exist
func (r *ArticleRepository) CreateSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS legal_articles (
			article_id   TEXT PRIMARY KEY,
			topic        TEXT NOT NULL,
			keywords     TEXT[] NOT NULL,
			article_text TEXT NOT NULL,
			position     INT NOT NULL
		)`

	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create legal_articles table: %w", err)
	}

	index := `CREATE INDEX IF NOT EXISTS idx_legal_articles_topic ON legal_articles (topic)`
	if _, err := r.db.Exec(ctx, index); err != nil {
		return fmt.Errorf("failed to create topic index: %w", err)
	}

	return nil
}

// UpsertArticles inserts or replaces corpus rows, preserving slice order
// via the position column
func (r *ArticleRepository) UpsertArticles(ctx context.Context, articles []models.ArticleRecord) error {
	query := `
		INSERT INTO legal_articles (article_id, topic, keywords, article_text, position)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (article_id) DO UPDATE SET
			topic = EXCLUDED.topic,
			keywords = EXCLUDED.keywords,
			article_text = EXCLUDED.article_text,
			position = EXCLUDED.position`

	for i, article := range articles {
		_, err := r.db.Exec(ctx, query,
			article.ID,
			string(article.Topic),
			article.Keywords,
			article.Text,
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert article %q: %w", article.ID, err)
		}
	}

	return nil
}
