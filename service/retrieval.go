package service

import (
	"strings"

	"lawline-backend/models"
)

// RetrievalService matches free-text queries against the in-memory article
// corpus. The corpus is loaded once at startup and never mutated, so the
// service is safe for concurrent use without locking.
type RetrievalService struct {
	articles []models.ArticleRecord
}

// NewRetrievalService creates a retrieval service over the given corpus
func NewRetrievalService(articles []models.ArticleRecord) *RetrievalService {
	return &RetrievalService{articles: articles}
}

// Articles returns the full corpus in load order
func (s *RetrievalService) Articles() []models.ArticleRecord {
	return s.articles
}

// FindRelevant returns the articles within the given topic partition whose
// keywords appear in the query. Matching is case-insensitive literal
// substring containment: "overtime" matches inside "overtimesheet", and a
// multi-word keyword like "day off" only matches with its internal space.
// Corpus order is preserved; no match is a normal outcome, not an error.
func (s *RetrievalService) FindRelevant(query string, topic models.Topic) []models.ArticleRecord {
	queryLower := strings.ToLower(query)

	var relevant []models.ArticleRecord
	for _, article := range s.articles {
		if article.Topic != topic {
			continue
		}
		for _, keyword := range article.Keywords {
			if strings.Contains(queryLower, keyword) {
				relevant = append(relevant, article)
				break
			}
		}
	}

	return relevant
}
