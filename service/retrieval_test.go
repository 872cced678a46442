package service

import (
	"context"
	"testing"

	"lawline-backend/corpus"
	"lawline-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRetrieval(t *testing.T) *RetrievalService {
	t.Helper()
	articles, err := corpus.NewEmbeddedSource().LoadArticles(context.Background())
	require.NoError(t, err)
	return NewRetrievalService(articles)
}

func TestFindRelevant_KeywordHit(t *testing.T) {
	svc := newTestRetrieval(t)

	matched := svc.FindRelevant("I was fired without notice", models.TopicWorkplaceAdvisor)
	require.Len(t, matched, 1)
	assert.Equal(t, "Labor Code, Article 52", matched[0].ID)
}

func TestFindRelevant_NoKeywordMatch(t *testing.T) {
	svc := newTestRetrieval(t)

	matched := svc.FindRelevant("the weather is nice", models.TopicWorkplaceAdvisor)
	assert.Empty(t, matched)
}

func TestFindRelevant_CaseInsensitive(t *testing.T) {
	svc := newTestRetrieval(t)

	matched := svc.FindRelevant("I WAS FIRED Yesterday", models.TopicWorkplaceAdvisor)
	require.Len(t, matched, 1)
	assert.Equal(t, "Labor Code, Article 52", matched[0].ID)
}

func TestFindRelevant_SubstringContainment(t *testing.T) {
	svc := newTestRetrieval(t)

	// Matching is literal containment, not word-boundary matching.
	matched := svc.FindRelevant("my overtimesheet is wrong", models.TopicWorkplaceAdvisor)
	require.Len(t, matched, 1)
	assert.Equal(t, "Labor Code, Article 68", matched[0].ID)
}

func TestFindRelevant_MultiWordKeyword(t *testing.T) {
	svc := newTestRetrieval(t)

	// "day off" must match only with its internal space intact.
	matched := svc.FindRelevant("can I take a day off tomorrow", models.TopicWorkplaceAdvisor)
	require.Len(t, matched, 1)
	assert.Equal(t, "Labor Code, Article 85", matched[0].ID)

	assert.Empty(t, svc.FindRelevant("can I take a dayoff tomorrow", models.TopicWorkplaceAdvisor))
}

func TestFindRelevant_TopicIsolation(t *testing.T) {
	svc := newTestRetrieval(t)

	// "court" is a family_law keyword; it must never surface the family
	// article in another topic partition.
	matched := svc.FindRelevant("do I have to go to court", models.TopicFamilyLaw)
	require.Len(t, matched, 1)
	assert.Equal(t, "Marriage & Family Code, Article 20", matched[0].ID)

	assert.Empty(t, svc.FindRelevant("do I have to go to court", models.TopicWorkplaceAdvisor))
	assert.Empty(t, svc.FindRelevant("do I have to go to court", models.TopicContractAdvisor))
}

func TestFindRelevant_MultipleMatchesPreserveOrder(t *testing.T) {
	svc := newTestRetrieval(t)

	matched := svc.FindRelevant("I was fired for refusing overtime on a holiday", models.TopicWorkplaceAdvisor)
	require.Len(t, matched, 3)
	assert.Equal(t, "Labor Code, Article 52", matched[0].ID)
	assert.Equal(t, "Labor Code, Article 85", matched[1].ID)
	assert.Equal(t, "Labor Code, Article 68", matched[2].ID)
}

func TestFindRelevant_EmptyQuery(t *testing.T) {
	svc := newTestRetrieval(t)

	assert.Empty(t, svc.FindRelevant("", models.TopicWorkplaceAdvisor))
}

func TestFindRelevant_UnknownTopic(t *testing.T) {
	svc := newTestRetrieval(t)

	assert.Empty(t, svc.FindRelevant("I was fired", models.Topic("ip_guard")))
}

func TestFindRelevant_RussianKeywords(t *testing.T) {
	svc := newTestRetrieval(t)

	matched := svc.FindRelevant("мне грозит увольнение", models.TopicWorkplaceAdvisor)
	require.Len(t, matched, 1)
	assert.Equal(t, "Labor Code, Article 52", matched[0].ID)
}

func TestArticles_ReturnsFullCorpus(t *testing.T) {
	svc := newTestRetrieval(t)

	articles := svc.Articles()
	assert.Len(t, articles, 9)
	// Same fixed sequence on every call.
	assert.Equal(t, articles, svc.Articles())
}
