package corpus

import (
	"context"

	"lawline-backend/models"
)

// EmbeddedSource serves the built-in Kazakhstan corpus. It keeps the
// service usable with zero external configuration.
type EmbeddedSource struct{}

// NewEmbeddedSource creates a source backed by the built-in corpus
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// LoadArticles returns a copy of the built-in article corpus
func (s *EmbeddedSource) LoadArticles(ctx context.Context) ([]models.ArticleRecord, error) {
	articles := make([]models.ArticleRecord, len(embeddedArticles))
	copy(articles, embeddedArticles)
	return articles, nil
}

// embeddedArticles is the hand-curated Kazakhstan statute corpus. Keywords
// are matched as literal lowercase substrings; the multi-word entries rely
// on that, so do not "normalize" them into single tokens.
var embeddedArticles = []models.ArticleRecord{
	// Workplace Advisor (Labor Code)
	{
		ID:       "Labor Code, Article 52",
		Topic:    models.TopicWorkplaceAdvisor,
		Keywords: []string{"termination", "fired", "dismissal", "увольнение", "расторжение"},
		Text:     "Article 52. Grounds for termination of an employment contract at the initiative of the employer. 1. An employment contract with an employee may be terminated... in the following cases: 1) liquidation of the employer... 2) reduction in the number or staff of employees... 3) non-conformity of the employee with the position held... confirmed by the results of certification...",
	},
	{
		ID:       "Labor Code, Article 85",
		Topic:    models.TopicWorkplaceAdvisor,
		Keywords: []string{"holiday", "weekend", "day off", "праздник", "выходной"},
		Text:     "Article 85. Work on holidays and weekends. Work on holidays and weekends is prohibited. Attraction to work on holidays and weekends is made with the written consent of the employee or at his request on the basis of an act of the employer...",
	},
	{
		ID:       "Labor Code, Article 68",
		Topic:    models.TopicWorkplaceAdvisor,
		Keywords: []string{"overtime", "сверхурочно", "over work"},
		Text:     "Article 68. Overtime work. Overtime work is work performed by an employee at the initiative of the employer in excess of the established duration of working time. Attraction to overtime work is allowed only with the written consent of the employee, except for cases provided for in this Code. Overtime work should not exceed two hours per day for each employee, and one hour for heavy work, work with harmful and (or) dangerous working conditions.",
	},

	// Family Law Assistant (Marriage & Family Code)
	{
		ID:       "Marriage & Family Code, Article 19",
		Topic:    models.TopicFamilyLaw,
		Keywords: []string{"divorce", "dissolution", "развод", "расторжение брака"},
		Text:     "Article 19. Grounds for termination of marriage (matrimony). 1. The grounds for termination of marriage (matrimony) are: 1) the death or declaration by a court of one of the spouses as deceased; 2) termination of the marriage (matrimony) at the request of one or both spouses...",
	},
	{
		ID:       "Marriage & Family Code, Article 20",
		Topic:    models.TopicFamilyLaw,
		Keywords: []string{"divorce in court", "суд", "court"},
		Text:     "Article 20. Termination of marriage (matrimony) in court. The termination of a marriage (matrimony) is carried out in court if the spouses have common minor children, or in the absence of the consent of one of the spouses to terminate the marriage...",
	},

	// Consumer Rights Protector (Law on Consumer Rights)
	{
		ID:       "Law on Consumer Rights, Article 14",
		Topic:    models.TopicConsumerRights,
		Keywords: []string{"return", "exchange", "refund", "возврат", "обмен"},
		Text:     "Article 14. Right of consumers to exchange or return goods of proper quality. 1. The buyer has the right to exchange a non-food product of proper quality for a similar product from the seller from whom the product was purchased, if the specified product did not fit in shape, size, style, color, size or for other reasons cannot be used by the buyer for its intended purpose. The buyer has the right to exchange a non-food product of proper quality within fourteen days, not counting the day of its purchase.",
	},
	{
		ID:       "Law on Consumer Rights, Article 15",
		Topic:    models.TopicConsumerRights,
		Keywords: []string{"defective", "faulty", "poor quality", "бракованный", "некачественный"},
		Text:     "Article 15. Rights of the consumer in case of selling goods of improper quality. 1. A consumer to whom a product of improper quality has been sold, if its shortcomings were not stipulated by the seller, has the right to demand at his choice: 1) replacement with a product of a similar brand (model, article); 2) replacement with the same product of another brand (model, article) with a corresponding recalculation of the purchase price; 3) a commensurate reduction in the purchase price; 4) immediate gratuitous elimination of product defects or reimbursement of expenses for their correction...",
	},

	// Contract Advisor (Civil Code)
	{
		ID:       "Civil Code, Article 380",
		Topic:    models.TopicContractAdvisor,
		Keywords: []string{"contract", "agreement", "договор", "соглашение"},
		Text:     "Article 380. Concept of the contract. 1. A contract is an agreement of two or more persons on the establishment, modification or termination of civil rights and obligations. 2. The rules on bilateral and multilateral transactions provided for in Chapter 4 of this Code shall apply to the contract.",
	},

	// Corporate Legal Assistant (Law on LLPs)
	{
		ID:       "Law on LLPs, Article 2",
		Topic:    models.TopicCorporateAssistant,
		Keywords: []string{"llp", "business", "тоо", "company registration", "founding documents"},
		Text:     "Article 2. Concept of a limited liability partnership. 1. A limited liability partnership is a partnership established by one or several persons, the charter capital of which is divided into shares; the participants of a limited liability partnership are not liable for its obligations and bear the risk of losses associated with the activities of the partnership within the value of their contributions.",
	},
}
