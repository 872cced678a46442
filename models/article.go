package models

// Topic identifies which specialized assistant an article serves
type Topic string

const (
	TopicWorkplaceAdvisor   Topic = "workplace_advisor"
	TopicFamilyLaw          Topic = "family_law"
	TopicConsumerRights     Topic = "consumer_rights"
	TopicContractAdvisor    Topic = "contract_advisor"
	TopicCorporateAssistant Topic = "corporate_assistant"
)

// ArticleRecord represents a statute excerpt used as retrieval context.
// Records are loaded once at startup and never mutated; keywords are
// lowercase strings matched by literal substring containment.
type ArticleRecord struct {
	ID       string   `json:"id"`
	Topic    Topic    `json:"topic"`
	Keywords []string `json:"keywords"`
	Text     string   `json:"text"`
}
