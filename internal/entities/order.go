package entities

// Priority levels used across records, classifications and escalations.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Sentiment values carried on order records.
const (
	SentimentNeutral      = "neutral"
	SentimentNegative     = "negative"
	SentimentVeryNegative = "very_negative"
	SentimentPositive     = "positive"
)

// OrderRecord is one row of the support dataset, keyed by order number
// (canonical form: uppercase "DM" followed by 7-10 digits).
type OrderRecord struct {
	OrderNumber         string `json:"order_number"`
	StarRating          int    `json:"star_rating"`
	CustomerName        string `json:"customer_name"`
	ReviewTitle         string `json:"review_title"`
	ReviewText          string `json:"review_text"`
	ReviewDate          string `json:"review_date"`
	ProductName         string `json:"product_name"`
	ProductURL          string `json:"product_url"`
	IssueCategory       string `json:"issue_category"`
	ActionRequired      string `json:"action_required"`
	PriorityLevel       string `json:"priority_level"`
	SuggestedResolution string `json:"suggested_resolution"`
	IntegrationSystem   string `json:"integration_system"`
	EscalationNeeded    bool   `json:"escalation_needed"`
	Sentiment           string `json:"sentiment"`
}
