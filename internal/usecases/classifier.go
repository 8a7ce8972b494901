package usecases

import (
	"strings"

	"bootline/internal/entities"
)

// IssueRule maps a keyword group to a triage outcome. Rules are evaluated in
// order and the first hit wins, so overlapping keywords across rules are
// disambiguated solely by table position.
type IssueRule struct {
	Issue    string
	Keywords []string
	Action   string
	System   string
	Priority string
}

// DefaultRules is the triage table. Order is load-bearing: do not reorder.
var DefaultRules = []IssueRule{
	{
		Issue:    "refund",
		Keywords: []string{"refund", "money back", "return", "returning", "reimburse"},
		Action:   "refund",
		System:   "shopify_returns",
		Priority: entities.PriorityHigh,
	},
	{
		Issue:    "repair",
		Keywords: []string{"repair", "broke", "broken", "sole", "damaged", "defect", "separated", "detached", "ripped", "torn"},
		Action:   "repair",
		System:   "repair_flow",
		Priority: entities.PriorityHigh,
	},
	{
		Issue:    "sizing",
		Keywords: []string{"size", "fit", "tight", "loose", "small", "large", "uncomfortable", "exchange"},
		Action:   "exchange",
		System:   "pos_inventory",
		Priority: entities.PriorityMedium,
	},
	{
		Issue:    "quality",
		Keywords: []string{"quality", "cheap", "poor", "disappointing", "color", "faded"},
		Action:   "escalate",
		System:   "zendesk_escalation",
		Priority: entities.PriorityHigh,
	},
	{
		Issue:    "customer_service",
		Keywords: []string{"customer service", "support", "no response", "unhelpful", "rude", "manager", "ignored"},
		Action:   "escalate",
		System:   "zendesk_escalation",
		Priority: entities.PriorityCritical,
	},
	{
		Issue:    "shipping",
		Keywords: []string{"shipping", "delivery", "late", "delayed", "lost", "tracking", "arrived damaged"},
		Action:   "investigate",
		System:   "shipping_tracker",
		Priority: entities.PriorityMedium,
	},
	{
		Issue:    "appointment",
		Keywords: []string{"appointment", "store", "try on", "visit", "fitting"},
		Action:   "appointment",
		System:   "pos_booking",
		Priority: entities.PriorityLow,
	},
}

// resolutionByAction maps a triage action to its canned resolution text,
// independent of the issue type that selected the action.
var resolutionByAction = map[string]string{
	"refund":         "Process full refund + 10% discount code for inconvenience",
	"repair":         "Initiate lifetime repair service with prepaid shipping label",
	"exchange":       "Free size exchange with expedited shipping",
	"escalate":       "Escalate to senior support specialist for immediate attention",
	"investigate":    "Open shipping investigation + provide tracking update",
	"appointment":    "Book in-store fitting appointment with product specialist",
	"knowledge_base": "Provide relevant information from knowledge base",
}

// Classifier triages free text against an immutable ordered rule table.
type Classifier struct {
	rules []IssueRule
}

func NewClassifier(rules []IssueRule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the triage outcome for the first rule with a keyword hit,
// or the default general classification when no rule matches. The function is
// pure: identical text always yields an identical result.
func (c *Classifier) Classify(text string) entities.Classification {
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return entities.Classification{
					IssueType:           rule.Issue,
					Action:              rule.Action,
					System:              rule.System,
					Priority:            rule.Priority,
					SuggestedResolution: resolutionFor(rule.Action),
				}
			}
		}
	}
	return entities.Classification{
		IssueType:           "general",
		Action:              "knowledge_base",
		System:              "rag_knowledge",
		Priority:            entities.PriorityLow,
		SuggestedResolution: resolutionByAction["knowledge_base"],
	}
}

func resolutionFor(action string) string {
	if resolution, ok := resolutionByAction[action]; ok {
		return resolution
	}
	return "Provide assistance"
}
