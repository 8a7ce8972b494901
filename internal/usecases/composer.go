package usecases

import (
	"fmt"
	"strings"

	"bootline/internal/entities"
)

// ComposedReply is the deterministic alternative to a model-generated answer.
type ComposedReply struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// ResponseComposer builds canned, templated replies from classifier output
// and the resolved customer record. It is the reply path used when no
// generative model is configured.
type ResponseComposer struct{}

func NewResponseComposer() *ResponseComposer {
	return &ResponseComposer{}
}

// Compose selects a reply for the message. With a record present the reply is
// keyed by the record's issue category; without one the customer is asked for
// an order number unless the message is a general inquiry.
func (rc *ResponseComposer) Compose(record *entities.OrderRecord, classification entities.Classification) ComposedReply {
	if record != nil {
		return rc.composeForRecord(record, classification)
	}

	if classification.IssueType != "general" {
		issue := strings.ReplaceAll(classification.IssueType, "_", " ")
		return ComposedReply{
			Message: fmt.Sprintf("I understand you're having a %s issue. To help you quickly, could you please provide your order number? It starts with 'DM' followed by numbers (e.g., DM24210432).", issue),
			Suggestions: []string{
				"I have my order number",
				"I don't have it",
				"General question",
			},
		}
	}

	return ComposedReply{
		Message: "Hello! I'm the Bootline support assistant. I can help with returns, repairs, exchanges, and store appointments. How can I help you today?",
		Suggestions: []string{
			"I need to return something",
			"My boots are damaged",
			"Book store appointment",
		},
	}
}

func (rc *ResponseComposer) composeForRecord(record *entities.OrderRecord, classification entities.Classification) ComposedReply {
	name := record.CustomerName
	product := record.ProductName

	switch record.IssueCategory {
	case "sizing":
		return ComposedReply{
			Message:     fmt.Sprintf("Hi %s! I can see you're having sizing issues with your %s. I completely understand how frustrating it is when boots don't fit right. I can arrange a free size exchange with expedited shipping. Would you like me to process that for you?", name, product),
			Suggestions: []string{"Yes, process exchange", "What sizes are available?", "I want a refund instead"},
		}
	case "repair":
		return ComposedReply{
			Message:     fmt.Sprintf("Hi %s, I'm so sorry to hear about the issue with your %s. That's definitely not the quality you expect from us. Good news - your boots are covered under our lifetime repair warranty. I can initiate a repair right now and send you a prepaid shipping label. Shall I do that?", name, product),
			Suggestions: []string{"Yes, start repair", "How long will repair take?", "I want a replacement instead"},
		}
	case "refund":
		return ComposedReply{
			Message:     fmt.Sprintf("Hi %s, I apologize for the trouble with your order. I can process a full refund for you right away, plus provide a 15%% discount code for a future purchase. Would you like me to proceed?", name),
			Suggestions: []string{"Yes, process refund", "Can I exchange instead?", "Speak to a manager"},
		}
	case "customer_service":
		return ComposedReply{
			Message:     fmt.Sprintf("Hi %s, I sincerely apologize for the poor experience you've had. This is not the level of service we strive for. I'm escalating your case to our senior support team immediately. You'll receive a callback within 2 hours. Is there anything else I can help with right now?", name),
			Suggestions: []string{"That works, thank you", "I want to speak to someone now", "I want a full refund"},
		}
	case "appointment":
		return ComposedReply{
			Message:     fmt.Sprintf("Hi %s! I'd be happy to help you book a fitting appointment. We have slots available tomorrow at 10 AM, 2 PM, or the day after at 11 AM. A fit specialist will help you find your perfect size. Which time works best?", name),
			Suggestions: []string{"Tomorrow 10 AM", "Tomorrow 2 PM", "Day after tomorrow 11 AM"},
		}
	}

	// No category-specific template: personalized fallback referencing the
	// classifier's suggested resolution.
	return ComposedReply{
		Message:     fmt.Sprintf("Hi %s! Thank you for reaching out about your %s. I'm here to help. Based on your concern, I suggest: %s Would you like me to proceed?", name, product, classification.SuggestedResolution),
		Suggestions: []string{"Yes, please help", "Tell me more", "Speak to a person"},
	}
}

// Suggestions returns the quick-reply hints shown alongside agent-generated
// answers, keyed by the record's issue category.
func (rc *ResponseComposer) Suggestions(record *entities.OrderRecord) []string {
	if record == nil {
		return []string{"I need to return something", "My boots are damaged", "Sizing help"}
	}
	switch record.IssueCategory {
	case "repair":
		return []string{"Yes, start repair", "How long will it take?", "I want a replacement"}
	case "sizing":
		return []string{"Yes, process exchange", "What sizes available?", "I want a refund"}
	case "refund":
		return []string{"Yes, process refund", "Can I exchange instead?", "Speak to manager"}
	case "quality":
		return []string{"I want a replacement", "Process refund", "Speak to quality team"}
	case "customer_service":
		return []string{"That works, thank you", "Speak to someone now", "I want a refund"}
	}
	return []string{"Yes, please help", "Tell me more", "Speak to a person"}
}
