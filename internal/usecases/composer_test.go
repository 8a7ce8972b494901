package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootline/internal/entities"
)

func TestComposeGreetingWithoutRecord(t *testing.T) {
	rc := NewResponseComposer()
	c := NewClassifier(DefaultRules)

	reply := rc.Compose(nil, c.Classify("hi there"))
	assert.Contains(t, reply.Message, "Bootline support assistant")
	assert.Len(t, reply.Suggestions, 3)
}

func TestComposeAsksForOrderNumber(t *testing.T) {
	rc := NewResponseComposer()
	c := NewClassifier(DefaultRules)

	reply := rc.Compose(nil, c.Classify("I want a refund"))
	assert.Contains(t, reply.Message, "order number")
	assert.Contains(t, reply.Message, "refund")
}

func TestComposeUsesRecordCategory(t *testing.T) {
	rc := NewResponseComposer()
	c := NewClassifier(DefaultRules)

	record := &entities.OrderRecord{
		OrderNumber:   "DM24165432",
		CustomerName:  "Marcus T.",
		ProductName:   "2976 Chelsea Boot",
		IssueCategory: "repair",
	}
	// The record's category drives the template even when the message text
	// classifies differently.
	reply := rc.Compose(record, c.Classify("hello"))
	assert.Contains(t, reply.Message, "Marcus T.")
	assert.Contains(t, reply.Message, "2976 Chelsea Boot")
	assert.Contains(t, reply.Message, "lifetime repair warranty")
	require.NotEmpty(t, reply.Suggestions)
}

func TestComposeFallbackUsesResolution(t *testing.T) {
	rc := NewResponseComposer()
	c := NewClassifier(DefaultRules)

	record := &entities.OrderRecord{
		OrderNumber:   "DM24154321",
		CustomerName:  "Victor H.",
		ProductName:   "1461 Oxford",
		IssueCategory: "shipping",
	}
	reply := rc.Compose(record, c.Classify("my delivery is lost"))
	assert.Contains(t, reply.Message, "Victor H.")
	assert.Contains(t, reply.Message, "shipping investigation")
}

func TestSuggestionsByCategory(t *testing.T) {
	rc := NewResponseComposer()

	assert.Len(t, rc.Suggestions(nil), 3)

	repair := rc.Suggestions(&entities.OrderRecord{IssueCategory: "repair"})
	assert.Contains(t, repair, "Yes, start repair")

	unknown := rc.Suggestions(&entities.OrderRecord{IssueCategory: "general"})
	assert.Len(t, unknown, 3)
}
