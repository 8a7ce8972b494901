package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"bootline/internal/entities"
	"bootline/internal/interfaces"
)

// DefaultMaxRounds bounds the number of model round-trips per chat turn.
const DefaultMaxRounds = 5

// FallbackReply is returned when the remote model cannot be reached. The turn
// ends gracefully; the failure is logged, never retried.
const FallbackReply = "I apologize, but I'm experiencing technical difficulties. Please try again or contact our support team directly."

const systemPrompt = `You are an AI customer service agent for Bootline, a footwear retailer. You have access to tools to help customers with their orders.

YOUR PERSONALITY:
- Friendly, empathetic, and professional
- You genuinely care about resolving customer issues
- You acknowledge frustration and apologize sincerely for problems
- You're proactive in offering solutions

YOUR CAPABILITIES (use tools when appropriate):
1. **lookup_order** - Look up customer details by order number (DM + digits)
2. **process_refund** - Process refunds for dissatisfied customers
3. **initiate_repair** - Start repairs under the lifetime repair warranty
4. **create_exchange** - Handle size exchanges
5. **escalate_to_human** - Escalate complex issues to human agents
6. **book_appointment** - Book in-store fitting appointments

WORKFLOW:
1. If customer provides an order number, ALWAYS use lookup_order first
2. Review their purchase history and any previous complaints
3. Based on the issue category and sentiment, take appropriate action
4. For 1-2 star reviews or very negative sentiment, be extra empathetic
5. Proactively offer solutions - don't wait for customers to ask

ISSUE HANDLING:
- **Repair issues** (broken, damaged, strap broke, sole separated): Use initiate_repair
- **Sizing issues** (too small, too big, uncomfortable): Use create_exchange
- **Refund requests** (want money back, returning): Use process_refund
- **Very angry customers** (1 star, customer_service complaints): Consider escalate_to_human
- **Quality concerns**: Offer replacement OR refund, consider escalation

IMPORTANT:
- Always address customers by name when known
- Reference their specific product and issue
- If sentiment is "very_negative" or star_rating is 1, be extra apologetic
- After using a tool, explain the result clearly to the customer
- Offer a discount code (SORRY15 for 15% off) when appropriate`

// AgentResult is everything one orchestrated chat turn produced.
type AgentResult struct {
	Response    string                    `json:"response"`
	ToolResults []entities.ToolInvocation `json:"tool_results"`
	History     []entities.ChatMessage    `json:"conversation_history"`
}

// AgentService drives the bounded tool-use conversation loop with the remote
// model. Conversation state is owned by the caller: it is passed in per turn
// and returned extended, never stored here.
type AgentService struct {
	client    interfaces.ModelClient
	executor  *ActionExecutor
	maxRounds int
}

func NewAgentService(client interfaces.ModelClient, executor *ActionExecutor, maxRounds int) *AgentService {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &AgentService{
		client:    client,
		executor:  executor,
		maxRounds: maxRounds,
	}
}

// Run handles one chat turn. Each round either yields tool invocations, which
// are executed in order and fed back, or a final text answer. The loop never
// exceeds maxRounds; if the budget runs out, the last seen text (possibly
// empty) becomes the reply.
func (s *AgentService) Run(ctx context.Context, message string, history []entities.ChatMessage, customer *entities.OrderRecord) AgentResult {
	messages := make([]entities.ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, entities.NewTextMessage(entities.RoleUser, message))

	system := systemPrompt
	if customer != nil {
		system += customerContext(customer)
	}

	var invocations []entities.ToolInvocation
	lastText := ""

	for round := 0; round < s.maxRounds; round++ {
		resp, err := s.client.CreateMessage(ctx, entities.ModelRequest{
			System:   system,
			Tools:    ToolCatalog(),
			Messages: messages,
		})
		if err != nil {
			slog.Error("model call failed", "round", round, "error", err)
			lastText = FallbackReply
			break
		}

		for _, block := range resp.Content {
			if block.Type == entities.BlockTypeText && block.Text != "" {
				lastText = block.Text
			}
		}

		if resp.StopReason != entities.StopReasonToolUse {
			break
		}

		// Execute requested tools sequentially, in the order received, and
		// send all results back as one batch.
		var toolResults []entities.ContentBlock
		for _, block := range resp.Content {
			if block.Type != entities.BlockTypeToolUse {
				continue
			}
			result := s.executor.Execute(block.Name, block.Input)
			invocations = append(invocations, entities.ToolInvocation{
				Tool:   block.Name,
				Input:  block.Input,
				Result: result,
			})
			slog.Info("agent tool executed", "tool", block.Name, "success", result.Success)
			toolResults = append(toolResults, entities.ContentBlock{
				Type:      entities.BlockTypeToolResult,
				ToolUseID: block.ID,
				Content:   marshalResult(result),
			})
		}

		messages = append(messages, entities.ChatMessage{Role: entities.RoleAssistant, Content: resp.Content})
		messages = append(messages, entities.ChatMessage{Role: entities.RoleUser, Content: toolResults})
	}

	return AgentResult{
		Response:    lastText,
		ToolResults: invocations,
		History:     messages,
	}
}

func marshalResult(result entities.ActionResult) string {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"success":false,"message":%q}`, err.Error())
	}
	return string(payload)
}

func customerContext(customer *entities.OrderRecord) string {
	var b strings.Builder
	b.WriteString("\n\nCURRENT CUSTOMER CONTEXT:\n")
	fmt.Fprintf(&b, "- Name: %s\n", customer.CustomerName)
	fmt.Fprintf(&b, "- Order: %s\n", customer.OrderNumber)
	fmt.Fprintf(&b, "- Product: %s\n", customer.ProductName)
	fmt.Fprintf(&b, "- Issue Category: %s\n", customer.IssueCategory)
	fmt.Fprintf(&b, "- Priority: %s\n", customer.PriorityLevel)
	fmt.Fprintf(&b, "- Star Rating: %d/5\n", customer.StarRating)
	fmt.Fprintf(&b, "- Sentiment: %s\n", customer.Sentiment)
	fmt.Fprintf(&b, "- Review: %q\n", truncate(customer.ReviewText, 500))
	fmt.Fprintf(&b, "- Suggested Resolution: %s\n", customer.SuggestedResolution)
	fmt.Fprintf(&b, "- Escalation Needed: %t\n", customer.EscalationNeeded)
	b.WriteString("\nUse this context to provide personalized support.\n")
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
