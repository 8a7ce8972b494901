package usecases

import (
	"fmt"
	"strings"
	"time"

	"bootline/internal/entities"
	"bootline/internal/repository"
)

// ActionKind enumerates the closed set of support operations. Dispatch is by
// kind, never by raw string, so an unrecognized name is a typed error rather
// than a map miss.
type ActionKind string

const (
	ActionLookupOrder     ActionKind = "lookup_order"
	ActionProcessRefund   ActionKind = "process_refund"
	ActionInitiateRepair  ActionKind = "initiate_repair"
	ActionCreateExchange  ActionKind = "create_exchange"
	ActionEscalateToHuman ActionKind = "escalate_to_human"
	ActionBookAppointment ActionKind = "book_appointment"
)

// UnknownActionError reports an action name outside the registry. It is a
// reportable, non-fatal condition.
type UnknownActionError struct {
	Name string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Name)
}

// ParseActionKind normalizes and validates an action name.
func ParseActionKind(name string) (ActionKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	switch kind := ActionKind(normalized); kind {
	case ActionLookupOrder, ActionProcessRefund, ActionInitiateRepair,
		ActionCreateExchange, ActionEscalateToHuman, ActionBookAppointment:
		return kind, nil
	}
	return "", &UnknownActionError{Name: name}
}

type actionFunc func(input map[string]any) entities.ActionResult

// ActionExecutor is the registry of support operations. Every operation is a
// pure function of its input: results are synthesized, no external system is
// called. Real payment/shipping/booking integrations sit behind this mock
// boundary in production.
type ActionExecutor struct {
	store    *repository.OrderStore
	nowFn    func() time.Time
	handlers map[ActionKind]actionFunc
}

func NewActionExecutor(store *repository.OrderStore) *ActionExecutor {
	e := &ActionExecutor{
		store: store,
		nowFn: time.Now,
	}
	e.handlers = map[ActionKind]actionFunc{
		ActionLookupOrder:     e.lookupOrder,
		ActionProcessRefund:   e.processRefund,
		ActionInitiateRepair:  e.initiateRepair,
		ActionCreateExchange:  e.createExchange,
		ActionEscalateToHuman: e.escalateToHuman,
		ActionBookAppointment: e.bookAppointment,
	}
	return e
}

// Execute runs the named operation. Unknown names yield a failure result, not
// an error return, so agent and API callers can relay it as-is.
func (e *ActionExecutor) Execute(name string, input map[string]any) entities.ActionResult {
	kind, err := ParseActionKind(name)
	if err != nil {
		return entities.ActionResult{Success: false, Message: err.Error()}
	}
	return e.handlers[kind](input)
}

func (e *ActionExecutor) lookupOrder(input map[string]any) entities.ActionResult {
	orderNumber := strings.ToUpper(stringField(input, "order_number", ""))
	if customer, ok := e.store.Get(orderNumber); ok {
		return entities.ActionResult{
			Success: true,
			Action:  "order_found",
			Message: fmt.Sprintf("Found customer %s with order %s", customer.CustomerName, orderNumber),
			Details: map[string]any{"customer": customer},
		}
	}
	return entities.ActionResult{
		Success: false,
		Message: fmt.Sprintf("Order %s not found in system", orderNumber),
		Details: map[string]any{"available_sample": e.store.SampleOrderNumbers(5)},
	}
}

func (e *ActionExecutor) processRefund(input map[string]any) entities.ActionResult {
	orderNumber := strings.ToUpper(stringField(input, "order_number", ""))
	reason := stringField(input, "reason", "Customer request")
	return entities.ActionResult{
		Success:     true,
		Action:      "refund_processed",
		ReferenceID: "REF-" + orderNumber,
		Message:     fmt.Sprintf("Refund processed for order %s. Reason: %s", orderNumber, reason),
		Details: map[string]any{
			"amount":         "$189.00",
			"product":        e.productName(orderNumber),
			"method":         "Original payment method",
			"estimated_time": "3-5 business days",
			"discount_code":  "SORRY15",
			"discount_value": "15% off next order",
		},
	}
}

func (e *ActionExecutor) initiateRepair(input map[string]any) entities.ActionResult {
	orderNumber := strings.ToUpper(stringField(input, "order_number", ""))
	issue := stringField(input, "issue_description", "Product defect")
	return entities.ActionResult{
		Success:     true,
		Action:      "repair_initiated",
		ReferenceID: "REPAIR-" + orderNumber,
		Message:     fmt.Sprintf("Repair initiated for %s. Issue: %s", e.productName(orderNumber), issue),
		Details: map[string]any{
			"product":        e.productName(orderNumber),
			"issue":          issue,
			"shipping_label": "Prepaid label sent to customer email",
			"tracking":       "DMREP" + lastN(orderNumber, 6),
			"estimated_time": "2-3 weeks",
			"warranty":       "Covered under lifetime repair warranty",
		},
	}
}

func (e *ActionExecutor) createExchange(input map[string]any) entities.ActionResult {
	orderNumber := strings.ToUpper(stringField(input, "order_number", ""))
	newSize := stringField(input, "new_size", "TBD")
	return entities.ActionResult{
		Success:     true,
		Action:      "exchange_created",
		ReferenceID: "EXC-" + orderNumber,
		Message:     fmt.Sprintf("Exchange created for order %s. New size: %s", orderNumber, newSize),
		Details: map[string]any{
			"product":      e.productName(orderNumber),
			"new_size":     newSize,
			"shipping":     "Expedited 2-3 days",
			"return_label": "Sent to customer email",
		},
	}
}

func (e *ActionExecutor) escalateToHuman(input map[string]any) entities.ActionResult {
	orderNumber := strings.ToUpper(stringField(input, "order_number", "N/A"))
	reason := stringField(input, "reason", "Complex issue")
	priority := stringField(input, "priority", entities.PriorityHigh)

	callback := "Within 24 hours"
	if priority == entities.PriorityHigh || priority == entities.PriorityCritical {
		callback = "Within 2 hours"
	}

	return entities.ActionResult{
		Success:     true,
		Action:      "escalated",
		ReferenceID: "ESC-" + e.nowFn().Format("20060102150405"),
		Message:     fmt.Sprintf("Case escalated to human agent. Priority: %s. Reason: %s", priority, reason),
		Details: map[string]any{
			"customer":    e.customerName(orderNumber),
			"priority":    priority,
			"assigned_to": "Senior Support Team",
			"callback":    callback,
		},
	}
}

func (e *ActionExecutor) bookAppointment(input map[string]any) entities.ActionResult {
	customerName := stringField(input, "customer_name", "Customer")
	store := stringField(input, "store_location", "Nearest store")
	preferredDate := stringField(input, "preferred_date", "Next available")

	return entities.ActionResult{
		Success:     true,
		Action:      "appointment_booked",
		ReferenceID: "APT-" + e.nowFn().Format("200601021504"),
		Message:     fmt.Sprintf("Appointment request received for %s at %s", customerName, store),
		Details: map[string]any{
			"customer":       customerName,
			"store":          store,
			"preferred_date": preferredDate,
			"available_slots": []string{
				"Tomorrow 10:00 AM",
				"Tomorrow 2:00 PM",
				"Day after 11:00 AM",
			},
		},
	}
}

func (e *ActionExecutor) productName(orderNumber string) string {
	if customer, ok := e.store.Get(orderNumber); ok {
		return customer.ProductName
	}
	return "Bootline Boot"
}

func (e *ActionExecutor) customerName(orderNumber string) string {
	if customer, ok := e.store.Get(orderNumber); ok {
		return customer.CustomerName
	}
	return "Customer"
}

func stringField(input map[string]any, key, def string) string {
	if raw, ok := input[key]; ok {
		if value, ok := raw.(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return def
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
