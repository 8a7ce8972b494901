package usecases

import "bootline/internal/entities"

// ToolCatalog declares the executor's operations to the model. Names match
// ActionKind values one to one.
func ToolCatalog() []entities.ToolSpec {
	return []entities.ToolSpec{
		{
			Name:        string(ActionLookupOrder),
			Description: "Look up customer information by order number. Use this when a customer provides their order number (format: DM followed by digits, e.g., DM24382608).",
			InputSchema: entities.InputSchema{
				Type: "object",
				Properties: map[string]entities.SchemaProperty{
					"order_number": {Type: "string", Description: "The order number starting with DM"},
				},
				Required: []string{"order_number"},
			},
		},
		{
			Name:        string(ActionProcessRefund),
			Description: "Process a refund for a customer's order. Use this when a customer wants their money back.",
			InputSchema: entities.InputSchema{
				Type: "object",
				Properties: map[string]entities.SchemaProperty{
					"order_number": {Type: "string", Description: "The order number to refund"},
					"reason":       {Type: "string", Description: "Reason for the refund"},
				},
				Required: []string{"order_number", "reason"},
			},
		},
		{
			Name:        string(ActionInitiateRepair),
			Description: "Initiate a repair request under the lifetime repair warranty. Use this when a product is damaged or defective.",
			InputSchema: entities.InputSchema{
				Type: "object",
				Properties: map[string]entities.SchemaProperty{
					"order_number":      {Type: "string", Description: "The order number for the repair"},
					"issue_description": {Type: "string", Description: "Description of what needs to be repaired"},
				},
				Required: []string{"order_number", "issue_description"},
			},
		},
		{
			Name:        string(ActionCreateExchange),
			Description: "Create a size or product exchange. Use this when a customer needs a different size.",
			InputSchema: entities.InputSchema{
				Type: "object",
				Properties: map[string]entities.SchemaProperty{
					"order_number": {Type: "string", Description: "The order number to exchange"},
					"new_size":     {Type: "string", Description: "The new size requested"},
					"reason":       {Type: "string", Description: "Reason for exchange"},
				},
				Required: []string{"order_number", "reason"},
			},
		},
		{
			Name:        string(ActionEscalateToHuman),
			Description: "Escalate the case to a human support agent. Use this for complex issues, very angry customers, or when you cannot resolve the issue.",
			InputSchema: entities.InputSchema{
				Type: "object",
				Properties: map[string]entities.SchemaProperty{
					"order_number": {Type: "string", Description: "The order number if available"},
					"reason":       {Type: "string", Description: "Why this needs human attention"},
					"priority": {
						Type:        "string",
						Enum:        []string{"low", "medium", "high", "critical"},
						Description: "Priority level for escalation",
					},
				},
				Required: []string{"reason", "priority"},
			},
		},
		{
			Name:        string(ActionBookAppointment),
			Description: "Book an in-store appointment for fitting or consultation.",
			InputSchema: entities.InputSchema{
				Type: "object",
				Properties: map[string]entities.SchemaProperty{
					"customer_name":  {Type: "string", Description: "Customer's name"},
					"preferred_date": {Type: "string", Description: "Preferred appointment date"},
					"store_location": {Type: "string", Description: "Preferred store location"},
				},
				Required: []string{"customer_name"},
			},
		},
	}
}
