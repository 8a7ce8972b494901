package repository

import "bootline/internal/entities"

// sampleRecords is the built-in fallback dataset used when no CSV source is
// found, so the service still demos end to end.
func sampleRecords() []entities.OrderRecord {
	return []entities.OrderRecord{
		{
			OrderNumber:         "DM24210432",
			StarRating:          2,
			CustomerName:        "Teresa Q.",
			ReviewTitle:         "THEY LOOK GREAT BUT ARE SO PAINFUL",
			ReviewText:          "Ordered my regular size 8 but these boots are extremely tight. After 3 weeks of trying to break them in, still can't wear them for more than an hour. Very disappointed for $200 boots. Need to return but past the window. Please help.",
			ReviewDate:          "12/10/25",
			ProductName:         "1460 Smooth Leather Boot",
			IssueCategory:       "sizing",
			ActionRequired:      "exchange",
			PriorityLevel:       entities.PriorityHigh,
			SuggestedResolution: "Free exchange for correct size with expedited shipping",
			IntegrationSystem:   "pos_inventory",
			EscalationNeeded:    false,
			Sentiment:           entities.SentimentNegative,
		},
		{
			OrderNumber:         "DM24165432",
			StarRating:          1,
			CustomerName:        "Marcus T.",
			ReviewTitle:         "SOLE SEPARATED AFTER 2 MONTHS",
			ReviewText:          "The sole completely detached from the boot. I barely wore them! This is unacceptable quality for the price. I want a full refund or replacement immediately.",
			ReviewDate:          "12/12/25",
			ProductName:         "2976 Chelsea Boot",
			IssueCategory:       "repair",
			ActionRequired:      "repair",
			PriorityLevel:       entities.PriorityCritical,
			SuggestedResolution: "Initiate lifetime repair service + expedited replacement",
			IntegrationSystem:   "repair_flow",
			EscalationNeeded:    true,
			Sentiment:           entities.SentimentVeryNegative,
		},
		{
			OrderNumber:         "DM24276543",
			StarRating:          1,
			CustomerName:        "Jennifer M.",
			ReviewTitle:         "WORST CUSTOMER SERVICE EXPERIENCE",
			ReviewText:          "Ordered boots 3 weeks ago, still not delivered. Customer service won't respond to emails or calls. Completely unacceptable. Want immediate refund.",
			ReviewDate:          "12/18/25",
			ProductName:         "2976 Chelsea Boot",
			IssueCategory:       "customer_service",
			ActionRequired:      "escalate",
			PriorityLevel:       entities.PriorityCritical,
			SuggestedResolution: "Immediate manager callback + service recovery",
			IntegrationSystem:   "zendesk_escalation",
			EscalationNeeded:    true,
			Sentiment:           entities.SentimentVeryNegative,
		},
		{
			OrderNumber:         "DM24398765",
			StarRating:          3,
			CustomerName:        "Sarah K.",
			ReviewTitle:         "Want to try before buying",
			ReviewText:          "Interested in the platform boots but unsure about sizing. Would like to try them on in store before ordering.",
			ReviewDate:          "12/15/25",
			ProductName:         "Jadon 8-Eye Boot",
			IssueCategory:       "appointment",
			ActionRequired:      "appointment",
			PriorityLevel:       entities.PriorityLow,
			SuggestedResolution: "Book in-store fitting appointment with specialist",
			IntegrationSystem:   "pos_booking",
			EscalationNeeded:    false,
			Sentiment:           entities.SentimentNeutral,
		},
		{
			OrderNumber:         "DM24232109",
			StarRating:          2,
			CustomerName:        "Anyelic R.",
			ReviewTitle:         "Shipping disaster",
			ReviewText:          "Package arrived damaged and boots were scuffed. Paid for express shipping but took 2 weeks. Want refund for shipping at minimum.",
			ReviewDate:          "12/20/25",
			ProductName:         "1461 Oxford",
			IssueCategory:       "refund",
			ActionRequired:      "refund",
			PriorityLevel:       entities.PriorityHigh,
			SuggestedResolution: "Full shipping refund + 15% discount on next order",
			IntegrationSystem:   "shopify_returns",
			EscalationNeeded:    false,
			Sentiment:           entities.SentimentNegative,
		},
	}
}
