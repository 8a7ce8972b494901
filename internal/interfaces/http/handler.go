package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bootline/internal/entities"
	"bootline/internal/usecases"
)

// Handler carries the wired services behind the REST surface. agent is nil
// when no model API key is configured; chat then uses the deterministic
// composer path.
type Handler struct {
	kpi        *usecases.KPIService
	records    recordSource
	classifier *usecases.Classifier
	executor   *usecases.ActionExecutor
	composer   *usecases.ResponseComposer
	agent      *usecases.AgentService
	dataSource string
}

// recordSource is the read-side slice of the order store the handlers need.
type recordSource interface {
	Get(orderNumber string) (entities.OrderRecord, bool)
	Count() int
	OrderNumbers() []string
}

func NewHandler(
	records recordSource,
	classifier *usecases.Classifier,
	executor *usecases.ActionExecutor,
	composer *usecases.ResponseComposer,
	agent *usecases.AgentService,
	kpi *usecases.KPIService,
	dataSource string,
) *Handler {
	return &Handler{
		kpi:        kpi,
		records:    records,
		classifier: classifier,
		executor:   executor,
		composer:   composer,
		agent:      agent,
		dataSource: dataSource,
	}
}

// SetupRoutes registers all routes and middleware on the router.
func (h *Handler) SetupRoutes(router *gin.Engine, mw *Middleware) {
	router.Use(CORSMiddleware())
	router.Use(SecurityHeaders())
	router.Use(RequestID())
	router.Use(RequestSizeLimiter(1 << 20))
	router.Use(mw.RateLimitPerClient())

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/customers", h.ListCustomers)
		api.GET("/customer/:order_number", h.GetCustomer)
		api.POST("/classify", h.Classify)
		api.POST("/chat", h.Chat)
		api.POST("/action/:action_type", h.ExecuteAction)
		api.GET("/kpis", h.KPIs)
	}
}

func (h *Handler) Health(c *gin.Context) {
	source := h.dataSource
	if source == "" {
		source = "built-in sample data"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"service":         "bootline-support",
		"records_loaded":  h.records.Count(),
		"data_source":     source,
		"agent_available": h.agent != nil,
	})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":         h.records.Count(),
		"order_numbers": h.records.OrderNumbers(),
	})
}

func (h *Handler) GetCustomer(c *gin.Context) {
	orderNumber := strings.ToUpper(c.Param("order_number"))
	record, ok := h.records.Get(orderNumber)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Order " + orderNumber + " not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"customer": record,
	})
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (h *Handler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Field 'text' is required",
		})
		return
	}
	text := SanitizeString(TruncateString(req.Text, MaxMessageLength))
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"classification": h.classifier.Classify(text),
	})
}

type chatRequest struct {
	Message             string                 `json:"message"`
	OrderNumber         string                 `json:"order_number"`
	ConversationHistory []entities.ChatMessage `json:"conversation_history"`
}

func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Field 'message' is required",
		})
		return
	}

	message := SanitizeString(TruncateString(req.Message, MaxMessageLength))

	// Explicit order_number wins; otherwise scan the message text.
	orderNumber := strings.ToUpper(strings.TrimSpace(req.OrderNumber))
	if orderNumber == "" {
		orderNumber = ExtractOrderNumber(message)
	}

	var customer *entities.OrderRecord
	if orderNumber != "" {
		if record, ok := h.records.Get(orderNumber); ok {
			customer = &record
		}
	}

	classification := h.classifier.Classify(message)

	if h.agent != nil {
		result := h.agent.Run(c.Request.Context(), message, req.ConversationHistory, customer)
		c.JSON(http.StatusOK, gin.H{
			"success":              true,
			"response":             result.Response,
			"customer":             customer,
			"classification":       classification,
			"tool_results":         result.ToolResults,
			"suggestions":          h.composer.Suggestions(customer),
			"requires_escalation":  requiresEscalation(customer, classification),
			"conversation_history": result.History,
		})
		return
	}

	reply := h.composer.Compose(customer, classification)
	slog.Info("composed reply", "issue", classification.IssueType, "has_customer", customer != nil)
	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"response":            reply.Message,
		"customer":            customer,
		"classification":      classification,
		"suggestions":         reply.Suggestions,
		"requires_escalation": requiresEscalation(customer, classification),
	})
}

func requiresEscalation(customer *entities.OrderRecord, classification entities.Classification) bool {
	if customer != nil && customer.EscalationNeeded {
		return true
	}
	return classification.Priority == entities.PriorityCritical
}

func (h *Handler) ExecuteAction(c *gin.Context) {
	actionType := c.Param("action_type")
	kind, err := mapActionType(actionType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Unknown action type: " + actionType,
		})
		return
	}

	input := make(map[string]any)
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid JSON body",
			})
			return
		}
	}

	result := h.executor.Execute(string(kind), input)
	slog.Info("action executed", "action", kind, "success", result.Success)
	c.JSON(http.StatusOK, gin.H{
		"success": result.Success,
		"result":  result,
	})
}

// mapActionType translates the short REST path segment to its registry name.
func mapActionType(actionType string) (usecases.ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(actionType)) {
	case "lookup":
		return usecases.ActionLookupOrder, nil
	case "refund":
		return usecases.ActionProcessRefund, nil
	case "repair":
		return usecases.ActionInitiateRepair, nil
	case "exchange":
		return usecases.ActionCreateExchange, nil
	case "escalate":
		return usecases.ActionEscalateToHuman, nil
	case "appointment":
		return usecases.ActionBookAppointment, nil
	}
	return usecases.ParseActionKind(actionType)
}

func (h *Handler) KPIs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"kpis":    h.kpi.Report(),
	})
}
