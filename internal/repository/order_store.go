package repository

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"bootline/internal/entities"
)

// OrderStore is the in-memory order dataset. It is populated once at startup
// and read-only afterwards, so concurrent readers need no locking.
type OrderStore struct {
	records map[string]entities.OrderRecord
}

// NewOrderStore builds a store from the given records, normalizing keys to
// uppercase order numbers.
func NewOrderStore(records []entities.OrderRecord) *OrderStore {
	byOrder := make(map[string]entities.OrderRecord, len(records))
	for _, rec := range records {
		key := strings.ToUpper(strings.TrimSpace(rec.OrderNumber))
		if key == "" {
			continue
		}
		rec.OrderNumber = key
		byOrder[key] = rec
	}
	return &OrderStore{records: byOrder}
}

// LoadOrders tries each candidate CSV path in order and loads the first one
// that is readable. When no source is found it falls back to the built-in
// sample records and returns "" as the source path.
func LoadOrders(paths []string) (*OrderStore, string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		store, err := loadCSV(path)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("failed to load order CSV", "path", path, "error", err)
			}
			continue
		}
		slog.Info("loaded order records", "path", path, "count", store.Count())
		return store, path
	}
	slog.Warn("no order CSV found, using built-in sample records")
	return NewOrderStore(sampleRecords()), ""
}

func loadCSV(path string) (*OrderStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV %s has no data rows", path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	records := make([]entities.OrderRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		field := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		orderNumber := strings.ToUpper(field("order_number"))
		if orderNumber == "" {
			continue
		}

		reviewText := field("review_text_full")
		if reviewText == "" {
			reviewText = field("review_text")
		}

		records = append(records, entities.OrderRecord{
			OrderNumber:         orderNumber,
			StarRating:          parseRating(field("star_rating")),
			CustomerName:        fallback(field("customer_name"), "Customer"),
			ReviewTitle:         field("review_title"),
			ReviewText:          reviewText,
			ReviewDate:          field("review_date"),
			ProductName:         fallback(field("product_name"), "Bootline Boot"),
			ProductURL:          field("product_url"),
			IssueCategory:       fallback(field("issue_category"), "general"),
			ActionRequired:      fallback(field("action_required"), "knowledge_base"),
			PriorityLevel:       fallback(field("priority_level"), entities.PriorityLow),
			SuggestedResolution: fallback(field("suggested_resolution"), "Provide assistance"),
			IntegrationSystem:   fallback(field("integration_system"), "rag_knowledge"),
			EscalationNeeded:    parseBool(field("escalation_needed")),
			Sentiment:           fallback(field("sentiment"), entities.SentimentNeutral),
		})
	}
	return NewOrderStore(records), nil
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func parseRating(raw string) int {
	rating, err := strconv.Atoi(raw)
	if err != nil || rating < 1 || rating > 5 {
		return 1
	}
	return rating
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// Get looks up a record by order number; lookup is case-insensitive.
func (s *OrderStore) Get(orderNumber string) (entities.OrderRecord, bool) {
	rec, ok := s.records[strings.ToUpper(strings.TrimSpace(orderNumber))]
	return rec, ok
}

// Count returns the number of loaded records.
func (s *OrderStore) Count() int {
	return len(s.records)
}

// OrderNumbers returns all known order numbers, sorted.
func (s *OrderStore) OrderNumbers() []string {
	numbers := make([]string, 0, len(s.records))
	for key := range s.records {
		numbers = append(numbers, key)
	}
	sort.Strings(numbers)
	return numbers
}

// SampleOrderNumbers returns up to n known order numbers to help a caller
// retry a failed lookup with a valid id.
func (s *OrderStore) SampleOrderNumbers(n int) []string {
	numbers := s.OrderNumbers()
	if len(numbers) > n {
		numbers = numbers[:n]
	}
	return numbers
}

// Records returns a copy of all records for read-side aggregation.
func (s *OrderStore) Records() []entities.OrderRecord {
	records := make([]entities.OrderRecord, 0, len(s.records))
	for _, key := range s.OrderNumbers() {
		records = append(records, s.records[key])
	}
	return records
}
