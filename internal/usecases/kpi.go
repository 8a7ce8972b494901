package usecases

import (
	"math"

	"bootline/internal/entities"
	"bootline/internal/repository"
)

// KPIReport is a read-side aggregate over the order dataset. All figures are
// true counts derived from the loaded records.
type KPIReport struct {
	TotalRecords       int            `json:"total_records"`
	AutoResolved       int            `json:"auto_resolved"`
	AutoResolutionRate float64        `json:"auto_resolution_rate"`
	EscalationCount    int            `json:"escalation_count"`
	EscalationRate     float64        `json:"escalation_rate"`
	CriticalCount      int            `json:"critical"`
	HighPriorityCount  int            `json:"high_priority"`
	ByCategory         map[string]int `json:"by_category"`
}

// KPIService computes dashboard aggregates from the Record Store.
type KPIService struct {
	store *repository.OrderStore
}

func NewKPIService(store *repository.OrderStore) *KPIService {
	return &KPIService{store: store}
}

func (s *KPIService) Report() KPIReport {
	records := s.store.Records()
	report := KPIReport{
		TotalRecords: len(records),
		ByCategory:   make(map[string]int),
	}
	if len(records) == 0 {
		return report
	}

	for _, rec := range records {
		if rec.EscalationNeeded {
			report.EscalationCount++
		}
		switch rec.PriorityLevel {
		case entities.PriorityCritical:
			report.CriticalCount++
		case entities.PriorityHigh:
			report.HighPriorityCount++
		}
		report.ByCategory[rec.IssueCategory]++
	}

	report.AutoResolved = report.TotalRecords - report.EscalationCount
	report.AutoResolutionRate = percent(report.AutoResolved, report.TotalRecords)
	report.EscalationRate = percent(report.EscalationCount, report.TotalRecords)
	return report
}

func percent(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}
