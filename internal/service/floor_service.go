package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"freight-backend/internal/model"
	"freight-backend/internal/regulatory"
	"freight-backend/internal/repository"
	ws "freight-backend/internal/websocket"
)

// Outcome statuses for a single record in a recomputation run.
const (
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// maxRunSize bounds one recomputation run; anything beyond waits for the
// next trigger.
const maxRunSize = 500

// RunEntry is one record's immutable outcome within a run.
type RunEntry struct {
	RecordID      string  `json:"record_id"`
	Status        string  `json:"status"`
	Reason        string  `json:"reason,omitempty"`
	ComputedValue *string `json:"computed_value,omitempty"`
}

// RunReport is what the audit/reporting consumer receives after a run.
type RunReport struct {
	Total   int        `json:"total"`
	Updated int        `json:"updated"`
	Failed  int        `json:"failed"`
	Skipped int        `json:"skipped"`
	Entries []RunEntry `json:"entries"`
}

// --- Interface ---

type FloorService interface {
	// Recompute selects freights missing a regulatory floor, computes and
	// persists it per record, and reports every record's outcome. One
	// record's failure never aborts the run; cancellation stops between
	// records and already-persisted updates stand.
	Recompute(ctx context.Context) (RunReport, error)
}

type floorService struct {
	freightRepo repository.FreightRepository
	rateRepo    repository.RateRepository
	auditRepo   repository.AuditRepository
	hub         *ws.Hub
}

func NewFloorService(
	freightRepo repository.FreightRepository,
	rateRepo repository.RateRepository,
	auditRepo repository.AuditRepository,
	hub *ws.Hub,
) FloorService {
	return &floorService{
		freightRepo: freightRepo,
		rateRepo:    rateRepo,
		auditRepo:   auditRepo,
		hub:         hub,
	}
}

// --- Implementation ---

func (s *floorService) Recompute(ctx context.Context) (RunReport, error) {
	rows, err := s.rateRepo.ListAll(ctx)
	if err != nil {
		return RunReport{}, fmt.Errorf("failed to load regulatory rates: %w", err)
	}
	table := regulatory.NewTable(toRegulatoryRates(rows))

	freights, err := s.freightRepo.ListMissingFloor(ctx, maxRunSize)
	if err != nil {
		return RunReport{}, fmt.Errorf("failed to select freights: %w", err)
	}
	if len(freights) > maxRunSize {
		freights = freights[:maxRunSize]
	}

	report := RunReport{Entries: make([]RunEntry, 0, len(freights))}
	for _, freight := range freights {
		if ctx.Err() != nil {
			break
		}

		entry := s.processRecord(ctx, table, freight)
		switch entry.Status {
		case OutcomeUpdated:
			report.Updated++
		case OutcomeFailed:
			report.Failed++
		case OutcomeSkipped:
			report.Skipped++
		}
		report.Entries = append(report.Entries, entry)
		report.Total++
	}

	s.writeRunAudit(ctx, report)
	if s.hub != nil {
		s.hub.Publish("floor_run_report", report)
	}

	return report, nil
}

func (s *floorService) processRecord(ctx context.Context, table *regulatory.Table, freight model.Freight) RunEntry {
	entry := RunEntry{RecordID: freight.ID.String()}

	result, err := regulatory.ComputeFloor(regulatory.FloorRecord{
		CargoTypeCode:          freight.CargoTypeCode,
		DistanceKm:             freight.DistanceKm,
		RequiredAxles:          freight.RequiredAxles,
		HighPerformanceVehicle: freight.HighPerformanceVehicle,
		VehicleOwnership:       freight.VehicleOwnership,
		RequiredTrucks:         freight.RequiredTrucks,
	}, table)

	switch {
	case errors.Is(err, regulatory.ErrMissingCargoType), errors.Is(err, regulatory.ErrMissingDistance):
		entry.Status = OutcomeSkipped
		entry.Reason = err.Error()
		return entry
	case err != nil:
		entry.Status = OutcomeFailed
		entry.Reason = err.Error()
		return entry
	}

	if err := s.freightRepo.UpdateMinimumPrice(ctx, freight.ID, result.Total); err != nil {
		entry.Status = OutcomeFailed
		entry.Reason = fmt.Sprintf("failed to persist floor: %v", err)
		return entry
	}

	value := result.Total.StringFixed(2)
	entry.Status = OutcomeUpdated
	entry.ComputedValue = &value
	entry.Reason = assumptionNotes(result)
	return entry
}

// assumptionNotes flags the approximations baked into an updated floor so
// an auditor can separate precise computations from assumed ones.
func assumptionNotes(result regulatory.FloorResult) string {
	var notes []string
	if result.AxlesDefaulted {
		notes = append(notes, fmt.Sprintf("axles defaulted to %d", regulatory.DefaultAxleCount))
	}
	if result.UsedFallback {
		notes = append(notes, fmt.Sprintf("rate from %s fallback", regulatory.CategoryGeneral))
	}
	return strings.Join(notes, "; ")
}

// Best-effort audit log — the run report is already returned to the caller
func (s *floorService) writeRunAudit(ctx context.Context, report RunReport) {
	details, _ := json.Marshal(report)

	_ = s.auditRepo.Log(ctx, &model.AuditLog{
		Action:     model.ActionRecomputeFloors,
		EntityName: fmt.Sprintf("%d updated / %d failed / %d skipped of %d", report.Updated, report.Failed, report.Skipped, report.Total),
		Details:    string(details),
	})
}
