package booking

import (
	"context"
	"time"

	domain "github.com/clinicore/booking-api/internal/domain/booking"
	"github.com/clinicore/booking-api/internal/metrics"
)

// InitializeSlots force-runs the generator for the coming horizon.
// Exposed to administrators; harmless to repeat since existing windows
// are skipped.
type InitializeSlots struct {
	repo domain.Repository
}

func NewInitializeSlots(repo domain.Repository) *InitializeSlots {
	return &InitializeSlots{repo: repo}
}

type InitializeSlotsResult struct {
	Candidates int
	Inserted   int
}

func (uc *InitializeSlots) Execute(ctx context.Context) (*InitializeSlotsResult, error) {
	candidates := domain.GenerateSlots(time.Now())

	inserted := 0
	if len(candidates) > 0 {
		n, err := uc.repo.InsertSlotsIfAbsent(ctx, candidates)
		if err != nil {
			return nil, err
		}
		inserted = n
	}

	metrics.SlotsGenerated.Add(float64(inserted))
	if skipped := len(candidates) - inserted; skipped > 0 {
		metrics.SlotInsertConflicts.Add(float64(skipped))
	}

	return &InitializeSlotsResult{
		Candidates: len(candidates),
		Inserted:   inserted,
	}, nil
}
