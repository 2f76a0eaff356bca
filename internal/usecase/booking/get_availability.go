package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/clinicore/booking-api/internal/domain/booking"
	"github.com/clinicore/booking-api/internal/metrics"
)

// GetAvailability reads the available/booked partition for a date range,
// lazily generating and persisting slots on first access.
type GetAvailability struct {
	repo   domain.Repository
	logger zerolog.Logger
}

func NewGetAvailability(repo domain.Repository, logger zerolog.Logger) *GetAvailability {
	return &GetAvailability{repo: repo, logger: logger}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	count, err := uc.repo.CountSlotsInRange(ctx, in.From, in.To)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		if err := uc.generate(ctx); err != nil {
			return nil, err
		}
	}

	slots, err := uc.repo.ListSlotsInRange(ctx, in.From, in.To)
	if err != nil {
		return nil, err
	}

	av := domain.Partition(slots)
	return &av, nil
}

// generate persists the generator's candidate set. Concurrent callers may
// race here; each duplicate window is skipped at the store and counted,
// never surfaced as an error.
func (uc *GetAvailability) generate(ctx context.Context) error {
	candidates := domain.GenerateSlots(time.Now())
	if len(candidates) == 0 {
		return nil
	}

	inserted, err := uc.repo.InsertSlotsIfAbsent(ctx, candidates)
	if err != nil {
		return err
	}

	metrics.SlotsGenerated.Add(float64(inserted))

	if skipped := len(candidates) - inserted; skipped > 0 {
		metrics.SlotInsertConflicts.Add(float64(skipped))

		uc.logger.Warn().
			Int("candidates", len(candidates)).
			Int("inserted", inserted).
			Int("skipped", skipped).
			Msg("slot generation skipped existing windows")
	} else {
		uc.logger.Info().
			Int("inserted", inserted).
			Msg("slots generated")
	}

	return nil
}
