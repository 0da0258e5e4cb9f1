// Package census computes the ward census and builds the per-specialty
// patient rosters shown to staff.
package census

import (
	"context"
	"fmt"

	"github.com/ariebrainware/ward-census/model"
	"github.com/ariebrainware/ward-census/store"
	"golang.org/x/sync/errgroup"
)

// VisitCounter is the slice of the store the aggregator needs.
type VisitCounter interface {
	CountVisits(ctx context.Context, filter store.VisitFilter) (int64, error)
}

// SpecialtyCount is the number of active visits under one specialty.
type SpecialtyCount struct {
	Specialty model.Specialty `json:"specialty"`
	Count     int64           `json:"count"`
}

// Census is the ward-wide active visit count plus a per-specialty breakdown
// in canonical specialty order.
type Census struct {
	TotalActive int64            `json:"total_active"`
	BySpecialty []SpecialtyCount `json:"by_specialty"`
}

type Aggregator struct {
	counter VisitCounter
}

func NewAggregator(counter VisitCounter) *Aggregator {
	return &Aggregator{counter: counter}
}

// ComputeCensus counts active visits. Visits are counted, not distinct
// patients. The total has no specialty filter, so visits filed under an
// unknown specialty count towards it but appear in no breakdown row.
//
// The ten counts run concurrently; the first failure cancels the rest and is
// returned as a single *model.RetrievalError. No partial census is returned.
func (a *Aggregator) ComputeCensus(ctx context.Context) (Census, error) {
	g, gctx := errgroup.WithContext(ctx)

	var total int64
	g.Go(func() error {
		n, err := a.counter.CountVisits(gctx, store.VisitFilter{Status: model.StatusActive})
		if err != nil {
			return &model.RetrievalError{Op: "count active visits", Err: err}
		}
		total = n
		return nil
	})

	counts := make([]SpecialtyCount, len(model.Specialties))
	for i, specialty := range model.Specialties {
		i, specialty := i, specialty
		g.Go(func() error {
			n, err := a.counter.CountVisits(gctx, store.VisitFilter{Specialty: specialty, Status: model.StatusActive})
			if err != nil {
				return &model.RetrievalError{Op: fmt.Sprintf("count active visits for %s", specialty), Err: err}
			}
			counts[i] = SpecialtyCount{Specialty: specialty, Count: n}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Census{}, err
	}
	return Census{TotalActive: total, BySpecialty: counts}, nil
}
