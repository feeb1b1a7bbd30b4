// Package service wires the insight generator to the dismissal store and
// exposes both over a small JSON HTTP surface.
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ledgerlens/insights/internal/insights"
	"github.com/ledgerlens/insights/internal/model"
	"github.com/ledgerlens/insights/internal/store"
)

// InsightService runs the generation pipeline and applies dismissal filtering
// on its output. The pipeline stays pure; all store access lives here.
type InsightService struct {
	gen   *insights.Generator
	store store.DismissalStore
	log   zerolog.Logger
}

// NewInsightService creates the service.
func NewInsightService(gen *insights.Generator, s store.DismissalStore, log zerolog.Logger) *InsightService {
	return &InsightService{gen: gen, store: s, log: log}
}

// GenerateInsights runs the pipeline over the input snapshot. It never fails:
// empty or insufficient input yields an empty or partial list.
func (s *InsightService) GenerateInsights(ctx context.Context, in insights.Input) []model.Insight {
	out := s.gen.Generate(in)
	s.log.Debug().
		Int("transactions", len(in.Transactions)).
		Int("insights", len(out)).
		Msg("generated insights")
	return out
}

// ActiveInsights returns the pipeline output with dismissed insights removed.
func (s *InsightService) ActiveInsights(ctx context.Context, in insights.Input) []model.Insight {
	dismissed := s.dismissedIDs(ctx)
	all := s.gen.Generate(in)
	active := make([]model.Insight, 0, len(all))
	for _, ins := range all {
		if !dismissed[ins.ID] {
			active = append(active, ins)
		}
	}
	return active
}

// GetInsightCount returns the number of insights whose id has not been
// dismissed.
func (s *InsightService) GetInsightCount(ctx context.Context, in insights.Input) int {
	return s.gen.ActiveCount(in, s.dismissedIDs(ctx))
}

// DismissInsight marks an insight id as dismissed.
func (s *InsightService) DismissInsight(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("insight id is required")
	}
	if err := s.store.Dismiss(ctx, id); err != nil {
		return fmt.Errorf("dismiss insight: %w", err)
	}
	return nil
}

// ClearDismissed removes all dismissals.
func (s *InsightService) ClearDismissed(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear dismissals: %w", err)
	}
	return nil
}

// dismissedIDs reads the dismissed set, degrading to an empty set on store
// failure so the pipeline result can still be served.
func (s *InsightService) dismissedIDs(ctx context.Context) map[string]bool {
	ids, err := s.store.GetDismissedIDs(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("reading dismissed ids failed, treating as empty")
		return map[string]bool{}
	}
	return ids
}
