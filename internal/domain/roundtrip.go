package domain

import (
	"context"
	"fmt"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// RoundTripVerifier checks that converting an index to the other coloring
// structure and back reproduces the original color matrix line for line.
type RoundTripVerifier struct {
	orchestrator Orchestrator
	oracle       Oracle
}

// NewRoundTripVerifier constructs a RoundTripVerifier.
func NewRoundTripVerifier(orchestrator Orchestrator, oracle Oracle) *RoundTripVerifier {
	return &RoundTripVerifier{orchestrator: orchestrator, oracle: oracle}
}

// Verify runs the A, B, A conversion for cfg under namespace. The comparison
// is always exact regardless of any mode configured elsewhere.
func (v *RoundTripVerifier) Verify(ctx context.Context, cfg m.BuildConfiguration, fx Fixtures, namespace string) (m.ComparisonResult, error) {
	pair, err := v.orchestrator.RoundTrip(ctx, cfg, fx, namespace)
	if err != nil {
		return m.ComparisonResult{}, err
	}

	result, err := v.oracle.Compare(ctx, pair.Subject, pair.Reference, m.CompareExact)
	if err != nil {
		return m.ComparisonResult{}, fmt.Errorf("compare round trip of %s: %w", cfg.Key(), err)
	}

	return result, nil
}
