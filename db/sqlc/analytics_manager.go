package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps per-peer duel counters. A nil manager is valid and
// records nothing.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) Enabled() bool {
	return a != nil && a.queries != nil
}

func (a *AnalyticsManager) IncrementDuelsPlayedCount(ctx context.Context, peerIp pqtype.Inet) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementDuelsPlayedCount(ctx, peerIp)
}

func (a *AnalyticsManager) IncrementRematchCalledCount(ctx context.Context, peerIp pqtype.Inet) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementRematchCalledCount(ctx, peerIp)
}

func (a *AnalyticsManager) IncrementWinsCount(ctx context.Context, peerIp pqtype.Inet) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementWinsCount(ctx, peerIp)
}

// RecordDuel counts a finished duel against the peer, and a win when won.
func (a *AnalyticsManager) RecordDuel(ctx context.Context, peerIp pqtype.Inet, won bool) error {
	if err := a.IncrementDuelsPlayedCount(ctx, peerIp); err != nil {
		return err
	}
	if won {
		return a.IncrementWinsCount(ctx, peerIp)
	}
	return nil
}

func (a *AnalyticsManager) GetDuelsPlayedCount(ctx context.Context, peerIp pqtype.Inet) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return a.queries.GetDuelsPlayedCount(ctx, peerIp)
}

func (a *AnalyticsManager) GetRematchCalledCount(ctx context.Context, peerIp pqtype.Inet) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return a.queries.GetRematchCalledCount(ctx, peerIp)
}

func (a *AnalyticsManager) GetWinsCount(ctx context.Context, peerIp pqtype.Inet) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return a.queries.GetWinsCount(ctx, peerIp)
}
