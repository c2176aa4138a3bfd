// Package refdata ships the reference nexus rules and state tax rates the
// engines depend on, plus the seeder that loads them.
package refdata

import (
	"context"
	"fmt"

	"github.com/nexusradar/nexusradar-api/internal/db"
	"github.com/nexusradar/nexusradar-api/internal/logger"
	"github.com/nexusradar/nexusradar-api/internal/services"
	"go.uber.org/zap"
)

// Seed upserts all reference nexus rules and state tax configurations.
// Safe to run repeatedly.
func Seed(ctx context.Context, queries db.Querier) error {
	for _, rule := range NexusRules {
		if _, err := queries.UpsertNexusRule(ctx, rule.toParams(services.StateName(rule.state))); err != nil {
			return fmt.Errorf("failed to seed nexus rule for %s: %w", rule.state, err)
		}
	}
	logger.Log.Info("Seeded nexus rules", zap.Int("count", len(NexusRules)))

	for _, config := range StateTaxConfigs {
		if _, err := queries.UpsertStateTaxConfig(ctx, config.toParams()); err != nil {
			return fmt.Errorf("failed to seed state tax config for %s: %w", config.state, err)
		}
	}
	logger.Log.Info("Seeded state tax configurations", zap.Int("count", len(StateTaxConfigs)))
	return nil
}
