package migrate

import (
	"context"
	"fmt"

	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/db"
	"github.com/chucksbakes/chucks-bakes-backend/pkg/logger"
)

// MaybeRunDev auto-migrates the given models when the flag is set. Production
// schemas are managed out of band; this only exists for dev and sqlite runs.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client, models ...any) error {
	if cfg == nil || client == nil {
		return nil
	}
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	if err := client.DB().WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}
	if logg != nil {
		logg.Info(ctx, "auto-migration complete")
	}
	return nil
}
