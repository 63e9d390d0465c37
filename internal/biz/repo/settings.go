package repo

import (
	"context"

	"github.com/afklabs/afk-responder/internal/biz/domain"
)

// SettingsRepo persists the single settings record.
type SettingsRepo interface {
	// Load returns the persisted record, or nil when none exists yet.
	Load(ctx context.Context) (*domain.Settings, error)

	// Save overwrites the persisted record as one unit. No partial write
	// is observable by a concurrent Load.
	Save(ctx context.Context, s *domain.Settings) error

	Close() error
}
