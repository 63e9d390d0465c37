package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/afklabs/afk-responder/internal/biz/domain"
	"github.com/afklabs/afk-responder/internal/biz/repo"
)

// SettingsManager owns the settings record. Both planes read and mutate
// through it, so every mutation is serialized under one lock and the
// whole-record read-modify-write race of naive callers cannot lose updates.
//
// The in-memory copy is authoritative: a persistence failure is logged and
// the process keeps running on memory for its lifetime.
type SettingsManager struct {
	repo   repo.SettingsRepo
	logger *zap.Logger

	mu       sync.Mutex
	settings *domain.Settings
}

// NewSettingsManager creates a manager over the given repository.
func NewSettingsManager(settingsRepo repo.SettingsRepo, logger *zap.Logger) *SettingsManager {
	return &SettingsManager{
		repo:   settingsRepo,
		logger: logger.Named("settings"),
	}
}

// Load reads the persisted record, or installs a deep copy of the defaults
// and persists it immediately so subsequent reads are stable. A read error
// is fatal to the caller; this runs once at startup.
func (m *SettingsManager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if s == nil {
		s = domain.DefaultSettings()
		if err := m.repo.Save(ctx, s); err != nil {
			return fmt.Errorf("persist default settings: %w", err)
		}
		m.logger.Info("no persisted settings, defaults installed")
	}
	if s.Ledger == nil {
		s.Ledger = make(map[string]domain.Interaction)
	}
	m.settings = s
	return nil
}

// Snapshot returns a deep copy of the current settings for race-free reads.
func (m *SettingsManager) Snapshot() domain.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.settings.Clone()
}

// Update applies mutate to the authoritative copy under the lock, enforces
// the clear-on-off ledger invariant, persists a snapshot, and returns the
// post-mutation state. Persistence failures are logged, not propagated.
func (m *SettingsManager) Update(ctx context.Context, mutate func(*domain.Settings)) domain.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()

	wasListening := m.settings.IsListening
	mutate(m.settings)
	if wasListening && !m.settings.IsListening {
		m.settings.ClearLedger()
	}

	snapshot := m.settings.Clone()
	if err := m.repo.Save(ctx, snapshot); err != nil {
		m.logger.Error("persist settings failed, in-memory state stays authoritative", zap.Error(err))
	}
	return *snapshot
}
