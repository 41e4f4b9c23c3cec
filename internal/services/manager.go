// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/google/uuid"

	"github.com/j-veylop/costboard/internal/config"
	"github.com/j-veylop/costboard/internal/logger"
	"github.com/j-veylop/costboard/internal/models"
	"github.com/j-veylop/costboard/internal/services/loader"
	"github.com/j-veylop/costboard/internal/services/report"
)

// NotifyFunc raises a desktop notification.
type NotifyFunc func(title, message string) error

// Manager runs render passes: load both documents, then build the report.
// It keeps nothing between passes.
type Manager struct {
	loader *loader.Loader
	notify NotifyFunc
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loaderConfig := loader.DefaultConfig()
	loaderConfig.UsageSource = cfg.UsageSource
	loaderConfig.FxSource = cfg.FxSource
	loaderConfig.Timeout = cfg.FetchTimeout

	m := &Manager{loader: loader.New(loaderConfig)}
	if cfg.NotifyOnError {
		m.notify = func(title, message string) error {
			return beeep.Notify(title, message, "")
		}
	}
	return m, nil
}

// Refresh runs one render pass. A load failure aborts the pass; nothing is
// partially built.
func (m *Manager) Refresh(ctx context.Context) (*models.Report, error) {
	pass := uuid.NewString()
	logger.Debug("render pass started", "pass", pass)

	usage, fx, err := m.loader.LoadAll(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load documents: %w", err)
		logger.Error("render pass failed", "pass", pass, "error", err)
		m.notifyFailure(err)
		return nil, err
	}

	r := report.Build(usage, fx)
	logger.Info("render pass complete", "pass", pass, "days", r.DayCount, "models", len(r.Models))
	return r, nil
}

func (m *Manager) notifyFailure(err error) {
	if m.notify == nil {
		return
	}
	if nerr := m.notify("costboard: refresh failed", err.Error()); nerr != nil {
		logger.Warn("failed to send notification", "error", nerr)
	}
}
