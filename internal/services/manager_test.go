package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/j-veylop/costboard/internal/config"
	"github.com/j-veylop/costboard/internal/services/loader"
)

func writeDocs(t *testing.T) (usagePath, fxPath string) {
	t.Helper()
	tmpDir := t.TempDir()
	usagePath = filepath.Join(tmpDir, "usage.json")
	fxPath = filepath.Join(tmpDir, "fx.json")

	usage := `{"asOf": "2026-02-13", "days": [
		{"date": "d1", "total": {"costUsd": 5}, "byModel": {"a": {"costUsd": 5}}},
		{"date": "d2", "total": {"costUsd": 7}, "byModel": {"a": {"costUsd": 3}, "b": {"costUsd": 4}}}
	]}`
	if err := os.WriteFile(usagePath, []byte(usage), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fxPath, []byte(`{"usdTwd": {"spotSelling": 31}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	return usagePath, fxPath
}

func TestNewManager(t *testing.T) {
	usagePath, fxPath := writeDocs(t)
	cfg := &config.Config{UsageSource: usagePath, FxSource: fxPath, FetchTimeout: time.Minute}

	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if mgr.loader == nil {
		t.Fatal("loader should be created")
	}
	if mgr.notify != nil {
		t.Error("notifier should be disabled unless NOTIFY_ON_ERROR is set")
	}

	cfg.NotifyOnError = true
	mgr, _ = NewManager(cfg)
	if mgr.notify == nil {
		t.Error("notifier should be set when NOTIFY_ON_ERROR is set")
	}
}

func TestNewManager_InvalidConfig(t *testing.T) {
	if _, err := NewManager(nil); err == nil {
		t.Error("NewManager(nil) should fail")
	}
	if _, err := NewManager(&config.Config{FxSource: "fx.json"}); err == nil {
		t.Error("NewManager should reject an empty usage source")
	}
}

func TestManager_Refresh(t *testing.T) {
	usagePath, fxPath := writeDocs(t)
	mgr, err := NewManager(&config.Config{UsageSource: usagePath, FxSource: fxPath})
	if err != nil {
		t.Fatal(err)
	}

	r, err := mgr.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if r.Today.USD != "USD $7.0000" || r.Today.TWD != "約 TWD $217.00" {
		t.Errorf("Today = %+v", r.Today)
	}
}

func TestManager_RefreshFailureNotifies(t *testing.T) {
	usagePath, _ := writeDocs(t)
	missing := filepath.Join(t.TempDir(), "missing.json")
	mgr, err := NewManager(&config.Config{UsageSource: usagePath, FxSource: missing})
	if err != nil {
		t.Fatal(err)
	}

	var notified []string
	mgr.notify = func(title, message string) error {
		notified = append(notified, message)
		return errors.New("no notification daemon")
	}

	r, err := mgr.Refresh(context.Background())
	if err == nil {
		t.Fatal("Refresh should fail when a document is missing")
	}
	if r != nil {
		t.Error("no report should be returned on failure")
	}

	var te *loader.TransportError
	if !errors.As(err, &te) {
		t.Errorf("error = %v, want wrapped TransportError", err)
	}
	if len(notified) != 1 || !strings.Contains(notified[0], "missing.json") {
		t.Errorf("notifications = %v", notified)
	}
}

func TestManager_RefreshOverwritesPreviousPass(t *testing.T) {
	usagePath, fxPath := writeDocs(t)
	mgr, _ := NewManager(&config.Config{UsageSource: usagePath, FxSource: fxPath})

	if _, err := mgr.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(usagePath, []byte(`{"days": [{"date": "d3", "total": {"costUsd": 1}}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := mgr.Refresh(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r.Today.USD != "USD $1.0000" || r.DayCount != 1 {
		t.Errorf("second pass = %+v", r.Today)
	}
}
