// Package main is the entry point for costboard. It loads configuration,
// builds the render service and runs either the TUI or a single plain pass.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/j-veylop/costboard/internal/app"
	"github.com/j-veylop/costboard/internal/config"
	"github.com/j-veylop/costboard/internal/logger"
	"github.com/j-veylop/costboard/internal/models"
	"github.com/j-veylop/costboard/internal/services"
	"github.com/j-veylop/costboard/internal/services/watch"
	"github.com/j-veylop/costboard/internal/ui/tabs/info"
	"github.com/j-veylop/costboard/internal/ui/tabs/overview"
	"github.com/j-veylop/costboard/internal/ui/tabs/share"
	"github.com/j-veylop/costboard/internal/version"
)

// options holds the command-line flags.
type options struct {
	plain    bool
	startTab string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "costboard",
		Short: "API usage cost dashboard",
		Long: `costboard loads a daily usage document and a USD/TWD exchange rate
and shows today, 7 day and 30 day costs, a daily cost chart and the
top models by cost.

Keyboard Shortcuts:
  1-3             Switch between tabs (Overview, Models, Info)
  Tab/Shift+Tab   Navigate between tabs
  Left/Right      Move the daily chart cursor
  Up/Down         Select a model
  r               Reload documents
  ?               Toggle help
  q, Ctrl+C       Quit

Signals:
  SIGHUP          Reload documents

Environment Variables:
  USAGE_SOURCE     Usage document path or URL (default: data/usage_daily.json)
  FX_SOURCE        FX document path or URL (default: data/fx.json)
  FETCH_TIMEOUT    Timeout for one load, e.g. 10s (default: 30s)
  NOTIFY_ON_ERROR  Send a desktop notification when a load fails
  WATCH_FILES      Reload when a local document changes
  LOG_LEVEL        debug, info, warn or error (default: info)
  LOG_FILE         Write logs to this file

Configuration:
  The first .env found is loaded from the current directory,
  ~/.config/costboard/.env, or the parent and grandparent directories.`,
		Version:       version.Info(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print one pass as text and exit")
	cmd.Flags().StringVar(&opts.startTab, "tab", "overview", "tab to open first (overview, models, info)")

	return cmd
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	startTab, ok := app.ParseTabID(opts.startTab)
	if !ok {
		return fmt.Errorf("unknown tab %q", opts.startTab)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	closeLog, err := initLogging(cfg, opts.plain)
	if err != nil {
		return err
	}
	defer closeLog()

	svc, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	if opts.plain {
		return runPlain(ctx, svc, out)
	}
	return runTUI(cfg, svc, startTab)
}

// initLogging keeps the alternate screen clean: in TUI mode logs go to
// LOG_FILE or nowhere.
func initLogging(cfg *config.Config, plain bool) (func(), error) {
	noop := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return noop, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.Init(cfg.LogLevel, f)
		return func() { _ = f.Close() }, nil
	}

	if plain {
		logger.Init(cfg.LogLevel, os.Stderr)
	} else {
		logger.Init(cfg.LogLevel, nil)
	}
	return noop, nil
}

func runTUI(cfg *config.Config, svc *services.Manager, startTab app.TabID) error {
	model := app.NewModel(svc)

	state := model.GetState()
	state.SetSources(app.Sources{
		Usage:   cfg.UsageSource,
		Fx:      cfg.FxSource,
		Timeout: cfg.FetchTimeout,
	})
	model.SetTabs([]app.Tab{
		overview.New(state),
		share.New(state),
		info.New(state, cfg),
	})
	model.SetActiveTab(startTab)

	if cfg.WatchFiles {
		if files := watch.LocalFiles(cfg.UsageSource, cfg.FxSource); len(files) > 0 {
			w, err := watch.New(files, watch.DefaultDebounce)
			if err != nil {
				return fmt.Errorf("failed to watch sources: %w", err)
			}
			defer func() { _ = w.Close() }()
			model.SetWatch(w.Changes())
		} else {
			logger.Warn("WATCH_FILES is set but no source is a local file")
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		for sig := range sigChan {
			msg := signalMsg(sig)
			p.Send(msg)
			if _, quit := msg.(tea.QuitMsg); quit {
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// signalMsg maps SIGHUP to a reload and any other signal to quit.
func signalMsg(sig os.Signal) tea.Msg {
	if sig == syscall.SIGHUP {
		return app.RefreshMsg{}
	}
	return tea.Quit()
}

// runPlain performs one pass and prints it as text.
func runPlain(ctx context.Context, svc *services.Manager, w io.Writer) error {
	report, err := svc.Refresh(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, formatPlain(report))
	return err
}

func formatPlain(r *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", r.Freshness, r.FxLabel)
	for _, c := range r.Cards() {
		fmt.Fprintf(&b, "%-13s %-18s %s", c.Title, c.USD, c.TWD)
		if c.Detail != "" {
			fmt.Fprintf(&b, "  (%s)", c.Detail)
		}
		b.WriteString("\n")
	}

	if len(r.Models) > 0 {
		b.WriteString("\nModels, last 30 days\n")
		for _, s := range r.Models {
			fmt.Fprintf(&b, "  %5.1f%%  %s\n", s.Percent, s.Tooltip)
		}
	}
	return b.String()
}
