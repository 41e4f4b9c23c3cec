package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/costboard/internal/models"
)

const (
	// TickInterval is how often expired notifications are swept.
	TickInterval = 2 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// DefaultNotificationDuration is for warnings the user should read.
	DefaultNotificationDuration = 5 * time.Second

	// LongNotificationDuration is for failed passes.
	LongNotificationDuration = 10 * time.Second
)

// Refresher runs one render pass.
type Refresher interface {
	Refresh(ctx context.Context) (*models.Report, error)
}

func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// loadReportCmd runs a pass off the UI goroutine and reports the outcome.
func loadReportCmd(r Refresher) tea.Cmd {
	return func() tea.Msg {
		report, err := r.Refresh(context.Background())
		return ReportLoadedMsg{Report: report, Error: err}
	}
}

// waitForChangeCmd blocks until the next source change. A closed channel
// ends the subscription.
func waitForChangeCmd(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return SourceChangedMsg{}
	}
}

func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

func notifySuccessCmd(message string) tea.Cmd {
	return notifyCmd(NotificationSuccess, message, QuickNotificationDuration)
}

func notifyErrorCmd(message string) tea.Cmd {
	return notifyCmd(NotificationError, message, LongNotificationDuration)
}

func notifyWarningCmd(message string) tea.Cmd {
	return notifyCmd(NotificationWarning, message, DefaultNotificationDuration)
}

func notifyInfoCmd(message string) tea.Cmd {
	return notifyCmd(NotificationInfo, message, QuickNotificationDuration)
}

func notifyCmd(t NotificationType, message string, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{Type: t, Message: message, Duration: d}
	}
}
