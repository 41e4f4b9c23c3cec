package app

import (
	"time"

	"github.com/j-veylop/costboard/internal/models"
)

// TickMsg is sent periodically to expire notifications.
type TickMsg struct {
	Time time.Time
}

// ReportLoadedMsg carries the outcome of one render pass. Exactly one of
// Report and Error is set.
type ReportLoadedMsg struct {
	Report *models.Report
	Error  error
}

// RefreshMsg requests a new render pass from outside the program, e.g. on SIGHUP.
type RefreshMsg struct{}

// SourceChangedMsg reports that a watched local document changed.
type SourceChangedMsg struct{}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Message  string
	Type     NotificationType
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}
