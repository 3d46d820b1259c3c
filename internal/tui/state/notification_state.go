package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (export saved, project toggled)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warnings (disabled project, nothing to copy)
	LevelWarning
	// LevelError represents the generic per-view failure messages
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages notification display state.
// The TUI shows one generic message per failure; details only go to the log.
type NotificationState struct {
	notifications []Notification
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
	}
}

// Add adds a new notification. An identical message already shown is not repeated.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	for _, n := range s.notifications {
		if n.Level == level && n.Message == message {
			return
		}
	}
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, notification := range s.notifications {
		view := renderFunc(notification)
		width := lipgloss.Width(view)
		height := lipgloss.Height(view)

		if row+height >= s.windowHeight {
			break
		}

		col := max(s.windowWidth-width-1, 0)
		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row))
		row += height + 1
	}

	return layers
}
