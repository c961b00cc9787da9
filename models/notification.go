package models

// NotificationLevel tells the presentation layer how to style a notification.
type NotificationLevel int

const (
	NotifySuccess NotificationLevel = iota
	NotifyError
)

// Notification is a short operator-facing message (a toast).
type Notification struct {
	Level   NotificationLevel
	Message string
}

// Success builds a success notification.
func Success(msg string) Notification {
	return Notification{Level: NotifySuccess, Message: msg}
}

// Failure builds an error notification.
func Failure(msg string) Notification {
	return Notification{Level: NotifyError, Message: msg}
}
