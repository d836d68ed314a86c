// Package notification provides the in-app Notification entity emitted on
// order lifecycle events. Notifications are best-effort: recording one never
// fails the business operation that produced it.
package notification
