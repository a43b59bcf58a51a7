package moneybox

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies why a notification was raised.
type NotificationType string

const (
	NotifyAlert    NotificationType = "alert"
	NotifyBill     NotificationType = "bill"
	NotifySecurity NotificationType = "security"
)

// Notification is one entry in the notification feed.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"`
	IsRead  bool             `json:"isRead"`
}

// Notifications is the feed, most recent first. It is never pruned
// automatically; "clear" only marks entries read.
type Notifications struct {
	list []Notification
}

// NewNotifications creates an empty feed.
func NewNotifications() *Notifications {
	return &Notifications{list: make([]Notification, 0)}
}

// Notify prepends a new notification unless one with the same title already
// exists for the same calendar day as now. It reports whether a notification
// was actually created.
func (n *Notifications) Notify(typ NotificationType, title, message string, now time.Time) bool {
	today := DateOf(now)
	for _, existing := range n.list {
		if existing.Title == title && DateOf(existing.Date) == today {
			return false
		}
	}
	n.list = append([]Notification{{
		ID:      uuid.NewString(),
		Type:    typ,
		Title:   title,
		Message: message,
		Date:    now,
	}}, n.list...)
	return true
}

// ClearAll marks every notification read. Nothing is deleted.
func (n *Notifications) ClearAll() {
	for i := range n.list {
		n.list[i].IsRead = true
	}
}

// Unread returns the number of unread notifications.
func (n *Notifications) Unread() int {
	count := 0
	for _, notif := range n.list {
		if !notif.IsRead {
			count++
		}
	}
	return count
}

// List returns the feed, most recent first. The slice is a copy.
func (n *Notifications) List() []Notification {
	return slices.Clone(n.list)
}

// setList replaces the whole feed, for decoding.
func (n *Notifications) setList(list []Notification) {
	n.list = list
}
