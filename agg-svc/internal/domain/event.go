package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventItemStatusChanged  = "item_status_changed"

	StatusCompleted = "completed"
)

// OrderEvent is the message kitchen-svc publishes on the order events topic.
type OrderEvent struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OrderID    string      `json:"order_id"`
	LocationID string      `json:"location_id,omitempty"`
	ItemID     string      `json:"item_id,omitempty"`
	Status     string      `json:"status"`
	Items      []EventItem `json:"items,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Qty        int    `json:"qty"`
}

// Day is the UTC calendar day the event counts towards.
func (e OrderEvent) Day(now time.Time) string {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = now
	}
	return ts.UTC().Format("2006-01-02")
}
