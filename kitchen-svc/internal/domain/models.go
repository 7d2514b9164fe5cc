package domain

import "time"

type OrderSource string

const (
	SourceDineIn   OrderSource = "dine_in"
	SourceQR       OrderSource = "qr"
	SourceKiosk    OrderSource = "kiosk"
	SourcePhone    OrderSource = "phone"
	SourceDelivery OrderSource = "delivery"
	SourcePickup   OrderSource = "pickup"
	SourcePOS      OrderSource = "pos"
)

var orderSources = []OrderSource{SourceDineIn, SourceQR, SourceKiosk, SourcePhone, SourceDelivery, SourcePickup, SourcePOS}

func (s OrderSource) Valid() bool {
	for _, known := range orderSources {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	ID           UUID         `json:"id"`
	LocationID   UUID         `json:"location_id"`
	Source       OrderSource  `json:"source"`
	TableNumber  *string      `json:"table_number"`
	CustomerName *string      `json:"customer_name"`
	PlacedAt     time.Time    `json:"placed_at"`
	PromisedAt   *time.Time   `json:"promised_at"`
	StartedAt    *time.Time   `json:"started_at"`
	CompletedAt  *time.Time   `json:"completed_at"`
	Status       OrderStatus  `json:"status"`
	StatusSource StatusSource `json:"status_source"`
	Items        []OrderItem  `json:"order_items,omitempty"`
}

type OrderItem struct {
	ID                   UUID        `json:"id"`
	OrderID              UUID        `json:"order_id"`
	MenuItemID           UUID        `json:"menu_item_id"`
	Qty                  int         `json:"qty"`
	Notes                *string     `json:"notes"`
	Status               ItemStatus  `json:"status"`
	PredictedPrepMinutes *float64    `json:"predicted_prep_minutes"`
	ActualPrepSeconds    *int        `json:"actual_prep_seconds"`
	CreatedAt            time.Time   `json:"created_at"`
	StartedAt            *time.Time  `json:"started_at"`
	CompletedAt          *time.Time  `json:"completed_at"`
	MenuItem             *MenuItem   `json:"menu_item,omitempty"`
	Tickets              []KdsTicket `json:"kds_tickets,omitempty"`
}

type NewOrder struct {
	LocationID   string         `json:"location_id"`
	Source       OrderSource    `json:"source"`
	TableNumber  *string        `json:"table_number"`
	CustomerName *string        `json:"customer_name"`
	Items        []NewOrderItem `json:"items"`
}

type NewOrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Qty        int     `json:"qty"`
	Notes      *string `json:"notes"`
}

type CreatedOrder struct {
	Order      Order       `json:"order"`
	OrderItems []OrderItem `json:"order_items"`
}

type OrderFilter struct {
	Statuses   []OrderStatus
	LocationID UUID
	Limit      int
}

type KdsTicket struct {
	ID            UUID         `json:"id"`
	OrderItemID   UUID         `json:"order_item_id"`
	StationID     UUID         `json:"station_id"`
	Sequence      int          `json:"sequence"`
	Status        TicketStatus `json:"status"`
	PriorityScore *float64     `json:"priority_score"`
	SLAMinutes    *int         `json:"sla_minutes"`
	EnqueuedAt    time.Time    `json:"enqueued_at"`
	StartedAt     *time.Time   `json:"started_at"`
	CompletedAt   *time.Time   `json:"completed_at"`
}

// StationRoute is the first kitchen station a menu item is routed to.
type StationRoute struct {
	StationID UUID
	Sequence  int
}

type MenuItem struct {
	ID             UUID      `json:"id"`
	SKU            string    `json:"sku"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	IsActive       bool      `json:"is_active"`
	AvgPrepMinutes *float64  `json:"avg_prep_minutes"`
	ImagePath      string    `json:"image_path"`
	CreatedAt      time.Time `json:"created_at"`
}

type MenuFilter struct {
	Category string
	Active   *bool
}

type Station struct {
	ID         UUID         `json:"id"`
	LocationID UUID         `json:"location_id"`
	Name       string       `json:"name"`
	Kind       string       `json:"kind"`
	IsActive   bool         `json:"is_active"`
	SLA        []StationSLA `json:"station_sla"`
}

type StationSLA struct {
	ID                UUID   `json:"id"`
	StationID         UUID   `json:"station_id"`
	Daypart           string `json:"daypart"`
	TargetPrepMinutes int    `json:"target_prep_minutes"`
	AlertAfterMinutes int    `json:"alert_after_minutes"`
}

type StationFilter struct {
	LocationID UUID
	Kind       string
	Active     *bool
}

type Section struct {
	ID          LegacyID      `json:"sectionid"`
	Name        string        `json:"sectionname"`
	MaxCapacity int           `json:"max_capacity"`
	Color       *SectionColor `json:"color,omitempty"`
}

type SectionColor struct {
	BgStart string `json:"bgStart"`
	BgEnd   string `json:"bgEnd"`
	Border  string `json:"border"`
}

type MenuItemSection struct {
	ItemID   UUID     `json:"itemid"`
	ItemName string   `json:"itemname"`
	Section  *Section `json:"section"`
}

// OrderEvent is published on the order events topic.
type OrderEvent struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OrderID    UUID        `json:"order_id"`
	LocationID UUID        `json:"location_id,omitempty"`
	ItemID     UUID        `json:"item_id,omitempty"`
	Status     string      `json:"status"`
	Items      []EventItem `json:"items,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

type EventItem struct {
	MenuItemID UUID `json:"menu_item_id"`
	Qty        int  `json:"qty"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventItemStatusChanged  = "item_status_changed"
)
