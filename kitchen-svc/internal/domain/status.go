package domain

type OrderStatus string

const (
	OrderOpen       OrderStatus = "open"
	OrderInProgress OrderStatus = "in_progress"
	OrderReady      OrderStatus = "ready"
	OrderServed     OrderStatus = "served"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{OrderOpen, OrderInProgress, OrderReady, OrderServed, OrderCompleted, OrderCancelled}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range orderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// StatusSource records which write path last set an order's status.
type StatusSource string

const (
	StatusDerived  StatusSource = "derived"
	StatusOverride StatusSource = "override"
)

type ItemStatus string

const (
	ItemQueued    ItemStatus = "queued"
	ItemFiring    ItemStatus = "firing"
	ItemPrepping  ItemStatus = "prepping"
	ItemReady     ItemStatus = "ready"
	ItemPassed    ItemStatus = "passed"
	ItemServed    ItemStatus = "served"
	ItemCompleted ItemStatus = "completed"
	ItemCancelled ItemStatus = "cancelled"
)

// Stamps says which item timestamps a transition writes. Start is only
// applied when started_at is still empty; Finish always re-stamps.
type Stamps struct {
	Start  bool
	Finish bool
}

// ItemStatusSet is one named item-status vocabulary together with its
// timestamp policy. The two sets below are deliberately kept apart.
type ItemStatusSet struct {
	Name    string
	Members []ItemStatus
	Start   []ItemStatus
	Finish  []ItemStatus
}

var KitchenDisplayStatuses = ItemStatusSet{
	Name:    "kitchen-display",
	Members: []ItemStatus{ItemQueued, ItemPrepping, ItemReady, ItemServed, ItemCompleted, ItemCancelled},
	Start:   []ItemStatus{ItemPrepping},
	Finish:  []ItemStatus{ItemReady, ItemServed, ItemCompleted},
}

var StationFlowStatuses = ItemStatusSet{
	Name:    "station-flow",
	Members: []ItemStatus{ItemQueued, ItemFiring, ItemPrepping, ItemPassed, ItemServed, ItemCancelled},
	Start:   []ItemStatus{ItemFiring, ItemPrepping},
	Finish:  []ItemStatus{ItemServed, ItemCancelled, ItemPassed},
}

func (s ItemStatusSet) Parse(raw string) (ItemStatus, bool) {
	st := ItemStatus(raw)
	return st, containsStatus(s.Members, st)
}

func (s ItemStatusSet) Stamps(st ItemStatus) Stamps {
	return Stamps{
		Start:  containsStatus(s.Start, st),
		Finish: containsStatus(s.Finish, st),
	}
}

func containsStatus(list []ItemStatus, st ItemStatus) bool {
	for _, candidate := range list {
		if candidate == st {
			return true
		}
	}
	return false
}

// RollupOrderStatus derives an order status from its items. First match wins.
func RollupOrderStatus(items []ItemStatus) OrderStatus {
	if len(items) == 0 {
		return OrderOpen
	}

	allCompleted, allServed, allDone, anyActive := true, true, true, false
	for _, st := range items {
		if st != ItemCompleted {
			allCompleted = false
		}
		if st != ItemServed {
			allServed = false
		}
		switch st {
		case ItemReady, ItemServed, ItemCompleted:
		default:
			allDone = false
		}
		switch st {
		case ItemPrepping, ItemReady, ItemServed:
			anyActive = true
		}
	}

	switch {
	case allCompleted:
		return OrderCompleted
	case allServed:
		return OrderServed
	case allDone:
		return OrderReady
	case anyActive:
		return OrderInProgress
	default:
		return OrderOpen
	}
}

type TicketStatus string

const (
	TicketQueued    TicketStatus = "queued"
	TicketFiring    TicketStatus = "firing"
	TicketPrepping  TicketStatus = "prepping"
	TicketReady     TicketStatus = "ready"
	TicketPassed    TicketStatus = "passed"
	TicketCancelled TicketStatus = "cancelled"
)

// TicketStatusFor maps a station-flow item status onto its kitchen ticket.
// A served plate leaves the station as ready.
func TicketStatusFor(st ItemStatus) TicketStatus {
	if st == ItemServed {
		return TicketReady
	}
	return TicketStatus(st)
}

func TicketStamps(st TicketStatus) Stamps {
	return Stamps{
		Start:  st == TicketFiring || st == TicketPrepping,
		Finish: st == TicketReady || st == TicketPassed || st == TicketCancelled,
	}
}
