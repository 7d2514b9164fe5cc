package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService struct {
	repo      OrderRepository
	stock     StockDeductor
	events    EventPublisher
	guard     SubmissionGuard
	qrEncoder QRGenerator
	logger    *zap.Logger
}

func NewOrderService(repo OrderRepository, stock StockDeductor, events EventPublisher, guard SubmissionGuard, qr QRGenerator, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		repo:      repo,
		stock:     stock,
		events:    events,
		guard:     guard,
		qrEncoder: qr,
		logger:    logger,
	}
}

func validateNewOrder(req domain.NewOrder) error {
	if len(req.Items) == 0 {
		return badRequest("Order must contain at least one item")
	}
	if req.Source == "" {
		return badRequest("Missing required fields")
	}
	if !req.Source.Valid() {
		return badRequest(fmt.Sprintf("Invalid order source: %s", req.Source))
	}
	for _, item := range req.Items {
		if !domain.IsUUID(item.MenuItemID) {
			return badRequest(fmt.Sprintf("Invalid menu_item_id: %q", item.MenuItemID))
		}
		if item.Qty < 1 {
			return badRequest(fmt.Sprintf("Invalid qty for menu item %s", item.MenuItemID))
		}
	}
	return nil
}

func (s *OrderService) resolveLocation(ctx context.Context, raw string) (domain.UUID, error) {
	if id, ok := domain.ParseUUID(raw); ok {
		return id, nil
	}

	id, err := s.repo.FirstLocationID(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return "", ErrNoLocations
	}
	if err != nil {
		return "", fmt.Errorf("lookup default location: %w", err)
	}
	return id, nil
}

func (s *OrderService) Create(ctx context.Context, req domain.NewOrder, idempotencyKey string) (*domain.CreatedOrder, error) {
	if err := validateNewOrder(req); err != nil {
		return nil, err
	}

	locationID, err := s.resolveLocation(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}

	guarded := false
	if idempotencyKey != "" && s.guard != nil {
		seen, err := s.guard.Seen(ctx, idempotencyKey)
		switch {
		case err != nil:
			s.logger.Warn("idempotency check failed", zap.String("key", idempotencyKey), zap.Error(err))
		case seen:
			return nil, ErrDuplicateSubmission
		default:
			guarded = true
		}
	}

	created, err := s.repo.CreateOrder(ctx, locationID, req)
	if err != nil {
		if guarded {
			if ferr := s.guard.Forget(ctx, idempotencyKey); ferr != nil {
				s.logger.Warn("failed to release idempotency key", zap.String("key", idempotencyKey), zap.Error(ferr))
			}
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	items := make([]domain.EventItem, 0, len(created.OrderItems))
	for _, item := range created.OrderItems {
		items = append(items, domain.EventItem{MenuItemID: item.MenuItemID, Qty: item.Qty})
	}
	s.publish(ctx, domain.OrderEvent{
		Type:       domain.EventOrderCreated,
		OrderID:    created.Order.ID,
		LocationID: created.Order.LocationID,
		Status:     string(created.Order.Status),
		Items:      items,
	})

	s.logger.Info("order created",
		zap.String("order_id", string(created.Order.ID)),
		zap.String("location_id", string(created.Order.LocationID)),
		zap.Int("items", len(created.OrderItems)))

	return created, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	id, ok := domain.ParseUUID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	order, err := s.repo.GetOrder(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

func (s *OrderService) itemNotFound(ctx context.Context, orderID domain.UUID, rawOrderID, rawItemID string) error {
	notFound := &ItemNotFoundError{OrderID: rawOrderID, ItemID: rawItemID, KnownItemIDs: []domain.UUID{}}
	if orderID == "" {
		return notFound
	}
	ids, err := s.repo.ListItemIDs(ctx, orderID)
	if err != nil {
		s.logger.Warn("failed to list order items", zap.String("order_id", rawOrderID), zap.Error(err))
		return notFound
	}
	notFound.KnownItemIDs = ids
	return notFound
}

// UpdateItemStatus moves an item along the kitchen display and then
// recomputes the order status from all of its items.
func (s *OrderService) UpdateItemStatus(ctx context.Context, orderID, itemID, status string) (*domain.OrderItem, error) {
	if status == "" {
		return nil, badRequest("Status is required")
	}
	st, ok := domain.KitchenDisplayStatuses.Parse(status)
	if !ok {
		return nil, badRequest(fmt.Sprintf("Invalid status: %s", status))
	}

	oid, ok := domain.ParseUUID(orderID)
	if !ok {
		return nil, s.itemNotFound(ctx, "", orderID, itemID)
	}
	iid, ok := domain.ParseUUID(itemID)
	if !ok {
		return nil, s.itemNotFound(ctx, oid, orderID, itemID)
	}

	item, err := s.repo.UpdateItemStatus(ctx, oid, iid, st, domain.KitchenDisplayStatuses.Stamps(st))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.itemNotFound(ctx, oid, orderID, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("update order item status: %w", err)
	}

	s.rollup(ctx, oid)
	s.publish(ctx, domain.OrderEvent{
		Type:    domain.EventItemStatusChanged,
		OrderID: oid,
		ItemID:  iid,
		Status:  string(st),
	})

	return item, nil
}

// rollup is best effort; a failure leaves the previous order status in place.
func (s *OrderService) rollup(ctx context.Context, orderID domain.UUID) {
	statuses, err := s.repo.ListItemStatuses(ctx, orderID)
	if err != nil {
		s.logger.Error("order status rollup failed", zap.String("order_id", string(orderID)), zap.Error(err))
		return
	}

	next := domain.RollupOrderStatus(statuses)
	if err := s.repo.SetDerivedStatus(ctx, orderID, next); err != nil {
		s.logger.Error("order status rollup failed", zap.String("order_id", string(orderID)), zap.Error(err))
		return
	}
	s.logger.Debug("order status derived", zap.String("order_id", string(orderID)), zap.String("status", string(next)))
}

// UpdateStationStatus moves an item along the station flow and, when a
// station is named, its kitchen ticket at that station.
func (s *OrderService) UpdateStationStatus(ctx context.Context, orderID, itemID, status, stationID string) (*domain.OrderItem, error) {
	if status == "" {
		return nil, badRequest("Status is required")
	}
	st, ok := domain.StationFlowStatuses.Parse(status)
	if !ok {
		return nil, badRequest(fmt.Sprintf("Invalid status: %s", status))
	}

	var station domain.UUID
	if stationID != "" {
		if station, ok = domain.ParseUUID(stationID); !ok {
			return nil, badRequest(fmt.Sprintf("Invalid station_id: %q", stationID))
		}
	}

	oid, ok := domain.ParseUUID(orderID)
	if !ok {
		return nil, s.itemNotFound(ctx, "", orderID, itemID)
	}
	iid, ok := domain.ParseUUID(itemID)
	if !ok {
		return nil, s.itemNotFound(ctx, oid, orderID, itemID)
	}

	item, err := s.repo.UpdateItemStatus(ctx, oid, iid, st, domain.StationFlowStatuses.Stamps(st))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.itemNotFound(ctx, oid, orderID, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("update order item status: %w", err)
	}

	if station != "" {
		ticketStatus := domain.TicketStatusFor(st)
		if _, err := s.repo.UpdateTicketStatus(ctx, iid, station, ticketStatus, domain.TicketStamps(ticketStatus)); err != nil {
			return nil, fmt.Errorf("update kds ticket: %w", err)
		}
	}

	s.publish(ctx, domain.OrderEvent{
		Type:    domain.EventItemStatusChanged,
		OrderID: oid,
		ItemID:  iid,
		Status:  string(st),
	})

	return item, nil
}

// UpdateStatus sets the order status directly. Completing an order also
// completes every item and consumes the recipe ingredients.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if status == "" {
		return nil, badRequest("Status is required")
	}
	st, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, badRequest(fmt.Sprintf("Invalid status: %s", status))
	}
	oid, ok := domain.ParseUUID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}

	order, err := s.repo.OverrideStatus(ctx, oid, st)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if st == domain.OrderCompleted {
		if err := s.repo.CompleteAllItems(ctx, oid); err != nil {
			return nil, fmt.Errorf("complete order items: %w", err)
		}
		if s.stock != nil {
			s.stock.DeductForOrder(context.WithoutCancel(ctx), oid)
		}
	}

	s.publish(ctx, domain.OrderEvent{
		Type:       domain.EventOrderStatusChanged,
		OrderID:    oid,
		LocationID: order.LocationID,
		Status:     string(st),
	})

	return order, nil
}

func (s *OrderService) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qrEncoder.Generate(order.ID)
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.events == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			zap.String("type", event.Type),
			zap.String("order_id", string(event.OrderID)),
			zap.Error(err))
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
