package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/lib/pq"
)

const defaultTicketSequence = 1

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const orderColumns = `id::text, location_id::text, source, table_number, customer_name, placed_at,
	promised_at, started_at, completed_at, status, status_source`

func scanOrder(row scanner) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(&order.ID, &order.LocationID, &order.Source, &order.TableNumber, &order.CustomerName,
		&order.PlacedAt, &order.PromisedAt, &order.StartedAt, &order.CompletedAt, &order.Status, &order.StatusSource); err != nil {
		return nil, err
	}
	return &order, nil
}

const itemColumns = `id::text, order_id::text, menu_item_id::text, qty, notes, status,
	predicted_prep_minutes, actual_prep_seconds, created_at, started_at, completed_at`

func scanItem(row scanner, extra ...any) (*domain.OrderItem, error) {
	var item domain.OrderItem
	dest := []any{&item.ID, &item.OrderID, &item.MenuItemID, &item.Qty, &item.Notes, &item.Status,
		&item.PredictedPrepMinutes, &item.ActualPrepSeconds, &item.CreatedAt, &item.StartedAt, &item.CompletedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &item, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) FirstLocationID(ctx context.Context) (domain.UUID, error) {
	var id domain.UUID
	err := r.DB.QueryRowContext(ctx, `SELECT id::text FROM locations ORDER BY created_at ASC LIMIT 1`).Scan(&id)
	if err != nil {
		return "", notFound(err)
	}
	return id, nil
}

// CreateOrder writes the order, its items and their first-station tickets in
// one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, locationID domain.UUID, req domain.NewOrder) (*domain.CreatedOrder, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order, err := scanOrder(tx.QueryRowContext(ctx, `
		INSERT INTO orders (location_id, source, table_number, customer_name, status, status_source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+orderColumns,
		locationID, req.Source, req.TableNumber, req.CustomerName, domain.OrderInProgress, domain.StatusDerived))
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		item, err := scanItem(tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, qty, notes, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+itemColumns,
			order.ID, line.MenuItemID, line.Qty, line.Notes, domain.ItemQueued))
		if err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}

		route, err := firstRoute(ctx, tx, item.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("lookup station route: %w", err)
		}
		if route != nil {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO kds_tickets (order_item_id, station_id, sequence, status)
				VALUES ($1, $2, $3, $4)`,
				item.ID, route.StationID, route.Sequence, domain.TicketQueued); err != nil {
				return nil, fmt.Errorf("insert kds ticket: %w", err)
			}
		}

		items = append(items, *item)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.CreatedOrder{Order: *order, OrderItems: items}, nil
}

func firstRoute(ctx context.Context, tx *sql.Tx, menuItemID domain.UUID) (*domain.StationRoute, error) {
	var (
		route    domain.StationRoute
		sequence sql.NullInt64
	)
	err := tx.QueryRowContext(ctx, `
		SELECT station_id::text, sequence
		FROM item_station_route
		WHERE menu_item_id = $1
		ORDER BY sequence ASC
		LIMIT 1`, menuItemID).Scan(&route.StationID, &sequence)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	route.Sequence = defaultTicketSequence
	if sequence.Valid && sequence.Int64 != 0 {
		route.Sequence = int(sequence.Int64)
	}
	return &route, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id domain.UUID) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}

	orders := []domain.Order{*order}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []any

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			statuses = append(statuses, string(st))
		}
		args = append(args, pq.Array(statuses))
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}
	if filter.LocationID != "" {
		args = append(args, filter.LocationID)
		query += fmt.Sprintf(" AND location_id = $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY placed_at DESC LIMIT $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads items, their menu item and their tickets for a page of orders.
func (r *PostgresRepository) attachItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]string, 0, len(orders))
	index := make(map[domain.UUID]int, len(orders))
	for i, order := range orders {
		orderIDs = append(orderIDs, string(order.ID))
		index[order.ID] = i
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.id::text, oi.order_id::text, oi.menu_item_id::text, oi.qty, oi.notes, oi.status,
			oi.predicted_prep_minutes, oi.actual_prep_seconds, oi.created_at, oi.started_at, oi.completed_at,
			mi.name, mi.category, mi.price
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id::text = ANY($1)
		ORDER BY oi.created_at ASC`, pq.Array(orderIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	var items []*domain.OrderItem
	for rows.Next() {
		var (
			name, category sql.NullString
			price          sql.NullFloat64
		)
		item, err := scanItem(rows, &name, &category, &price)
		if err != nil {
			return err
		}
		if name.Valid {
			item.MenuItem = &domain.MenuItem{
				ID:       item.MenuItemID,
				Name:     name.String,
				Category: category.String,
				Price:    price.Float64,
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	tickets, err := r.ticketsForItems(ctx, items)
	if err != nil {
		return err
	}

	for _, item := range items {
		item.Tickets = tickets[item.ID]
		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, *item)
	}
	return nil
}

func (r *PostgresRepository) ticketsForItems(ctx context.Context, items []*domain.OrderItem) (map[domain.UUID][]domain.KdsTicket, error) {
	itemIDs := make([]string, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, string(item.ID))
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id::text, order_item_id::text, station_id::text, sequence, status,
			priority_score, sla_minutes, enqueued_at, started_at, completed_at
		FROM kds_tickets
		WHERE order_item_id::text = ANY($1)
		ORDER BY sequence ASC`, pq.Array(itemIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make(map[domain.UUID][]domain.KdsTicket)
	for rows.Next() {
		var t domain.KdsTicket
		if err := rows.Scan(&t.ID, &t.OrderItemID, &t.StationID, &t.Sequence, &t.Status,
			&t.PriorityScore, &t.SLAMinutes, &t.EnqueuedAt, &t.StartedAt, &t.CompletedAt); err != nil {
			return nil, err
		}
		tickets[t.OrderItemID] = append(tickets[t.OrderItemID], t)
	}
	return tickets, rows.Err()
}

func (r *PostgresRepository) UpdateItemStatus(ctx context.Context, orderID, itemID domain.UUID, status domain.ItemStatus, stamps domain.Stamps) (*domain.OrderItem, error) {
	item, err := scanItem(r.DB.QueryRowContext(ctx, `
		UPDATE order_items
		SET status = $1,
			started_at = CASE WHEN $2::boolean AND started_at IS NULL THEN NOW() ELSE started_at END,
			completed_at = CASE WHEN $3::boolean THEN NOW() ELSE completed_at END
		WHERE id = $4 AND order_id = $5
		RETURNING `+itemColumns,
		status, stamps.Start, stamps.Finish, itemID, orderID))
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func (r *PostgresRepository) ListItemIDs(ctx context.Context, orderID domain.UUID) ([]domain.UUID, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id::text FROM order_items WHERE order_id = $1 ORDER BY created_at ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []domain.UUID{}
	for rows.Next() {
		var id domain.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresRepository) ListItemStatuses(ctx context.Context, orderID domain.UUID) ([]domain.ItemStatus, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.ItemStatus
	for rows.Next() {
		var st domain.ItemStatus
		if err := rows.Scan(&st); err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, rows.Err()
}

func (r *PostgresRepository) SetDerivedStatus(ctx context.Context, orderID domain.UUID, status domain.OrderStatus) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
			status_source = $2,
			completed_at = CASE WHEN $3::boolean THEN COALESCE(completed_at, NOW()) ELSE completed_at END
		WHERE id = $4`,
		status, domain.StatusDerived, status == domain.OrderCompleted, orderID)
	return err
}

func (r *PostgresRepository) OverrideStatus(ctx context.Context, orderID domain.UUID, status domain.OrderStatus) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1,
			status_source = $2,
			completed_at = CASE WHEN $3::boolean THEN NOW() ELSE completed_at END
		WHERE id = $4
		RETURNING `+orderColumns,
		status, domain.StatusOverride, status == domain.OrderCompleted, orderID))
	if err != nil {
		return nil, notFound(err)
	}
	return order, nil
}

func (r *PostgresRepository) CompleteAllItems(ctx context.Context, orderID domain.UUID) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE order_items SET status = $1, completed_at = NOW() WHERE order_id = $2`,
		domain.ItemCompleted, orderID)
	return err
}

func (r *PostgresRepository) UpdateTicketStatus(ctx context.Context, itemID, stationID domain.UUID, status domain.TicketStatus, stamps domain.Stamps) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE kds_tickets
		SET status = $1,
			started_at = CASE WHEN $2::boolean AND started_at IS NULL THEN NOW() ELSE started_at END,
			completed_at = CASE WHEN $3::boolean THEN NOW() ELSE completed_at END
		WHERE order_item_id = $4 AND station_id = $5`,
		status, stamps.Start, stamps.Finish, itemID, stationID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
