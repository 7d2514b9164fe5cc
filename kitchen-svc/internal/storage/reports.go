package storage

import (
	"context"
	"time"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/lib/pq"
)

const (
	topItemsLimit      = 7
	recentUpdatesLimit = 25
)

func (r *PostgresRepository) FinancialReport(ctx context.Context, since time.Time) (*domain.FinancialReport, error) {
	report := &domain.FinancialReport{}

	var err error
	if report.RevenueByDay, err = r.revenueByDay(ctx, since); err != nil {
		return nil, err
	}
	if report.TopItems, err = r.topItems(ctx, since); err != nil {
		return nil, err
	}
	if report.StatusCounts, err = r.statusCounts(ctx, since); err != nil {
		return nil, err
	}

	err = r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(oi.qty * mi.price), 0),
			CASE WHEN COUNT(DISTINCT o.id) > 0
				THEN COALESCE(SUM(oi.qty * mi.price), 0) / COUNT(DISTINCT o.id)
				ELSE 0 END,
			COUNT(DISTINCT o.id)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.placed_at >= $1`, since).
		Scan(&report.Totals.TotalRevenue, &report.Totals.AverageOrderValue, &report.Totals.Orders)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *PostgresRepository) revenueByDay(ctx context.Context, since time.Time) ([]domain.RevenuePoint, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT to_char(DATE(o.placed_at), 'YYYY-MM-DD') AS day,
			COALESCE(SUM(oi.qty * mi.price), 0) AS revenue,
			COUNT(DISTINCT o.id) AS orders
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.placed_at >= $1
		GROUP BY DATE(o.placed_at)
		ORDER BY day`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []domain.RevenuePoint{}
	for rows.Next() {
		var p domain.RevenuePoint
		if err := rows.Scan(&p.Day, &p.Revenue, &p.Orders); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *PostgresRepository) topItems(ctx context.Context, since time.Time) ([]domain.TopItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT mi.name, COALESCE(SUM(oi.qty), 0) AS qty, COALESCE(SUM(oi.qty * mi.price), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.placed_at >= $1
		GROUP BY mi.name
		ORDER BY revenue DESC
		LIMIT $2`, since, topItemsLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.TopItem{}
	for rows.Next() {
		var item domain.TopItem
		if err := rows.Scan(&item.Name, &item.Qty, &item.Revenue); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) statusCounts(ctx context.Context, since time.Time) ([]domain.StatusCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM orders
		WHERE placed_at >= $1
		GROUP BY status`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []domain.StatusCount{}
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func (r *PostgresRepository) InventoryReport(ctx context.Context, since time.Time) (*domain.InventoryReport, error) {
	report := &domain.InventoryReport{}

	var err error
	if report.ByCategory, err = r.stockByCategory(ctx); err != nil {
		return nil, err
	}

	var ok, low, out int
	err = r.DB.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN stock_quantity > low_threshold THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN stock_quantity > 0 AND stock_quantity <= low_threshold THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN stock_quantity <= 0 THEN 1 ELSE 0 END), 0)
		FROM ingredients`).Scan(&ok, &low, &out)
	if err != nil {
		return nil, err
	}
	report.StatusSplit = []domain.StockSplit{
		{Label: "OK", Count: ok},
		{Label: "Low", Count: low},
		{Label: "Out", Count: out},
	}

	if report.RecentUpdates, err = r.recentStockUpdates(ctx, since); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *PostgresRepository) stockByCategory(ctx context.Context) ([]domain.CategoryStock, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT COALESCE(category, 'Uncategorized') AS category, COUNT(*), COALESCE(SUM(stock_quantity), 0)
		FROM ingredients
		GROUP BY COALESCE(category, 'Uncategorized')
		ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.CategoryStock{}
	for rows.Next() {
		var c domain.CategoryStock
		if err := rows.Scan(&c.Category, &c.Items, &c.Quantity); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) recentStockUpdates(ctx context.Context, since time.Time) ([]domain.StockUpdate, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT ingredient_id::text, ingredient_name, COALESCE(stock_quantity, 0), COALESCE(unit, 'ea'), updated_at
		FROM ingredients
		WHERE updated_at >= $1
		ORDER BY updated_at DESC
		LIMIT $2`, since, recentUpdatesLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := []domain.StockUpdate{}
	for rows.Next() {
		var u domain.StockUpdate
		if err := rows.Scan(&u.ID, &u.Name, &u.Quantity, &u.Unit, &u.Updated); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, rows.Err()
}

func (r *PostgresRepository) PopularItemsSince(ctx context.Context, since time.Time, limit int) ([]domain.PopularItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.menu_item_id::text, COALESCE(mi.name, ''), SUM(oi.qty) AS qty
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.placed_at >= $1
		GROUP BY oi.menu_item_id, mi.name
		ORDER BY qty DESC
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.PopularItem{}
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Qty); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) MenuItemNames(ctx context.Context, ids []domain.UUID) (map[domain.UUID]string, error) {
	names := make(map[domain.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, string(id))
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT id::text, name FROM menu_items WHERE id::text = ANY($1)`, pq.Array(raw))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   domain.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
