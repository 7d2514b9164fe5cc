package storage

import (
	"context"
	"fmt"
	"time"

	"fusion-kitchen/kitchen-svc/internal/domain"
)

func (r *PostgresRepository) ConsumedItems(ctx context.Context, orderID domain.UUID) ([]domain.ConsumedItem, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT menu_item_id::text, qty FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ConsumedItem
	for rows.Next() {
		var item domain.ConsumedItem
		if err := rows.Scan(&item.MenuItemID, &item.Qty); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) RecipeLines(ctx context.Context, menuItemID domain.UUID) ([]domain.RecipeLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT i.ingredient_id, i.ingredient_name, COALESCE(i.unit, ''), mii.quantity_needed,
			COALESCE(i.stock_quantity, 0), COALESCE(i.low_threshold, 0)
		FROM menu_item_ingredients mii
		JOIN ingredients i ON i.ingredient_id = mii.ingredient_id
		WHERE mii.menu_item_id = $1`, menuItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.RecipeLine
	for rows.Next() {
		var line domain.RecipeLine
		if err := rows.Scan(&line.IngredientID, &line.IngredientName, &line.Unit, &line.QuantityNeeded,
			&line.StockQuantity, &line.LowThreshold); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) SetStock(ctx context.Context, id domain.LegacyID, quantity float64) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE ingredients SET stock_quantity = $1, updated_at = NOW() WHERE ingredient_id = $2`,
		quantity, id)
	return err
}

func (r *PostgresRepository) UpdateQuantity(ctx context.Context, id domain.LegacyID, quantity float64) (*domain.StockLevel, error) {
	var level domain.StockLevel
	err := r.DB.QueryRowContext(ctx, `
		UPDATE ingredients SET stock_quantity = $1, updated_at = NOW()
		WHERE ingredient_id = $2
		RETURNING ingredient_id::text, ingredient_name, stock_quantity, updated_at`,
		quantity, id).Scan(&level.ID, &level.Name, &level.Quantity, &level.Updated)
	if err != nil {
		return nil, notFound(err)
	}
	return &level, nil
}

// Restock adds every quantity or none of them.
func (r *PostgresRepository) Restock(ctx context.Context, additions []domain.StockAddition) ([]domain.RestockedIngredient, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	restocked := make([]domain.RestockedIngredient, 0, len(additions))
	for _, add := range additions {
		item := domain.RestockedIngredient{AddedQuantity: add.Quantity}
		err := tx.QueryRowContext(ctx, `
			UPDATE ingredients
			SET stock_quantity = COALESCE(stock_quantity, 0) + $1, updated_at = NOW()
			WHERE ingredient_id = $2
			RETURNING ingredient_id::text, ingredient_name, stock_quantity, updated_at`,
			add.Quantity, add.ID).Scan(&item.ID, &item.Name, &item.NewQuantity, &item.Updated)
		if err != nil {
			return nil, fmt.Errorf("restock ingredient %s: %w", add.ID, notFound(err))
		}
		restocked = append(restocked, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return restocked, nil
}

func (r *PostgresRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT ingredient_id, ingredient_name, COALESCE(category, 'Uncategorized'),
			COALESCE(stock_quantity, 0), COALESCE(unit, 'ea'), COALESCE(low_threshold, 0),
			COALESCE(updated_at, NOW())
		FROM ingredients
		ORDER BY ingredient_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := []domain.Ingredient{}
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Category, &ing.Quantity, &ing.Unit, &ing.Low, &ing.Updated); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *PostgresRepository) ActiveMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id::text, COALESCE(sku, ''), name
		FROM menu_items
		WHERE is_active = true
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item := domain.MenuItem{IsActive: true}
		if err := rows.Scan(&item.ID, &item.SKU, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// IngredientUsage projects ingredient consumption from orders placed since
// the given time.
func (r *PostgresRepository) IngredientUsage(ctx context.Context, since time.Time) ([]domain.IngredientUsage, error) {
	rows, err := r.DB.QueryContext(ctx, `
		WITH window_orders AS (
			SELECT oi.menu_item_id, SUM(oi.qty) AS qty
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.placed_at >= $1
			GROUP BY oi.menu_item_id
		),
		ingredient_usage AS (
			SELECT mii.ingredient_id, SUM(wo.qty * mii.quantity_needed) AS usage
			FROM window_orders wo
			JOIN menu_item_ingredients mii ON mii.menu_item_id = wo.menu_item_id
			GROUP BY mii.ingredient_id
		)
		SELECT i.ingredient_id, i.ingredient_name, i.category, i.unit,
			COALESCE(i.stock_quantity, 0), COALESCE(u.usage, 0), COALESCE(i.low_threshold, 0)
		FROM ingredients i
		LEFT JOIN ingredient_usage u ON u.ingredient_id = i.ingredient_id
		ORDER BY u.usage DESC NULLS LAST`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []domain.IngredientUsage
	for rows.Next() {
		var u domain.IngredientUsage
		if err := rows.Scan(&u.ID, &u.Name, &u.Category, &u.Unit, &u.CurrentStock, &u.MonthlyUsage, &u.LowThreshold); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}
	return usages, rows.Err()
}
