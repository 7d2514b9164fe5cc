package storage

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		section_id SERIAL PRIMARY KEY,
		section_name TEXT NOT NULL,
		max_capacity INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		sku TEXT,
		name TEXT NOT NULL,
		category TEXT,
		price NUMERIC(10,2) NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT true,
		avg_prep_minutes NUMERIC,
		image_path TEXT,
		section_id INTEGER REFERENCES sections(section_id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		location_id UUID REFERENCES locations(id),
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS station_sla (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		station_id UUID NOT NULL REFERENCES stations(id),
		daypart TEXT NOT NULL,
		target_prep_minutes INTEGER NOT NULL,
		alert_after_minutes INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS item_station_route (
		menu_item_id UUID NOT NULL REFERENCES menu_items(id),
		station_id UUID NOT NULL REFERENCES stations(id),
		sequence INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		location_id UUID NOT NULL,
		source TEXT NOT NULL,
		table_number TEXT,
		customer_name TEXT,
		placed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		promised_at TIMESTAMPTZ,
		started_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'open',
		status_source TEXT NOT NULL DEFAULT 'derived'
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_id UUID NOT NULL REFERENCES orders(id),
		menu_item_id UUID NOT NULL,
		qty INTEGER NOT NULL CHECK (qty > 0),
		notes TEXT,
		status TEXT NOT NULL DEFAULT 'queued',
		predicted_prep_minutes NUMERIC,
		actual_prep_seconds INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		started_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS kds_tickets (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_item_id UUID NOT NULL REFERENCES order_items(id),
		station_id UUID NOT NULL,
		sequence INTEGER NOT NULL DEFAULT 1,
		status TEXT NOT NULL DEFAULT 'queued',
		priority_score NUMERIC,
		sla_minutes INTEGER,
		enqueued_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		started_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS ingredients (
		ingredient_id SERIAL PRIMARY KEY,
		ingredient_name TEXT NOT NULL,
		category TEXT,
		unit TEXT,
		stock_quantity NUMERIC NOT NULL DEFAULT 0,
		low_threshold NUMERIC NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS menu_item_ingredients (
		menu_item_id UUID NOT NULL REFERENCES menu_items(id),
		ingredient_id INTEGER NOT NULL REFERENCES ingredients(ingredient_id),
		quantity_needed NUMERIC NOT NULL
	)`,
	`ALTER TABLE IF EXISTS orders ADD COLUMN IF NOT EXISTS status_source TEXT NOT NULL DEFAULT 'derived'`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_kds_tickets_item ON kds_tickets(order_item_id)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
