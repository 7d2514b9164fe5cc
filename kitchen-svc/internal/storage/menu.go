package storage

import (
	"context"
	"database/sql"
	"fmt"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/lib/pq"
)

func (r *PostgresRepository) ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	query := `
		SELECT id::text, COALESCE(sku, ''), name, COALESCE(category, ''), price, is_active,
			avg_prep_minutes, COALESCE(image_path, ''), created_at
		FROM menu_items
		WHERE 1=1`
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	query += " ORDER BY category ASC, name ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.SKU, &item.Name, &item.Category, &item.Price, &item.IsActive,
			&item.AvgPrepMinutes, &item.ImagePath, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListSections(ctx context.Context) ([]domain.Section, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT section_id, section_name, COALESCE(max_capacity, 0)
		FROM sections
		ORDER BY section_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []domain.Section{}
	for rows.Next() {
		var s domain.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.MaxCapacity); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *PostgresRepository) ListMenuItemSections(ctx context.Context) ([]domain.MenuItemSection, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT mi.id::text, mi.name, s.section_id, s.section_name, s.max_capacity
		FROM menu_items mi
		LEFT JOIN sections s ON s.section_id = mi.section_id
		ORDER BY mi.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.MenuItemSection{}
	for rows.Next() {
		var (
			item        domain.MenuItemSection
			sectionID   sql.NullInt64
			sectionName sql.NullString
			capacity    sql.NullInt64
		)
		if err := rows.Scan(&item.ItemID, &item.ItemName, &sectionID, &sectionName, &capacity); err != nil {
			return nil, err
		}
		if sectionID.Valid {
			item.Section = &domain.Section{
				ID:          domain.LegacyID(sectionID.Int64),
				Name:        sectionName.String,
				MaxCapacity: int(capacity.Int64),
			}
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) ListStations(ctx context.Context, filter domain.StationFilter) ([]domain.Station, error) {
	query := `SELECT id::text, location_id::text, name, kind, is_active FROM stations WHERE 1=1`
	var args []any

	if filter.LocationID != "" {
		args = append(args, filter.LocationID)
		query += fmt.Sprintf(" AND location_id = $%d", len(args))
	}
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	query += " ORDER BY name ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := []domain.Station{}
	for rows.Next() {
		var s domain.Station
		if err := rows.Scan(&s.ID, &s.LocationID, &s.Name, &s.Kind, &s.IsActive); err != nil {
			return nil, err
		}
		s.SLA = []domain.StationSLA{}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return stations, nil
	}

	ids := make([]string, 0, len(stations))
	index := make(map[domain.UUID]int, len(stations))
	for i, s := range stations {
		ids = append(ids, string(s.ID))
		index[s.ID] = i
	}

	slaRows, err := r.DB.QueryContext(ctx, `
		SELECT id::text, station_id::text, daypart, target_prep_minutes, alert_after_minutes
		FROM station_sla
		WHERE station_id::text = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer slaRows.Close()

	for slaRows.Next() {
		var sla domain.StationSLA
		if err := slaRows.Scan(&sla.ID, &sla.StationID, &sla.Daypart, &sla.TargetPrepMinutes, &sla.AlertAfterMinutes); err != nil {
			return nil, err
		}
		i := index[sla.StationID]
		stations[i].SLA = append(stations[i].SLA, sla)
	}
	return stations, slaRows.Err()
}
