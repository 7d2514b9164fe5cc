package domain

import "time"

type RevenuePoint struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type TopItem struct {
	Name    string  `json:"name"`
	Qty     int     `json:"qty"`
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type FinancialTotals struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	Orders            int     `json:"orders"`
}

type FinancialReport struct {
	RevenueByDay []RevenuePoint  `json:"revenueByDay"`
	TopItems     []TopItem       `json:"topItems"`
	StatusCounts []StatusCount   `json:"statusCounts"`
	Totals       FinancialTotals `json:"totals"`
	RangeDays    int             `json:"rangeDays"`
}

type CategoryStock struct {
	Category string  `json:"category"`
	Items    int     `json:"items"`
	Quantity float64 `json:"quantity"`
}

type StockSplit struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type StockUpdate struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	Updated  time.Time `json:"updated"`
}

type InventoryReport struct {
	ByCategory    []CategoryStock `json:"byCategory"`
	StatusSplit   []StockSplit    `json:"statusSplit"`
	RecentUpdates []StockUpdate   `json:"recentUpdates"`
}

type PopularItem struct {
	MenuItemID UUID    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Qty        float64 `json:"qty"`
}

type PopularReport struct {
	Day    string        `json:"day"`
	Source string        `json:"source"`
	Items  []PopularItem `json:"items"`
}
