package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultUnit     = "ea"
	defaultCategory = "Uncategorized"
)

type Ingredient struct {
	ID       LegacyID  `json:"id,string"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	Low      float64   `json:"low"`
	Updated  time.Time `json:"updated"`
}

// RecipeLine is one ingredient of a menu item joined with its current stock.
type RecipeLine struct {
	IngredientID   LegacyID
	IngredientName string
	Unit           string
	QuantityNeeded float64
	StockQuantity  float64
	LowThreshold   float64
}

// ConsumedItem is an order line as seen by stock deduction.
type ConsumedItem struct {
	MenuItemID UUID
	Qty        int
}

type Deduction struct {
	IngredientID LegacyID `json:"ingredient_id"`
	Name         string   `json:"name"`
	Deducted     float64  `json:"deducted"`
	NewStock     float64  `json:"new_stock"`
	Low          bool     `json:"low"`
}

// ComputeDeduction subtracts needed*qty from the line's stock. The result
// is not floored at zero.
func ComputeDeduction(line RecipeLine, qty int) Deduction {
	used := decimal.NewFromFloat(line.QuantityNeeded).Mul(decimal.NewFromInt(int64(qty)))
	newStock := decimal.NewFromFloat(line.StockQuantity).Sub(used)
	return Deduction{
		IngredientID: line.IngredientID,
		Name:         line.IngredientName,
		Deducted:     used.InexactFloat64(),
		NewStock:     newStock.InexactFloat64(),
		Low:          newStock.LessThanOrEqual(decimal.NewFromFloat(line.LowThreshold)),
	}
}

type StockStatus string

const (
	StockAvailable  StockStatus = "available"
	StockLow        StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

type MenuAvailability struct {
	ItemID             UUID        `json:"itemid"`
	ItemName           string      `json:"itemname"`
	SKU                string      `json:"sku"`
	Available          bool        `json:"available"`
	MissingIngredients []string    `json:"missingIngredients"`
	StockStatus        StockStatus `json:"stockStatus"`
}

// ClassifyAvailability decides whether one serving can be made from the
// given recipe lines. An ingredient is short when stock < needed and low
// when stock is at or under its threshold. A threshold no larger than one
// serving does not flag stock of exactly one serving.
func ClassifyAvailability(lines []RecipeLine) (StockStatus, []string) {
	missing := []string{}
	if len(lines) == 0 {
		return StockOutOfStock, append(missing, "No recipe defined")
	}

	status := StockAvailable
	for _, line := range lines {
		switch {
		case line.StockQuantity < line.QuantityNeeded:
			status = StockOutOfStock
			missing = append(missing, fmt.Sprintf("%s (need %s%s, have %s%s)",
				line.IngredientName, formatQty(line.QuantityNeeded), line.Unit, formatQty(line.StockQuantity), line.Unit))
		case line.StockQuantity <= line.LowThreshold &&
			(line.StockQuantity > line.QuantityNeeded || line.LowThreshold > line.QuantityNeeded):
			if status != StockOutOfStock {
				status = StockLow
			}
		}
	}
	return status, missing
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// IngredientUsage is an ingredient with its trailing-window consumption.
type IngredientUsage struct {
	ID           LegacyID
	Name         string
	Category     *string
	Unit         *string
	CurrentStock float64
	MonthlyUsage float64
	LowThreshold float64
}

type ShoppingListItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	CurrentStock   float64 `json:"currentStock"`
	Unit           string  `json:"unit"`
	RecommendedQty float64 `json:"recommendedQty"`
	Urgency        Urgency `json:"urgency"`
	Reason         string  `json:"reason"`
	EstimatedCost  float64 `json:"estimatedCost"`
}

func ClassifyUrgency(currentStock, lowThreshold float64) Urgency {
	switch {
	case currentStock <= 0:
		return UrgencyCritical
	case currentStock < lowThreshold:
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

// ProjectShoppingList recommends topping each ingredient up to its projected
// usage. Ingredients already covered are left out.
func ProjectShoppingList(usages []IngredientUsage) []ShoppingListItem {
	items := make([]ShoppingListItem, 0, len(usages))
	for _, u := range usages {
		usage := decimal.NewFromFloat(u.MonthlyUsage)
		stock := decimal.NewFromFloat(u.CurrentStock)
		recommended := decimal.Max(usage.Sub(stock), decimal.Zero)
		if !recommended.IsPositive() {
			continue
		}

		unitLabel := ""
		unit := defaultUnit
		if u.Unit != nil {
			unitLabel = *u.Unit
			unit = *u.Unit
		}
		category := defaultCategory
		if u.Category != nil {
			category = *u.Category
		}

		reason := []string{
			strings.TrimSpace("Projected 30d usage " + usage.StringFixed(2) + " " + unitLabel),
			strings.TrimSpace("On hand " + stock.StringFixed(2) + " " + unitLabel),
		}
		if u.LowThreshold > 0 {
			reason = append(reason, strings.TrimSpace("Par "+decimal.NewFromFloat(u.LowThreshold).StringFixed(2)+" "+unitLabel))
		}

		items = append(items, ShoppingListItem{
			ID:             u.ID.String(),
			Name:           u.Name,
			Category:       category,
			CurrentStock:   u.CurrentStock,
			Unit:           unit,
			RecommendedQty: recommended.Round(2).InexactFloat64(),
			Urgency:        ClassifyUrgency(u.CurrentStock, u.LowThreshold),
			Reason:         strings.Join(reason, " · "),
			EstimatedCost:  0,
		})
	}
	return items
}

type StockLevel struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Updated  time.Time `json:"updated"`
}

type RestockLine struct {
	ID             string  `json:"id"`
	RecommendedQty float64 `json:"recommendedQty"`
}

type StockAddition struct {
	ID       LegacyID
	Quantity float64
}

type RestockedIngredient struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NewQuantity   float64   `json:"newQuantity"`
	AddedQuantity float64   `json:"addedQuantity"`
	Updated       time.Time `json:"updated"`
}
