package service

import (
	"context"
	"errors"
	"fmt"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"go.uber.org/zap"
)

type InventoryService struct {
	repo   InventoryRepository
	logger *zap.Logger
}

func NewInventoryService(repo InventoryRepository, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{repo: repo, logger: logger}
}

func (s *InventoryService) List(ctx context.Context) ([]domain.Ingredient, error) {
	return s.repo.ListIngredients(ctx)
}

// Deduct consumes every recipe ingredient of every item on the order and
// returns what was written. Stock may go negative.
func (s *InventoryService) Deduct(ctx context.Context, orderID domain.UUID) ([]domain.Deduction, error) {
	items, err := s.repo.ConsumedItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	var deductions []domain.Deduction
	for _, item := range items {
		lines, err := s.repo.RecipeLines(ctx, item.MenuItemID)
		if err != nil {
			return deductions, fmt.Errorf("load recipe for %s: %w", item.MenuItemID, err)
		}

		for _, line := range lines {
			d := domain.ComputeDeduction(line, item.Qty)
			if err := s.repo.SetStock(ctx, line.IngredientID, d.NewStock); err != nil {
				return deductions, fmt.Errorf("update stock for ingredient %s: %w", line.IngredientID, err)
			}
			if d.Low {
				s.logger.Warn("ingredient at or below low threshold",
					zap.String("order_id", string(orderID)),
					zap.Int64("ingredient_id", int64(line.IngredientID)),
					zap.String("ingredient", line.IngredientName),
					zap.Float64("stock", d.NewStock),
					zap.Float64("low_threshold", line.LowThreshold))
			}
			deductions = append(deductions, d)
		}
	}
	return deductions, nil
}

// DeductForOrder runs Deduct and only logs failures. Completing an order
// must not fail because stock bookkeeping did.
func (s *InventoryService) DeductForOrder(ctx context.Context, orderID domain.UUID) {
	deductions, err := s.Deduct(ctx, orderID)
	if err != nil {
		s.logger.Error("inventory deduction failed",
			zap.String("order_id", string(orderID)),
			zap.Int("applied", len(deductions)),
			zap.Error(err))
		return
	}
	s.logger.Info("inventory deducted", zap.String("order_id", string(orderID)), zap.Int("lines", len(deductions)))
}

func (s *InventoryService) SetQuantity(ctx context.Context, id string, quantity *float64) (*domain.StockLevel, error) {
	ingredientID, err := domain.ParseLegacyID(id)
	if err != nil {
		return nil, badRequest("Invalid ingredient id")
	}
	if quantity == nil || *quantity <= 0 {
		return nil, badRequest("Invalid quantity value")
	}

	level, err := s.repo.UpdateQuantity(ctx, ingredientID, *quantity)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update ingredient quantity: %w", err)
	}
	return level, nil
}

func (s *InventoryService) Restock(ctx context.Context, lines []domain.RestockLine) ([]domain.RestockedIngredient, error) {
	if len(lines) == 0 {
		return nil, badRequest("Invalid request: items array is required")
	}

	additions := make([]domain.StockAddition, 0, len(lines))
	for _, line := range lines {
		if line.ID == "" || line.RecommendedQty <= 0 {
			return nil, badRequest("Invalid item: id and positive recommendedQty are required")
		}
		id, err := domain.ParseLegacyID(line.ID)
		if err != nil {
			return nil, badRequest(fmt.Sprintf("Invalid ingredient id: %s", line.ID))
		}
		additions = append(additions, domain.StockAddition{ID: id, Quantity: line.RecommendedQty})
	}

	restocked, err := s.repo.Restock(ctx, additions)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("restock ingredients: %w", err)
	}
	return restocked, nil
}

func (s *InventoryService) Availability(ctx context.Context) ([]domain.MenuAvailability, error) {
	items, err := s.repo.ActiveMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MenuAvailability, 0, len(items))
	for _, item := range items {
		lines, err := s.repo.RecipeLines(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("load recipe for %s: %w", item.ID, err)
		}
		status, missing := domain.ClassifyAvailability(lines)
		result = append(result, domain.MenuAvailability{
			ItemID:             item.ID,
			ItemName:           item.Name,
			SKU:                item.SKU,
			Available:          status != domain.StockOutOfStock,
			MissingIngredients: missing,
			StockStatus:        status,
		})
	}
	return result, nil
}

var _ InventoryServiceInterface = (*InventoryService)(nil)
var _ StockDeductor = (*InventoryService)(nil)
