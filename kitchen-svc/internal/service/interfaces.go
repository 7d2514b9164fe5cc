package service

import (
	"context"
	"net/http"
	"time"

	"fusion-kitchen/kitchen-svc/internal/domain"
	"fusion-kitchen/kitchen-svc/internal/storage"
)

type OrderRepository interface {
	FirstLocationID(ctx context.Context) (domain.UUID, error)
	CreateOrder(ctx context.Context, locationID domain.UUID, req domain.NewOrder) (*domain.CreatedOrder, error)
	GetOrder(ctx context.Context, id domain.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateItemStatus(ctx context.Context, orderID, itemID domain.UUID, status domain.ItemStatus, stamps domain.Stamps) (*domain.OrderItem, error)
	ListItemIDs(ctx context.Context, orderID domain.UUID) ([]domain.UUID, error)
	ListItemStatuses(ctx context.Context, orderID domain.UUID) ([]domain.ItemStatus, error)
	SetDerivedStatus(ctx context.Context, orderID domain.UUID, status domain.OrderStatus) error
	OverrideStatus(ctx context.Context, orderID domain.UUID, status domain.OrderStatus) (*domain.Order, error)
	CompleteAllItems(ctx context.Context, orderID domain.UUID) error
	UpdateTicketStatus(ctx context.Context, itemID, stationID domain.UUID, status domain.TicketStatus, stamps domain.Stamps) (int64, error)
}

type InventoryRepository interface {
	ConsumedItems(ctx context.Context, orderID domain.UUID) ([]domain.ConsumedItem, error)
	RecipeLines(ctx context.Context, menuItemID domain.UUID) ([]domain.RecipeLine, error)
	SetStock(ctx context.Context, id domain.LegacyID, quantity float64) error
	UpdateQuantity(ctx context.Context, id domain.LegacyID, quantity float64) (*domain.StockLevel, error)
	Restock(ctx context.Context, additions []domain.StockAddition) ([]domain.RestockedIngredient, error)
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	ActiveMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	IngredientUsage(ctx context.Context, since time.Time) ([]domain.IngredientUsage, error)
}

type MenuRepository interface {
	ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	ListSections(ctx context.Context) ([]domain.Section, error)
	ListMenuItemSections(ctx context.Context) ([]domain.MenuItemSection, error)
	ListStations(ctx context.Context, filter domain.StationFilter) ([]domain.Station, error)
}

type ReportRepository interface {
	FinancialReport(ctx context.Context, since time.Time) (*domain.FinancialReport, error)
	InventoryReport(ctx context.Context, since time.Time) (*domain.InventoryReport, error)
	PopularItemsSince(ctx context.Context, since time.Time, limit int) ([]domain.PopularItem, error)
	MenuItemNames(ctx context.Context, ids []domain.UUID) (map[domain.UUID]string, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type SubmissionGuard interface {
	Seen(ctx context.Context, key string) (bool, error)
	Forget(ctx context.Context, key string) error
}

type PopularityCache interface {
	TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StockDeductor consumes recipe ingredients for a completed order. It never
// reports failure to the caller.
type StockDeductor interface {
	DeductForOrder(ctx context.Context, orderID domain.UUID)
}

// Recommender produces restock suggestions.
type Recommender interface {
	Recommend(ctx context.Context) ([]domain.ShoppingListItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req domain.NewOrder, idempotencyKey string) (*domain.CreatedOrder, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateItemStatus(ctx context.Context, orderID, itemID, status string) (*domain.OrderItem, error)
	UpdateStationStatus(ctx context.Context, orderID, itemID, status, stationID string) (*domain.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
	QRCode(ctx context.Context, orderID string) ([]byte, error)
}

type InventoryServiceInterface interface {
	List(ctx context.Context) ([]domain.Ingredient, error)
	SetQuantity(ctx context.Context, id string, quantity *float64) (*domain.StockLevel, error)
	Restock(ctx context.Context, lines []domain.RestockLine) ([]domain.RestockedIngredient, error)
	Availability(ctx context.Context) ([]domain.MenuAvailability, error)
	DeductForOrder(ctx context.Context, orderID domain.UUID)
}

type ShoppingListServiceInterface interface {
	Monthly(ctx context.Context, source string) ([]domain.ShoppingListItem, error)
}

type MenuServiceInterface interface {
	MenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	Sections(ctx context.Context) ([]domain.Section, error)
	MenuItemSections(ctx context.Context) ([]domain.MenuItemSection, error)
	Stations(ctx context.Context, filter domain.StationFilter) ([]domain.Station, error)
}

type ReportServiceInterface interface {
	Financial(ctx context.Context) (*domain.FinancialReport, error)
	Inventory(ctx context.Context) (*domain.InventoryReport, error)
	PopularToday(ctx context.Context) (*domain.PopularReport, error)
}

var (
	_ OrderRepository     = (*storage.PostgresRepository)(nil)
	_ InventoryRepository = (*storage.PostgresRepository)(nil)
	_ MenuRepository      = (*storage.PostgresRepository)(nil)
	_ ReportRepository    = (*storage.PostgresRepository)(nil)
	_ EventPublisher      = (*storage.KafkaPublisher)(nil)
	_ SubmissionGuard     = (*storage.RedisCache)(nil)
	_ PopularityCache     = (*storage.RedisCache)(nil)
)
