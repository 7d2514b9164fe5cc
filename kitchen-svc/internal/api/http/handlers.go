package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fusion-kitchen/kitchen-svc/internal/domain"
	"fusion-kitchen/kitchen-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const idempotencyHeader = "Idempotency-Key"

type Handler struct {
	Orders    service.OrderServiceInterface
	Inventory service.InventoryServiceInterface
	Shopping  service.ShoppingListServiceInterface
	Menu      service.MenuServiceInterface
	Reports   service.ReportServiceInterface
	logger    *zap.Logger
}

func NewHandler(orders service.OrderServiceInterface, inventory service.InventoryServiceInterface, shopping service.ShoppingListServiceInterface,
	menu service.MenuServiceInterface, reports service.ReportServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Orders:    orders,
		Inventory: inventory,
		Shopping:  shopping,
		Menu:      menu,
		Reports:   reports,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/checkout", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{orderId}/items/{itemId}/status", h.updateItemStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{orderId}/items/{itemId}/station-status", h.updateStationStatus).Methods("PATCH")

	r.HandleFunc("/api/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items/availability", h.getAvailability).Methods("GET")
	r.HandleFunc("/api/menu-items/sections", h.getMenuItemSections).Methods("GET")
	r.HandleFunc("/api/sections", h.getSections).Methods("GET")
	r.HandleFunc("/api/stations", h.getStations).Methods("GET")

	r.HandleFunc("/api/ksm", h.getIngredients).Methods("GET")
	r.HandleFunc("/api/inventory/restock", h.restock).Methods("POST")
	r.HandleFunc("/api/inventory/{id}", h.updateQuantity).Methods("PUT")
	r.HandleFunc("/api/shopping-list/monthly", h.getMonthlyShoppingList).Methods("GET")

	r.HandleFunc("/api/reports/financial", h.getFinancialReport).Methods("GET")
	r.HandleFunc("/api/reports/inventory", h.getInventoryReport).Methods("GET")
	r.HandleFunc("/api/reports/popular-today", h.getPopularToday).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps service errors onto HTTP responses. Anything
// unrecognised is a 500 carrying the fallback message.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		payloadErr *service.PayloadError
		itemErr    *service.ItemNotFoundError
		agentErr   *service.AgentError
	)
	switch {
	case errors.As(err, &payloadErr):
		writeError(w, payloadErr.Status, payloadErr.Message)
	case errors.As(err, &itemErr):
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":          "Order item not found",
			"order_id":       itemErr.OrderID,
			"item_id":        itemErr.ItemID,
			"known_item_ids": itemErr.KnownItemIDs,
		})
	case errors.As(err, &agentErr):
		writeError(w, http.StatusBadGateway, agentErr.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, service.ErrIngredientNotFound):
		writeError(w, http.StatusNotFound, "Ingredient not found")
	case errors.Is(err, service.ErrDuplicateSubmission):
		writeError(w, http.StatusConflict, "Order already submitted")
	default:
		h.logger.Error(fallback, zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "kitchen-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.NewOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	created, err := h.Orders.Create(r.Context(), req, r.Header.Get(idempotencyHeader))
	if err != nil {
		h.writeServiceError(w, err, "Failed to create order")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	var filter domain.OrderFilter
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			st, ok := domain.ParseOrderStatus(strings.TrimSpace(part))
			if !ok {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid status filter: %s", part))
				return
			}
			filter.Statuses = append(filter.Statuses, st)
		}
	}
	if raw := query.Get("location_id"); raw != "" {
		id, ok := domain.ParseUUID(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid location_id")
			return
		}
		filter.LocationID = id
	}

	orders, err := h.Orders.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch orders")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": order})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		h.writeServiceError(w, err, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

type statusRequest struct {
	Status    string `json:"status"`
	StationID string `json:"station_id"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body statusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["orderId"], body.Status)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update order status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   order,
		"message": "Order status updated to " + body.Status,
	})
}

func (h *Handler) updateItemStatus(w http.ResponseWriter, r *http.Request) {
	var body statusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	vars := mux.Vars(r)
	item, err := h.Orders.UpdateItemStatus(r.Context(), vars["orderId"], vars["itemId"], body.Status)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update order item status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"orderItem": item,
		"message":   "Order item status updated to " + body.Status,
	})
}

func (h *Handler) updateStationStatus(w http.ResponseWriter, r *http.Request) {
	var body statusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	vars := mux.Vars(r)
	item, err := h.Orders.UpdateStationStatus(r.Context(), vars["orderId"], vars["itemId"], body.Status, body.StationID)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update order item status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"order_item": item,
	})
}

func parseActive(raw string) *bool {
	if raw == "" {
		return nil
	}
	active := raw == "true"
	return &active
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	filter := domain.MenuFilter{
		Category: r.URL.Query().Get("category"),
		Active:   parseActive(r.URL.Query().Get("active")),
	}
	items, err := h.Menu.MenuItems(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch menu items")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"menu_items": items})
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.Availability(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to check menu availability")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) getMenuItemSections(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.MenuItemSections(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch menu item sections")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"menuItems": items})
}

func (h *Handler) getSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Menu.Sections(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch sections")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": sections})
}

func (h *Handler) getStations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.StationFilter{
		Kind:   query.Get("kind"),
		Active: parseActive(query.Get("active")),
	}
	if raw := query.Get("location_id"); raw != "" {
		id, ok := domain.ParseUUID(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid location_id")
			return
		}
		filter.LocationID = id
	}

	stations, err := h.Menu.Stations(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch stations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stations": stations})
}

func (h *Handler) getIngredients(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch ingredients")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity *float64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quantity value")
		return
	}

	level, err := h.Inventory.SetQuantity(r.Context(), mux.Vars(r)["id"], body.Quantity)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update ingredient quantity")
		return
	}
	writeJSON(w, http.StatusOK, level)
}

func (h *Handler) restock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Items []domain.RestockLine `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	restocked, err := h.Inventory.Restock(r.Context(), body.Items)
	if err != nil {
		h.writeServiceError(w, err, "Failed to restock ingredients")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Successfully restocked " + strconv.Itoa(len(restocked)) + " ingredients",
		"items":   restocked,
	})
}

func (h *Handler) getMonthlyShoppingList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Shopping.Monthly(r.Context(), r.URL.Query().Get("source"))
	if err != nil {
		h.writeServiceError(w, err, "Failed to generate monthly shopping list")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) getFinancialReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.Financial(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to generate financial report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getInventoryReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.Inventory(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to generate inventory report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getPopularToday(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.PopularToday(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to load popular items")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
