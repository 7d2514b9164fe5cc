package tests

import (
	"context"
	"errors"
	"testing"

	"fusion-kitchen/kitchen-svc/internal/domain"
	"fusion-kitchen/kitchen-svc/internal/mocks"
	"fusion-kitchen/kitchen-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	locationID = domain.UUID("6d1c1f52-2f0a-4a8e-9d6f-1b2c3d4e5f60")
	orderID    = domain.UUID("a3b4c5d6-1111-4222-8333-944455566677")
	itemOneID  = domain.UUID("b1b2b3b4-0000-4000-8000-000000000001")
	itemTwoID  = domain.UUID("b1b2b3b4-0000-4000-8000-000000000002")
	ramenID    = "c0ffee00-1234-4abc-8def-0123456789ab"
	gyozaID    = "c0ffee00-1234-4abc-8def-0123456789ac"
	stationID  = "d4d4d4d4-5555-4666-8777-888899990000"
)

type orderMocks struct {
	repo   *mocks.OrderRepository
	stock  *mocks.StockDeductor
	events *mocks.EventPublisher
	guard  *mocks.SubmissionGuard
	qr     *mocks.QRGenerator
}

func newOrderService(t *testing.T, logger *zap.Logger) (*service.OrderService, orderMocks) {
	m := orderMocks{
		repo:   mocks.NewOrderRepository(t),
		stock:  mocks.NewStockDeductor(t),
		events: mocks.NewEventPublisher(t),
		guard:  mocks.NewSubmissionGuard(t),
		qr:     mocks.NewQRGenerator(t),
	}
	return service.NewOrderService(m.repo, m.stock, m.events, m.guard, m.qr, logger), m
}

func validNewOrder() domain.NewOrder {
	return domain.NewOrder{
		LocationID: string(locationID),
		Source:     domain.SourceDineIn,
		Items: []domain.NewOrderItem{
			{MenuItemID: ramenID, Qty: 2},
			{MenuItemID: gyozaID, Qty: 1},
		},
	}
}

func createdOrder() *domain.CreatedOrder {
	return &domain.CreatedOrder{
		Order: domain.Order{ID: orderID, LocationID: locationID, Source: domain.SourceDineIn, Status: domain.OrderOpen},
		OrderItems: []domain.OrderItem{
			{ID: itemOneID, OrderID: orderID, MenuItemID: domain.UUID(ramenID), Qty: 2, Status: domain.ItemQueued},
			{ID: itemTwoID, OrderID: orderID, MenuItemID: domain.UUID(gyozaID), Qty: 1, Status: domain.ItemQueued},
		},
	}
}

func TestOrderService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.NewOrder)
		wantMsg string
	}{
		{
			name:    "no items",
			mutate:  func(o *domain.NewOrder) { o.Items = nil },
			wantMsg: "Order must contain at least one item",
		},
		{
			name:    "missing source",
			mutate:  func(o *domain.NewOrder) { o.Source = "" },
			wantMsg: "Missing required fields",
		},
		{
			name:    "unknown source",
			mutate:  func(o *domain.NewOrder) { o.Source = "carrier_pigeon" },
			wantMsg: "Invalid order source: carrier_pigeon",
		},
		{
			name:    "bad menu item id",
			mutate:  func(o *domain.NewOrder) { o.Items[0].MenuItemID = "ramen" },
			wantMsg: `Invalid menu_item_id: "ramen"`,
		},
		{
			name:    "zero qty",
			mutate:  func(o *domain.NewOrder) { o.Items[1].Qty = 0 },
			wantMsg: "Invalid qty for menu item " + gyozaID,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, _ := newOrderService(t, nil)
			req := validNewOrder()
			testCase.mutate(&req)

			result, err := svc.Create(context.Background(), req, "")

			assert.Nil(t, result)
			var payloadErr *service.PayloadError
			require.ErrorAs(t, err, &payloadErr)
			assert.Equal(t, 400, payloadErr.Status)
			assert.Equal(t, testCase.wantMsg, payloadErr.Message)
		})
	}
}

func TestOrderService_CreateResolvesLocation(t *testing.T) {
	tests := []struct {
		name       string
		locationID string
		setupMock  func(*mocks.OrderRepository)
		wantStatus int
		wantErr    bool
	}{
		{
			name:       "explicit location is used verbatim",
			locationID: string(locationID),
			setupMock: func(m *mocks.OrderRepository) {
				m.On("CreateOrder", mock.Anything, locationID, mock.AnythingOfType("domain.NewOrder")).Return(createdOrder(), nil).Once()
			},
		},
		{
			name:       "placeholder falls back to first location",
			locationID: "downtown",
			setupMock: func(m *mocks.OrderRepository) {
				m.On("FirstLocationID", mock.Anything).Return(locationID, nil).Once()
				m.On("CreateOrder", mock.Anything, locationID, mock.AnythingOfType("domain.NewOrder")).Return(createdOrder(), nil).Once()
			},
		},
		{
			name:       "no locations at all",
			locationID: "",
			setupMock: func(m *mocks.OrderRepository) {
				m.On("FirstLocationID", mock.Anything).Return(domain.UUID(""), domain.ErrNotFound).Once()
			},
			wantErr:    true,
			wantStatus: 500,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t, nil)
			testCase.setupMock(m.repo)
			if !testCase.wantErr {
				m.events.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()
			}

			req := validNewOrder()
			req.LocationID = testCase.locationID
			result, err := svc.Create(context.Background(), req, "")

			if testCase.wantErr {
				var payloadErr *service.PayloadError
				require.ErrorAs(t, err, &payloadErr)
				assert.Equal(t, testCase.wantStatus, payloadErr.Status)
				assert.Equal(t, "No locations available in the database", payloadErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, result.Order.ID)
			assert.Len(t, result.OrderItems, 2)
		})
	}
}

func TestOrderService_CreatePublishesEvent(t *testing.T) {
	svc, m := newOrderService(t, nil)

	m.repo.On("CreateOrder", mock.Anything, locationID, mock.Anything).Return(createdOrder(), nil).Once()
	m.events.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == domain.EventOrderCreated &&
			e.OrderID == orderID &&
			e.ID != "" &&
			len(e.Items) == 2 &&
			e.Items[0].Qty == 2
	})).Return(errors.New("broker down")).Once()

	result, err := svc.Create(context.Background(), validNewOrder(), "")

	require.NoError(t, err)
	assert.Equal(t, orderID, result.Order.ID)
}

func TestOrderService_CreateIdempotency(t *testing.T) {
	t.Run("repeat submission is rejected", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		m.guard.On("Seen", mock.Anything, "key-1").Return(true, nil).Once()

		result, err := svc.Create(context.Background(), validNewOrder(), "key-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, service.ErrDuplicateSubmission)
		m.repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed insert releases the key", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		m.guard.On("Seen", mock.Anything, "key-2").Return(false, nil).Once()
		m.repo.On("CreateOrder", mock.Anything, locationID, mock.Anything).Return(nil, errors.New("deadlock")).Once()
		m.guard.On("Forget", mock.Anything, "key-2").Return(nil).Once()

		result, err := svc.Create(context.Background(), validNewOrder(), "key-2")

		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("guard outage does not block orders", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		m.guard.On("Seen", mock.Anything, "key-3").Return(false, errors.New("redis down")).Once()
		m.repo.On("CreateOrder", mock.Anything, locationID, mock.Anything).Return(createdOrder(), nil).Once()
		m.events.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := svc.Create(context.Background(), validNewOrder(), "key-3")

		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestOrderService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(*mocks.OrderRepository)
		wantErr   error
	}{
		{
			name: "found",
			id:   string(orderID),
			setupMock: func(m *mocks.OrderRepository) {
				m.On("GetOrder", mock.Anything, orderID).Return(&domain.Order{ID: orderID}, nil).Once()
			},
		},
		{
			name: "missing",
			id:   string(orderID),
			setupMock: func(m *mocks.OrderRepository) {
				m.On("GetOrder", mock.Anything, orderID).Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: service.ErrOrderNotFound,
		},
		{
			name:      "malformed id",
			id:        "42",
			setupMock: func(m *mocks.OrderRepository) {},
			wantErr:   service.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t, nil)
			testCase.setupMock(m.repo)

			order, err := svc.Get(context.Background(), testCase.id)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, order.ID)
		})
	}
}

func TestOrderService_UpdateItemStatus(t *testing.T) {
	t.Run("prepping stamps start and rolls order up", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		item := &domain.OrderItem{ID: itemOneID, OrderID: orderID, Status: domain.ItemPrepping}

		m.repo.On("UpdateItemStatus", mock.Anything, orderID, itemOneID, domain.ItemPrepping, domain.Stamps{Start: true}).Return(item, nil).Once()
		m.repo.On("ListItemStatuses", mock.Anything, orderID).Return([]domain.ItemStatus{domain.ItemPrepping, domain.ItemQueued}, nil).Once()
		m.repo.On("SetDerivedStatus", mock.Anything, orderID, domain.OrderInProgress).Return(nil).Once()
		m.events.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == domain.EventItemStatusChanged && e.ItemID == itemOneID && e.Status == "prepping"
		})).Return(nil).Once()

		result, err := svc.UpdateItemStatus(context.Background(), string(orderID), string(itemOneID), "prepping")

		require.NoError(t, err)
		assert.Equal(t, item, result)
	})

	t.Run("rollup failure still reports success", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		svc, m := newOrderService(t, zap.New(core))
		item := &domain.OrderItem{ID: itemOneID, OrderID: orderID, Status: domain.ItemReady}

		m.repo.On("UpdateItemStatus", mock.Anything, orderID, itemOneID, domain.ItemReady, domain.Stamps{Finish: true}).Return(item, nil).Once()
		m.repo.On("ListItemStatuses", mock.Anything, orderID).Return(nil, errors.New("connection reset")).Once()
		m.events.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := svc.UpdateItemStatus(context.Background(), string(orderID), string(itemOneID), "ready")

		require.NoError(t, err)
		assert.Equal(t, domain.ItemReady, result.Status)
		assert.Equal(t, 1, logs.FilterMessage("order status rollup failed").Len())
		m.repo.AssertNotCalled(t, "SetDerivedStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown item lists the known ones", func(t *testing.T) {
		svc, m := newOrderService(t, nil)

		m.repo.On("UpdateItemStatus", mock.Anything, orderID, itemTwoID, domain.ItemServed, domain.Stamps{Finish: true}).Return(nil, domain.ErrNotFound).Once()
		m.repo.On("ListItemIDs", mock.Anything, orderID).Return([]domain.UUID{itemOneID}, nil).Once()

		result, err := svc.UpdateItemStatus(context.Background(), string(orderID), string(itemTwoID), "served")

		assert.Nil(t, result)
		var notFound *service.ItemNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []domain.UUID{itemOneID}, notFound.KnownItemIDs)
		assert.Equal(t, string(itemTwoID), notFound.ItemID)
	})

	t.Run("malformed order id is not found", func(t *testing.T) {
		svc, _ := newOrderService(t, nil)

		_, err := svc.UpdateItemStatus(context.Background(), "nope", string(itemOneID), "ready")

		var notFound *service.ItemNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Empty(t, notFound.KnownItemIDs)
	})

	invalid := []struct {
		name    string
		status  string
		wantMsg string
	}{
		{name: "empty status", status: "", wantMsg: "Status is required"},
		{name: "station-only status", status: "firing", wantMsg: "Invalid status: firing"},
		{name: "unknown status", status: "burnt", wantMsg: "Invalid status: burnt"},
	}
	for _, testCase := range invalid {
		t.Run(testCase.name, func(t *testing.T) {
			svc, _ := newOrderService(t, nil)

			_, err := svc.UpdateItemStatus(context.Background(), string(orderID), string(itemOneID), testCase.status)

			var payloadErr *service.PayloadError
			require.ErrorAs(t, err, &payloadErr)
			assert.Equal(t, testCase.wantMsg, payloadErr.Message)
		})
	}
}

func TestOrderService_UpdateStationStatus(t *testing.T) {
	station := domain.UUID(stationID)

	t.Run("served plate marks ticket ready", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		item := &domain.OrderItem{ID: itemOneID, OrderID: orderID, Status: domain.ItemServed}

		m.repo.On("UpdateItemStatus", mock.Anything, orderID, itemOneID, domain.ItemServed, domain.Stamps{Finish: true}).Return(item, nil).Once()
		m.repo.On("UpdateTicketStatus", mock.Anything, itemOneID, station, domain.TicketReady, domain.Stamps{Finish: true}).Return(int64(1), nil).Once()
		m.events.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := svc.UpdateStationStatus(context.Background(), string(orderID), string(itemOneID), "served", stationID)

		require.NoError(t, err)
		assert.Equal(t, item, result)
		m.repo.AssertNotCalled(t, "ListItemStatuses", mock.Anything, mock.Anything)
	})

	t.Run("firing without station leaves tickets alone", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		item := &domain.OrderItem{ID: itemOneID, OrderID: orderID, Status: domain.ItemFiring}

		m.repo.On("UpdateItemStatus", mock.Anything, orderID, itemOneID, domain.ItemFiring, domain.Stamps{Start: true}).Return(item, nil).Once()
		m.events.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.UpdateStationStatus(context.Background(), string(orderID), string(itemOneID), "firing", "")

		require.NoError(t, err)
		m.repo.AssertNotCalled(t, "UpdateTicketStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("kitchen display status is rejected", func(t *testing.T) {
		svc, _ := newOrderService(t, nil)

		_, err := svc.UpdateStationStatus(context.Background(), string(orderID), string(itemOneID), "completed", "")

		var payloadErr *service.PayloadError
		require.ErrorAs(t, err, &payloadErr)
		assert.Equal(t, "Invalid status: completed", payloadErr.Message)
	})

	t.Run("malformed station id", func(t *testing.T) {
		svc, _ := newOrderService(t, nil)

		_, err := svc.UpdateStationStatus(context.Background(), string(orderID), string(itemOneID), "passed", "grill")

		var payloadErr *service.PayloadError
		require.ErrorAs(t, err, &payloadErr)
		assert.Equal(t, 400, payloadErr.Status)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("completed finishes items and deducts stock", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		order := &domain.Order{ID: orderID, LocationID: locationID, Status: domain.OrderCompleted, StatusSource: domain.StatusOverride}

		m.repo.On("OverrideStatus", mock.Anything, orderID, domain.OrderCompleted).Return(order, nil).Once()
		m.repo.On("CompleteAllItems", mock.Anything, orderID).Return(nil).Once()
		m.stock.On("DeductForOrder", mock.Anything, orderID).Return().Once()
		m.events.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == domain.EventOrderStatusChanged && e.Status == "completed" && e.LocationID == locationID
		})).Return(nil).Once()

		result, err := svc.UpdateStatus(context.Background(), string(orderID), "completed")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusOverride, result.StatusSource)
	})

	t.Run("deduction runs past a cancelled request", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m.repo.On("OverrideStatus", mock.Anything, orderID, domain.OrderCompleted).Return(&domain.Order{ID: orderID}, nil).Once()
		m.repo.On("CompleteAllItems", mock.Anything, orderID).Return(nil).Once()
		m.stock.On("DeductForOrder", mock.MatchedBy(func(c context.Context) bool {
			return c.Err() == nil
		}), orderID).Return().Once()
		m.events.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.UpdateStatus(ctx, string(orderID), "completed")

		require.NoError(t, err)
	})

	t.Run("other statuses skip deduction", func(t *testing.T) {
		svc, m := newOrderService(t, nil)

		m.repo.On("OverrideStatus", mock.Anything, orderID, domain.OrderReady).Return(&domain.Order{ID: orderID, Status: domain.OrderReady}, nil).Once()
		m.events.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.UpdateStatus(context.Background(), string(orderID), "ready")

		require.NoError(t, err)
		m.stock.AssertNotCalled(t, "DeductForOrder", mock.Anything, mock.Anything)
		m.repo.AssertNotCalled(t, "CompleteAllItems", mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, m := newOrderService(t, nil)
		m.repo.On("OverrideStatus", mock.Anything, orderID, domain.OrderServed).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.UpdateStatus(context.Background(), string(orderID), "served")

		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})

	t.Run("item-only status is rejected", func(t *testing.T) {
		svc, _ := newOrderService(t, nil)

		_, err := svc.UpdateStatus(context.Background(), string(orderID), "prepping")

		var payloadErr *service.PayloadError
		require.ErrorAs(t, err, &payloadErr)
		assert.Equal(t, "Invalid status: prepping", payloadErr.Message)
	})
}

func TestOrderService_QRCode(t *testing.T) {
	svc, m := newOrderService(t, nil)

	m.repo.On("GetOrder", mock.Anything, orderID).Return(&domain.Order{ID: orderID}, nil).Once()
	m.qr.On("Generate", orderID).Return([]byte("png"), nil).Once()

	png, err := svc.QRCode(context.Background(), string(orderID))

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestDefaultQRGenerator(t *testing.T) {
	png, err := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}.Generate(orderID)

	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestDefaultQRGenerator_TrackingURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "plain base", baseURL: "http://localhost:8080", want: "http://localhost:8080/orders/" + string(orderID)},
		{name: "trailing slash", baseURL: "https://kitchen.example/", want: "https://kitchen.example/orders/" + string(orderID)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.DefaultQRGenerator{BaseURL: testCase.baseURL}.TrackingURL(orderID))
		})
	}
}
