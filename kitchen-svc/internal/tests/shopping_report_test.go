package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"fusion-kitchen/kitchen-svc/internal/domain"
	"fusion-kitchen/kitchen-svc/internal/mocks"
	"fusion-kitchen/kitchen-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func agentResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func agentOutput(t *testing.T, items []domain.ShoppingListItem) string {
	t.Helper()
	inner, err := json.Marshal(map[string]any{"items": items})
	require.NoError(t, err)
	outer, err := json.Marshal(map[string]string{"output": string(inner)})
	require.NoError(t, err)
	return string(outer)
}

func TestAgentRecommender(t *testing.T) {
	tests := []struct {
		name      string
		response  func(t *testing.T) (*http.Response, error)
		wantItems int
		wantErr   string
	}{
		{
			name: "keeps positive recommendations",
			response: func(t *testing.T) (*http.Response, error) {
				return agentResponse(200, agentOutput(t, []domain.ShoppingListItem{
					{ID: "1", Name: "Rice", RecommendedQty: 12},
					{ID: "2", Name: "Salt", RecommendedQty: 0},
				})), nil
			},
			wantItems: 1,
		},
		{
			name: "agent failure surfaces body",
			response: func(t *testing.T) (*http.Response, error) {
				return agentResponse(503, "model overloaded"), nil
			},
			wantErr: "Agent error: model overloaded",
		},
		{
			name: "transport failure",
			response: func(t *testing.T) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			wantErr: "Agent error: connection refused",
		},
		{
			name: "output is not a list",
			response: func(t *testing.T) (*http.Response, error) {
				return agentResponse(200, `{"output":"I could not reach the inventory tool."}`), nil
			},
			wantErr: "Agent error: invalid output",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := mocks.NewHTTPClient(t)
			resp, respErr := testCase.response(t)
			client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == http.MethodPost &&
					req.URL.String() == "http://agents.local/agents/inventory_controller/run"
			})).Return(resp, respErr).Once()

			recommender := service.NewAgentRecommender("http://agents.local", client)
			items, err := recommender.Recommend(context.Background())

			if testCase.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, service.ErrAgentUnavailable)
				assert.True(t, strings.HasPrefix(err.Error(), testCase.wantErr), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, testCase.wantItems)
		})
	}
}

func TestLocalRecommender(t *testing.T) {
	repo := mocks.NewInventoryRepository(t)
	kg := "kg"

	repo.On("IngredientUsage", mock.Anything, mock.AnythingOfType("time.Time")).Return([]domain.IngredientUsage{
		{ID: 3, Name: "Pork Belly", Unit: &kg, CurrentStock: 2, MonthlyUsage: 9, LowThreshold: 3},
	}, nil).Once()

	items, err := service.NewLocalRecommender(repo).Recommend(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, float64(7), items[0].RecommendedQty)
	assert.Equal(t, domain.UrgencyHigh, items[0].Urgency)
}

func TestShoppingListService_Monthly(t *testing.T) {
	tests := []struct {
		name   string
		source string
		agent  bool
	}{
		{name: "default is local", source: ""},
		{name: "explicit local", source: "local"},
		{name: "agent on request", source: "agent", agent: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			local := mocks.NewRecommender(t)
			agent := mocks.NewRecommender(t)
			want := []domain.ShoppingListItem{{ID: "5", RecommendedQty: 1}}

			if testCase.agent {
				agent.On("Recommend", mock.Anything).Return(want, nil).Once()
			} else {
				local.On("Recommend", mock.Anything).Return(want, nil).Once()
			}

			items, err := service.NewShoppingListService(local, agent, nil).Monthly(context.Background(), testCase.source)

			require.NoError(t, err)
			assert.Equal(t, want, items)
		})
	}
}

func TestReportService_PopularToday(t *testing.T) {
	t.Run("served from aggregated counters", func(t *testing.T) {
		repo := mocks.NewReportRepository(t)
		cache := mocks.NewPopularityCache(t)
		svc := service.NewReportService(repo, cache, nil)

		cache.On("TopItems", mock.Anything, mock.AnythingOfType("string"), 10).Return([]domain.PopularItem{
			{MenuItemID: domain.UUID(ramenID), Qty: 14},
			{MenuItemID: domain.UUID(gyozaID), Qty: 9},
		}, nil).Once()
		repo.On("MenuItemNames", mock.Anything, []domain.UUID{domain.UUID(ramenID), domain.UUID(gyozaID)}).
			Return(map[domain.UUID]string{domain.UUID(ramenID): "Ramen", domain.UUID(gyozaID): "Gyoza"}, nil).Once()

		report, err := svc.PopularToday(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "cache", report.Source)
		assert.Equal(t, "Ramen", report.Items[0].Name)
		assert.Equal(t, float64(9), report.Items[1].Qty)
	})

	t.Run("falls back to database on cache error", func(t *testing.T) {
		repo := mocks.NewReportRepository(t)
		cache := mocks.NewPopularityCache(t)
		svc := service.NewReportService(repo, cache, nil)

		cache.On("TopItems", mock.Anything, mock.Anything, 10).Return(nil, errors.New("redis down")).Once()
		repo.On("PopularItemsSince", mock.Anything, mock.AnythingOfType("time.Time"), 10).
			Return([]domain.PopularItem{{MenuItemID: domain.UUID(ramenID), Name: "Ramen", Qty: 3}}, nil).Once()

		report, err := svc.PopularToday(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "database", report.Source)
		assert.Len(t, report.Items, 1)
	})

	t.Run("falls back to database on empty day", func(t *testing.T) {
		repo := mocks.NewReportRepository(t)
		cache := mocks.NewPopularityCache(t)
		svc := service.NewReportService(repo, cache, nil)

		cache.On("TopItems", mock.Anything, mock.Anything, 10).Return([]domain.PopularItem{}, nil).Once()
		repo.On("PopularItemsSince", mock.Anything, mock.Anything, 10).Return([]domain.PopularItem{}, nil).Once()

		report, err := svc.PopularToday(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "database", report.Source)
	})
}

func TestReportService_Financial(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	svc := service.NewReportService(repo, nil, nil)

	repo.On("FinancialReport", mock.Anything, mock.AnythingOfType("time.Time")).Return(&domain.FinancialReport{}, nil).Once()

	report, err := svc.Financial(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 30, report.RangeDays)
}

func TestMenuService_SectionsCarryColors(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	repo.On("ListSections", mock.Anything).Return([]domain.Section{
		{ID: 1, Name: "Grill", MaxCapacity: 6},
		{ID: 2, Name: "Expo", MaxCapacity: 2},
	}, nil).Once()

	sections, err := svc.Sections(context.Background())

	require.NoError(t, err)
	require.NotNil(t, sections[0].Color)
	assert.Equal(t, "#fb923c", sections[0].Color.Border)
	assert.Equal(t, "hsl(82 45% 70%)", sections[1].Color.Border)
}
