package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	usageWindow  = 30 * 24 * time.Hour
	agentPrompt  = "Return monthly shopping list JSON for the next 30 days. Use tools."
	SourceAgent  = "agent"
	agentRunPath = "/agents/inventory_controller/run"
)

// LocalRecommender projects the next month's needs from recent orders.
type LocalRecommender struct {
	repo InventoryRepository
	now  func() time.Time
}

func NewLocalRecommender(repo InventoryRepository) *LocalRecommender {
	return &LocalRecommender{repo: repo, now: time.Now}
}

func (r *LocalRecommender) Recommend(ctx context.Context) ([]domain.ShoppingListItem, error) {
	usages, err := r.repo.IngredientUsage(ctx, r.now().Add(-usageWindow))
	if err != nil {
		return nil, fmt.Errorf("load ingredient usage: %w", err)
	}
	return domain.ProjectShoppingList(usages), nil
}

// AgentRecommender asks the inventory controller agent for a list.
type AgentRecommender struct {
	baseURL string
	client  HTTPClient
}

func NewAgentRecommender(baseURL string, client HTTPClient) *AgentRecommender {
	return &AgentRecommender{baseURL: baseURL, client: client}
}

func (r *AgentRecommender) Recommend(ctx context.Context) ([]domain.ShoppingListItem, error) {
	body, _ := json.Marshal(map[string]string{"prompt": agentPrompt})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+agentRunPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &AgentError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AgentError{Detail: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AgentError{Detail: string(raw)}
	}

	var envelope struct {
		Output string `json:"output"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &AgentError{Detail: "invalid response: " + err.Error()}
	}

	var parsed struct {
		Items []domain.ShoppingListItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(envelope.Output), &parsed); err != nil {
		return nil, &AgentError{Detail: "invalid output: " + err.Error()}
	}

	items := make([]domain.ShoppingListItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.RecommendedQty > 0 {
			items = append(items, item)
		}
	}
	return items, nil
}

type ShoppingListService struct {
	local  Recommender
	agent  Recommender
	logger *zap.Logger
}

func NewShoppingListService(local, agent Recommender, logger *zap.Logger) *ShoppingListService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShoppingListService{local: local, agent: agent, logger: logger}
}

// Monthly picks the agent strategy when asked for it and the local
// projection otherwise.
func (s *ShoppingListService) Monthly(ctx context.Context, source string) ([]domain.ShoppingListItem, error) {
	if source == SourceAgent && s.agent != nil {
		items, err := s.agent.Recommend(ctx)
		if err != nil {
			s.logger.Warn("agent recommendation failed", zap.Error(err))
			return nil, err
		}
		return items, nil
	}
	return s.local.Recommend(ctx)
}

var (
	_ Recommender                  = (*LocalRecommender)(nil)
	_ Recommender                  = (*AgentRecommender)(nil)
	_ ShoppingListServiceInterface = (*ShoppingListService)(nil)
)
