package service

import (
	"context"
	"time"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	financialWindow = 30 * 24 * time.Hour
	inventoryWindow = 7 * 24 * time.Hour
	popularLimit    = 10
)

type ReportService struct {
	repo   ReportRepository
	cache  PopularityCache
	logger *zap.Logger
	now    func() time.Time
}

func NewReportService(repo ReportRepository, cache PopularityCache, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func (s *ReportService) Financial(ctx context.Context) (*domain.FinancialReport, error) {
	report, err := s.repo.FinancialReport(ctx, s.now().Add(-financialWindow))
	if err != nil {
		return nil, err
	}
	report.RangeDays = int(financialWindow.Hours() / 24)
	return report, nil
}

func (s *ReportService) Inventory(ctx context.Context) (*domain.InventoryReport, error) {
	return s.repo.InventoryReport(ctx, s.now().Add(-inventoryWindow))
}

// PopularToday reads the counters kept by the aggregation service and falls
// back to counting today's orders in the database.
func (s *ReportService) PopularToday(ctx context.Context) (*domain.PopularReport, error) {
	now := s.now().UTC()
	day := now.Format("2006-01-02")

	if s.cache != nil {
		items, err := s.cache.TopItems(ctx, day, popularLimit)
		if err != nil {
			s.logger.Warn("popularity cache unavailable", zap.Error(err))
		} else if len(items) > 0 {
			ids := make([]domain.UUID, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.MenuItemID)
			}
			names, err := s.repo.MenuItemNames(ctx, ids)
			if err != nil {
				return nil, err
			}
			for i := range items {
				items[i].Name = names[items[i].MenuItemID]
			}
			return &domain.PopularReport{Day: day, Source: "cache", Items: items}, nil
		}
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	items, err := s.repo.PopularItemsSince(ctx, midnight, popularLimit)
	if err != nil {
		return nil, err
	}
	return &domain.PopularReport{Day: day, Source: "database", Items: items}, nil
}

var _ ReportServiceInterface = (*ReportService)(nil)
