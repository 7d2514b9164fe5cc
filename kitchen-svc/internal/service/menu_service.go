package service

import (
	"context"

	"fusion-kitchen/kitchen-svc/internal/domain"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) MenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, filter)
}

func (s *MenuService) Sections(ctx context.Context) ([]domain.Section, error) {
	sections, err := s.repo.ListSections(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sections {
		color := domain.ColorForSection(sections[i].Name)
		sections[i].Color = &color
	}
	return sections, nil
}

func (s *MenuService) MenuItemSections(ctx context.Context) ([]domain.MenuItemSection, error) {
	return s.repo.ListMenuItemSections(ctx)
}

func (s *MenuService) Stations(ctx context.Context, filter domain.StationFilter) ([]domain.Station, error) {
	return s.repo.ListStations(ctx, filter)
}

var _ MenuServiceInterface = (*MenuService)(nil)
