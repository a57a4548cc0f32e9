package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/adsite-service/internal/domain"
	"github.com/spec-kit/adsite-service/internal/repository"
	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// homeSliceSize caps how many services and news items the home page shows.
const homeSliceSize = 3

// CatalogService serves the public read surface: service catalog, news feed,
// contacts, branding and combined search.
type CatalogService struct {
	services repository.ServiceRepository
	news     repository.NewsRepository
	contacts repository.ContactRepository
	settings repository.SettingsRepository
}

// CatalogDependencies bundles repositories for the catalog service.
type CatalogDependencies struct {
	ServiceRepo  repository.ServiceRepository
	NewsRepo     repository.NewsRepository
	ContactRepo  repository.ContactRepository
	SettingsRepo repository.SettingsRepository
}

// HomeContent is the home page payload.
type HomeContent struct {
	Services []domain.Service
	News     []domain.News
}

// SearchResult bundles combined search matches.
type SearchResult struct {
	Query    string
	Services []domain.Service
	News     []domain.News
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		services: deps.ServiceRepo,
		news:     deps.NewsRepo,
		contacts: deps.ContactRepo,
		settings: deps.SettingsRepo,
	}
}

// Home returns the top slices shown on the landing page.
func (s *CatalogService) Home(ctx context.Context) (*HomeContent, error) {
	services, err := s.services.List(ctx, homeSliceSize)
	if err != nil {
		return nil, err
	}
	news, err := s.news.List(ctx, homeSliceSize)
	if err != nil {
		return nil, err
	}
	return &HomeContent{Services: services, News: news}, nil
}

// ListServices returns catalog entries, optionally limited.
func (s *CatalogService) ListServices(ctx context.Context, limit int) ([]domain.Service, error) {
	return s.services.List(ctx, limit)
}

// GetService fetches one catalog entry.
func (s *CatalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service", map[string]any{"service_id": id})
		}
		return nil, err
	}
	return svc, nil
}

// ListNews returns news items, newest first.
func (s *CatalogService) ListNews(ctx context.Context, limit int) ([]domain.News, error) {
	return s.news.List(ctx, limit)
}

// GetNews fetches one news item.
func (s *CatalogService) GetNews(ctx context.Context, id string) (*domain.News, error) {
	item, err := s.news.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("news", map[string]any{"news_id": id})
		}
		return nil, err
	}
	return item, nil
}

// ListContacts returns the contacts page entries.
func (s *CatalogService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

// SiteSettings returns the branding row.
func (s *CatalogService) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	return s.settings.Get(ctx)
}

// Search runs a case-insensitive substring match over service titles and
// descriptions and news titles and content. A blank query matches nothing.
func (s *CatalogService) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	result := &SearchResult{
		Query:    query,
		Services: []domain.Service{},
		News:     []domain.News{},
	}
	if query == "" {
		return result, nil
	}

	services, err := s.services.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	news, err := s.news.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if services != nil {
		result.Services = services
	}
	if news != nil {
		result.News = news
	}
	return result, nil
}
