package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/adsite-service/internal/domain"
)

func newCatalogFixture(t *testing.T) *CatalogService {
	t.Helper()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	services := &fakeServiceRepo{services: []domain.Service{
		{ID: "svc-1", Title: "Banner design", Description: "Outdoor banners"},
		{ID: "svc-2", Title: "Radio spots", Description: "30 second ads"},
		{ID: "svc-3", Title: "Social media", Description: "Banner campaigns online"},
		{ID: "svc-4", Title: "Print", Description: "Leaflets and flyers"},
	}}
	news := &fakeNewsRepo{news: []domain.News{
		{ID: "news-1", Title: "New office", Content: "We moved", PublishedAt: base},
		{ID: "news-2", Title: "Banner printer installed", Content: "Faster turnaround", PublishedAt: base.Add(24 * time.Hour)},
		{ID: "news-3", Title: "Holiday hours", Content: "Closed on Friday", PublishedAt: base.Add(48 * time.Hour)},
		{ID: "news-4", Title: "Anniversary", Content: "Ten years", PublishedAt: base.Add(72 * time.Hour)},
	}}
	return NewCatalogService(CatalogDependencies{
		ServiceRepo:  services,
		NewsRepo:     news,
		ContactRepo:  &fakeContactRepo{},
		SettingsRepo: &fakeSettingsRepo{},
	})
}

func TestHomeSlices(t *testing.T) {
	svc := newCatalogFixture(t)

	content, err := svc.Home(context.Background())
	require.NoError(t, err)
	require.Len(t, content.Services, 3)
	require.Len(t, content.News, 3)
	// News slice is newest first.
	require.Equal(t, "news-4", content.News[0].ID)
	require.Equal(t, "news-2", content.News[2].ID)
}

func TestGetServiceNotFound(t *testing.T) {
	svc := newCatalogFixture(t)

	_, err := svc.GetService(context.Background(), "svc-404")
	requireDomainErrorCode(t, err, "NOT_FOUND")

	_, err = svc.GetNews(context.Background(), "news-404")
	requireDomainErrorCode(t, err, "NOT_FOUND")
}

func TestSearch(t *testing.T) {
	svc := newCatalogFixture(t)
	ctx := context.Background()

	tests := []struct {
		name         string
		query        string
		wantServices []string
		wantNews     []string
	}{
		{
			name:         "case-insensitive substring over title and body",
			query:        "banner",
			wantServices: []string{"svc-1", "svc-3"},
			wantNews:     []string{"news-2"},
		},
		{
			name:         "no matches",
			query:        "television",
			wantServices: []string{},
			wantNews:     []string{},
		},
		{
			name:         "blank query matches nothing",
			query:        "   ",
			wantServices: []string{},
			wantNews:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)

			gotServices := make([]string, 0, len(result.Services))
			for _, s := range result.Services {
				gotServices = append(gotServices, s.ID)
			}
			gotNews := make([]string, 0, len(result.News))
			for _, n := range result.News {
				gotNews = append(gotNews, n.ID)
			}
			require.ElementsMatch(t, tt.wantServices, gotServices)
			require.ElementsMatch(t, tt.wantNews, gotNews)
		})
	}
}
