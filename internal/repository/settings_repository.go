package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/adsite-service/internal/domain"
)

// SettingsRepository reads the single site-settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
}

type settingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository builds repository.
func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &settingsRepository{pool: pool}
}

// Get returns the branding row, or defaults when none has been created yet.
func (r *settingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	const query = `
        SELECT id, site_name, logo_path, background_path
        FROM site_settings LIMIT 1`

	var settings domain.SiteSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&settings.ID,
		&settings.SiteName,
		&settings.LogoPath,
		&settings.BackgroundPath,
	)
	if err == pgx.ErrNoRows {
		return &domain.SiteSettings{SiteName: "Advertising Resource"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
