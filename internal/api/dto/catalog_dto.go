package dto

import "time"

// ServiceResponse is one catalog entry.
type ServiceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewsResponse is one news item.
type NewsResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImagePath   string    `json:"image_path,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// ContactResponse is one contacts page entry.
type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// SiteSettingsResponse is the branding payload.
type SiteSettingsResponse struct {
	SiteName       string `json:"site_name"`
	LogoPath       string `json:"logo_path,omitempty"`
	BackgroundPath string `json:"background_path,omitempty"`
}

// HomeResponse bundles the landing page slices.
type HomeResponse struct {
	Services []ServiceResponse `json:"services"`
	News     []NewsResponse    `json:"news"`
}

// SearchResponse bundles combined search results.
type SearchResponse struct {
	Query    string            `json:"query"`
	Services []ServiceResponse `json:"services"`
	News     []NewsResponse    `json:"news"`
}
