package domain

import "time"

// Service is a catalog entry for an advertising service offered by the agency.
type Service struct {
	ID          string
	Title       string
	Description string
	ImagePath   string
	CreatedAt   time.Time
}

// News is a published news item shown in the feed.
type News struct {
	ID          string
	Title       string
	Content     string
	ImagePath   string
	PublishedAt time.Time
}

// Contact is a department or person listed on the contacts page.
type Contact struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
}

// SiteSettings holds site-wide branding. The table holds a single row.
type SiteSettings struct {
	ID             string
	SiteName       string
	LogoPath       string
	BackgroundPath string
}
