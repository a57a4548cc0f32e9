package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adsite-service/internal/api/dto"
	"github.com/spec-kit/adsite-service/internal/service"
)

// CatalogHandler exposes the public read surface.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// Home handles GET /.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	content, err := h.catalog.Home(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.HomeResponse{
		Services: serviceResponses(content.Services),
		News:     newsResponses(content.News),
	}})
}

// ListServices handles GET /catalog/.
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.catalog.ListServices(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceResponses(services)})
}

// GetService handles GET /catalog/:id/.
func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	svc, err := h.catalog.GetService(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceResponse(svc)})
}

// ListNews handles GET /news/.
func (h *CatalogHandler) ListNews(c *fiber.Ctx) error {
	news, err := h.catalog.ListNews(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": newsResponses(news)})
}

// GetNews handles GET /news/:id/.
func (h *CatalogHandler) GetNews(c *fiber.Ctx) error {
	item, err := h.catalog.GetNews(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": newsResponse(item)})
}

// ListContacts handles GET /contacts/.
func (h *CatalogHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.catalog.ListContacts(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, dto.ContactResponse{
			ID:      contacts[i].ID,
			Name:    contacts[i].Name,
			Phone:   contacts[i].Phone,
			Email:   contacts[i].Email,
			Address: contacts[i].Address,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Settings handles GET /settings/.
func (h *CatalogHandler) Settings(c *fiber.Ctx) error {
	settings, err := h.catalog.SiteSettings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SiteSettingsResponse{
		SiteName:       settings.SiteName,
		LogoPath:       settings.LogoPath,
		BackgroundPath: settings.BackgroundPath,
	}})
}

// Search handles GET /search/?q=.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	result, err := h.catalog.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SearchResponse{
		Query:    result.Query,
		Services: serviceResponses(result.Services),
		News:     newsResponses(result.News),
	}})
}
