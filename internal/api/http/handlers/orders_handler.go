package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adsite-service/internal/api/dto"
	"github.com/spec-kit/adsite-service/internal/auth"
	"github.com/spec-kit/adsite-service/internal/service"
	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// OrdersHandler manages customer service-order endpoints.
type OrdersHandler struct {
	orders  *service.OrderService
	catalog *service.CatalogService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService, catalogService *service.CatalogService) *OrdersHandler {
	return &OrdersHandler{orders: orderService, catalog: catalogService}
}

// GetForm handles GET /order/: the catalog entries the order form offers.
func (h *OrdersHandler) GetForm(c *fiber.Ctx) error {
	services, err := h.catalog.ListServices(c.Context(), 0)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"services": serviceResponses(services)}})
}

// Create handles POST /order/. Guests get a sign-in prompt instead of an
// order, the JSON analog of the guest interstitial page.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "sign in to place an order",
				"details": fiber.Map{"guest": true},
			},
		})
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.orders.CreateOrder(c.Context(), principal.User, req.ServiceID, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": orderSummary(order)})
}

// GetOwn handles GET /order/:id/ for the order's owner.
func (h *OrdersHandler) GetOwn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	detail, err := h.orders.GetOrderForUser(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderDetailResponse(detail)})
}

func orderDetailResponse(detail *service.OrderDetail) dto.OrderDetailResponse {
	resp := dto.OrderDetailResponse{Order: orderSummary(detail.Order)}
	if detail.Service != nil {
		svc := serviceResponse(detail.Service)
		resp.Service = &svc
	}
	if detail.Requester != nil {
		requester := userSummary(detail.Requester)
		resp.Requester = &requester
	}
	return resp
}
