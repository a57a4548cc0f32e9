package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adsite-service/internal/api/dto"
	"github.com/spec-kit/adsite-service/internal/service"
)

// AdminHandler exposes the staff order and user directory screens.
type AdminHandler struct {
	admin  *service.AdminService
	orders *service.OrderService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService, orderService *service.OrderService) *AdminHandler {
	return &AdminHandler{admin: adminService, orders: orderService}
}

// GetOrder handles GET /admin-order/:orderId/.
func (h *AdminHandler) GetOrder(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	detail, err := h.orders.GetOrderForStaff(c.Context(), staff.User, c.Params("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderDetailResponse(detail)})
}

// ListUsers handles GET /admin-users/.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	users, err := h.admin.ListUsers(c.Context(), staff.User)
	if err != nil {
		return err
	}
	items := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		items = append(items, userSummary(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetUser handles GET /admin-user/:userId/.
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	detail, err := h.admin.GetUserDetail(c.Context(), staff.User, c.Params("userId"))
	if err != nil {
		return err
	}

	resp := dto.UserDetailResponse{
		User:   userSummary(detail.User),
		Orders: orderSummaries(detail.Orders),
	}
	if detail.Profile != nil {
		resp.Phone = detail.Profile.Phone
	}
	return c.JSON(fiber.Map{"data": resp})
}
