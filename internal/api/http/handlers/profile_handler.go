package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adsite-service/internal/api/dto"
	"github.com/spec-kit/adsite-service/internal/auth"
	"github.com/spec-kit/adsite-service/internal/service"
	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// ProfileHandler serves the signed-in user's page: their orders, their
// support thread, and posting into it.
type ProfileHandler struct {
	authService *service.AuthService
	orders      *service.OrderService
	support     *service.SupportService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(authService *service.AuthService, orders *service.OrderService, support *service.SupportService) *ProfileHandler {
	return &ProfileHandler{authService: authService, orders: orders, support: support}
}

// Get handles GET /profile/. Staff see every order, customers their own,
// mirroring the profile page the admin and customers share.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	orders, err := h.orders.ListOrders(c.Context(), principal.User)
	if err != nil {
		return err
	}
	messages, err := h.support.ViewOwnThread(c.Context(), principal.User)
	if err != nil {
		return err
	}
	profile, err := h.authService.Profile(c.Context(), principal.User)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"user":          userSummary(principal.User),
		"phone":         profile.Phone,
		"orders":        orderSummaries(orders),
		"chat_messages": supportMessageResponses(messages),
	}})
}

// PostMessage handles POST /profile/ with a chat message. An empty or
// whitespace-only body is accepted and dropped without creating anything.
func (h *ProfileHandler) PostMessage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.PostMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg, err := h.support.PostMessage(c.Context(), principal.User, "", req.Message)
	if err != nil {
		return err
	}
	if msg == nil {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": supportMessageResponse(msg)})
}
