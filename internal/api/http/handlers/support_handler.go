package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/adsite-service/internal/api/dto"
	"github.com/spec-kit/adsite-service/internal/auth"
	"github.com/spec-kit/adsite-service/internal/service"
	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// SupportHandler exposes the staff side of the support chat.
type SupportHandler struct {
	support *service.SupportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{support: supportService}
}

// ListThreads handles GET /admin-support/.
func (h *SupportHandler) ListThreads(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	threads, err := h.support.ListThreadsForStaff(c.Context(), staff.User)
	if err != nil {
		return err
	}
	items := make([]dto.ThreadSummaryResponse, 0, len(threads))
	for i := range threads {
		items = append(items, dto.ThreadSummaryResponse{
			Owner:              userSummary(threads[i].Owner),
			LastMessageSnippet: threads[i].LastMessageSnippet,
			LastMessageAt:      threads[i].LastMessageAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// UnreadCount handles GET /admin-support/unread-count/, the polling badge.
func (h *SupportHandler) UnreadCount(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	count, err := h.support.UnreadCount(c.Context(), staff.User)
	if err != nil {
		return err
	}
	return c.JSON(dto.UnreadCountResponse{Count: count})
}

// ViewThread handles GET /admin-chat/:userId/.
func (h *SupportHandler) ViewThread(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	owner, messages, err := h.support.ViewThreadForStaff(c.Context(), staff.User, c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ThreadResponse{
		Owner:    userSummary(owner),
		Messages: supportMessageResponses(messages),
	}})
}

// Reply handles POST /admin-chat/:userId/.
func (h *SupportHandler) Reply(c *fiber.Ctx) error {
	staff, err := staffPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.PostMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg, err := h.support.PostMessage(c.Context(), staff.User, c.Params("userId"), req.Message)
	if err != nil {
		return err
	}
	if msg == nil {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": supportMessageResponse(msg)})
}

func staffPrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if !principal.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	return principal, nil
}
